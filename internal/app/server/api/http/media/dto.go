package media

import (
	"github.com/danielgtaylor/huma/v2"

	"notekeeper/internal/domain/media"
)

type uploadInput struct {
	NoteID  string `path:"noteId" doc:"Note identifier"`
	RawBody huma.MultipartFormFiles[uploadForm]
}

type uploadForm struct {
	File huma.FormFile `form:"file" required:"true" doc:"File to attach"`
}

type uploadOutput struct {
	Body media.View
}

type listInput struct {
	NoteID string `path:"id" doc:"Note identifier"`
}

type listOutput struct {
	Body []media.View
}

type urlInput struct {
	MediaID string `path:"id" doc:"Attachment identifier"`
}

type urlOutput struct {
	Body URLResponse
}

type URLResponse struct {
	URL string `json:"url" doc:"Short-lived signed download URL"`
}

type deleteInput struct {
	MediaID string `path:"id" doc:"Attachment identifier"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
