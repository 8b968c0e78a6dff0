package note

import "notekeeper/internal/domain/note"

type listInput struct{}

type listOutput struct {
	Body []note.View
}

type createInput struct {
	Body NoteRequest
}

type createOutput struct {
	Body note.View
}

type updateInput struct {
	ID   string `path:"id" doc:"Note identifier"`
	Body NoteRequest
}

type updateOutput struct {
	Body note.View
}

type deleteInput struct {
	ID string `path:"id" doc:"Note identifier"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type searchInput struct {
	Query string `query:"q" doc:"Search query"`
}

type searchOutput struct {
	Body []note.View
}

type NoteRequest struct {
	Content string `json:"content" doc:"Full note content"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
