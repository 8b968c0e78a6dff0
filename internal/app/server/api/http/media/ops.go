package media

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-upload",
		Method:      http.MethodPost,
		Path:        "/api/media/upload/{noteId}",
		Summary:     "Attach a file to a note",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-list",
		Method:      http.MethodGet,
		Path:        "/api/media/{id}",
		Summary:     "List attachments of a note",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) urlOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-url",
		Method:      http.MethodGet,
		Path:        "/api/media/{id}/url",
		Summary:     "Get a signed download URL",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-delete",
		Method:      http.MethodDelete,
		Path:        "/api/media/{id}",
		Summary:     "Delete an attachment",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}
