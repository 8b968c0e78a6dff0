package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-list",
		Method:      http.MethodGet,
		Path:        "/api/notes",
		Summary:     "List all notes, newest first",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-create",
		Method:      http.MethodPost,
		Path:        "/api/notes",
		Summary:     "Create a note",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-update",
		Method:      http.MethodPut,
		Path:        "/api/notes/{id}",
		Summary:     "Replace note content",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-delete",
		Method:      http.MethodDelete,
		Path:        "/api/notes/{id}",
		Summary:     "Delete a note",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-search",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Full-text search over notes",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchPartialOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-search-partial",
		Method:      http.MethodGet,
		Path:        "/api/search/partial",
		Summary:     "Prefix search over notes",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}
