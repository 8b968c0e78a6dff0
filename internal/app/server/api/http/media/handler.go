package media

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/media"
)

type Handler struct {
	service    media.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service media.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.urlOp(), h.signedURL)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*uploadOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	file := input.RawBody.Data().File
	if !file.IsSet {
		return nil, huma.Error400BadRequest("File is required")
	}
	defer file.Close()

	m, err := h.service.Upload(ctx, userID, input.NoteID, file.Filename, file.ContentType, file.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrNoteNotFound):
			return nil, huma.Error404NotFound("Note not found")
		case errors.Is(err, media.ErrUnsupportedType):
			return nil, huma.Error400BadRequest("Unsupported file type")
		case errors.Is(err, media.ErrTooLarge):
			return nil, huma.Error400BadRequest("File exceeds the 50MB limit")
		}
		h.log.Error("upload failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &uploadOutput{Body: m.ToView()}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.ListByNote(ctx, userID, input.NoteID)
	if err != nil {
		if errors.Is(err, media.ErrNoteNotFound) {
			return nil, huma.Error404NotFound("Note not found")
		}
		h.log.Error("list media failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &listOutput{Body: media.Views(items)}, nil
}

func (h *Handler) signedURL(ctx context.Context, input *urlInput) (*urlOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	url, err := h.service.SignedURL(ctx, userID, input.MediaID)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error404NotFound("Media not found")
		}
		h.log.Error("signed url failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &urlOutput{Body: URLResponse{URL: url}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.MediaID); err != nil {
		if errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error404NotFound("Media not found")
		}
		h.log.Error("delete media failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &deleteOutput{Body: DeleteResponse{Success: true}}, nil
}
