package note

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/note"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.searchPartialOp(), h.searchPartial)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	notes, err := h.service.List(ctx, userID)
	if err != nil {
		h.log.Error("list notes failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &listOutput{Body: note.Views(notes)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Create(ctx, userID, input.Body.Content)
	if err != nil {
		h.log.Error("create note failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &createOutput{Body: n.ToView()}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Update(ctx, userID, input.ID, input.Body.Content)
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return nil, huma.Error404NotFound("Note not found")
		}
		h.log.Error("update note failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &updateOutput{Body: n.ToView()}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return nil, huma.Error404NotFound("Note not found")
		}
		h.log.Error("delete note failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &deleteOutput{Body: DeleteResponse{Success: true}}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	return h.runSearch(ctx, input.Query, h.service.Search)
}

func (h *Handler) searchPartial(ctx context.Context, input *searchInput) (*searchOutput, error) {
	return h.runSearch(ctx, input.Query, h.service.SearchPartial)
}

func (h *Handler) runSearch(
	ctx context.Context,
	query string,
	search func(context.Context, string, string) ([]note.Note, error),
) (*searchOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	notes, err := search(ctx, userID, query)
	if err != nil {
		if errors.Is(err, note.ErrEmptyQuery) {
			return nil, huma.Error400BadRequest("Search query is required")
		}
		h.log.Error("search failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &searchOutput{Body: note.Views(notes)}, nil
}
