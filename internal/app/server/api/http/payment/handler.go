package payment

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/payment"
	"notekeeper/internal/domain/user"
)

type Handler struct {
	service    payment.Servicer
	users      user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	webhookMW  huma.Middlewares
}

func NewHandler(
	service payment.Servicer,
	users user.Servicer,
	log *slog.Logger,
	middleware huma.Middlewares,
	webhookMW huma.Middlewares,
) *Handler {
	return &Handler{
		service:    service,
		users:      users,
		log:        log,
		middleware: middleware,
		webhookMW:  webhookMW,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.webhookOp(), h.webhook)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.users.FindByID(ctx, userID)
	if err != nil {
		h.log.Error("lookup payer failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	p, url, err := h.service.CreateLink(ctx, userID, u.Email, input.Body.ProductID, input.Body.Amount, input.Body.Currency)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("create payment link failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &createOutput{
		Body: CreateResponse{PaymentID: p.ID, URL: url},
	}, nil
}

func (h *Handler) webhook(ctx context.Context, input *webhookInput) (*webhookOutput, error) {
	signature := input.DodoSignature
	if signature == "" {
		signature = input.XDodoSignature
	}

	if err := h.service.HandleWebhook(ctx, input.RawBody, signature); err != nil {
		if errors.Is(err, payment.ErrBadSignature) {
			return nil, huma.Error401Unauthorized("Invalid signature")
		}
		h.log.Error("webhook processing failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &webhookOutput{Body: WebhookResponse{Received: true}}, nil
}
