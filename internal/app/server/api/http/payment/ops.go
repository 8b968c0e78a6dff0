package payment

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "payments-create",
		Method:      http.MethodPost,
		Path:        "/api/payments/create",
		Summary:     "Create a hosted checkout link",
		Tags:        []string{"payments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) webhookOp() huma.Operation {
	return huma.Operation{
		OperationID: "payments-webhook",
		Method:      http.MethodPost,
		Path:        "/api/payments/webhook",
		Summary:     "Receive provider payment events",
		Tags:        []string{"payments"},
		Middlewares: h.webhookMW,
	}
}
