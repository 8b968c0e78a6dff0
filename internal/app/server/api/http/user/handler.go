package user

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/session"
	"notekeeper/internal/domain/user"
)

type Handler struct {
	service        user.Servicer
	session        session.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(
	service user.Servicer,
	session session.Servicer,
	log *slog.Logger,
	middleware huma.Middlewares,
	authMiddleware huma.Middlewares,
) *Handler {
	return &Handler{
		service:        service,
		session:        session,
		log:            log,
		middleware:     middleware,
		authMiddleware: authMiddleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.verifyOp(), h.verify)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) signup(ctx context.Context, input *signupInput) (*signupOutput, error) {
	u, requiresConfirmation, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error400BadRequest("Email already registered")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("signup failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	if requiresConfirmation {
		return &signupOutput{
			Body: SignupResponse{
				RequiresConfirmation: true,
				Message:              "Check your email to confirm your account",
			},
		}, nil
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	view := u.ToView()
	return &signupOutput{
		Body: SignupResponse{Token: token, User: &view},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotConfirmed):
			return nil, huma.Error401Unauthorized("Email not confirmed")
		case errors.Is(err, user.ErrInvalidAuth):
			return nil, huma.Error401Unauthorized("Invalid email or password")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("login failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &loginOutput{
		Body: LoginResponse{Token: token, User: u.ToView()},
	}, nil
}

func (h *Handler) verify(ctx context.Context, _ *verifyInput) (*verifyOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		h.log.Error("verify failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &verifyOutput{Body: VerifyResponse{User: u.ToView()}}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	token := strings.TrimSpace(strings.TrimPrefix(input.Authorization, "Bearer "))
	if err := h.session.Revoke(ctx, token); err != nil {
		h.log.Error("logout failed", slog.String("error", err.Error()))
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &logoutOutput{Body: LogoutResponse{Success: true}}, nil
}
