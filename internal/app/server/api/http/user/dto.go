package user

import "notekeeper/internal/domain/user"

type credentials struct {
	Email    string `json:"email" example:"user@example.com" doc:"User email"`
	Password string `json:"password" minLength:"6" doc:"User password"`
}

type signupInput struct {
	Body credentials
}

type signupOutput struct {
	Body SignupResponse
}

type SignupResponse struct {
	Token                string     `json:"token,omitempty"`
	User                 *user.View `json:"user,omitempty"`
	RequiresConfirmation bool       `json:"requiresConfirmation,omitempty"`
	Message              string     `json:"message,omitempty"`
}

type loginInput struct {
	Body credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  user.View `json:"user"`
}

type verifyInput struct{}

type verifyOutput struct {
	Body VerifyResponse
}

type VerifyResponse struct {
	User user.View `json:"user"`
}

type logoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token to revoke"`
}

type logoutOutput struct {
	Body LogoutResponse
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
