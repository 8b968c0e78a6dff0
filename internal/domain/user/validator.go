package user

import "github.com/go-playground/validator/v10"

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() Validator {
	return Validator{validate: validator.New()}
}

func (v Validator) ValidateSignup(email, password string) error {
	return v.validate.Struct(credentials{Email: email, Password: password})
}

// ValidateLogin only checks shape; authentication failures must not reveal
// which part was wrong.
func (v Validator) ValidateLogin(email string) error {
	return v.validate.Var(email, "required,email")
}
