package usecase

import "context"

// RegisterOutput is returned to the client after a successful registration.
type RegisterOutput struct {
	Message string       `json:"message"`
	User    *AccountView `json:"user"`
}

// LoginOutput carries the access token issued after a successful login.
type LoginOutput struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *AccountView `json:"user"`
}

// AuthUsecase is the contract the HTTP layer depends on for sign-up and sign-in.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
