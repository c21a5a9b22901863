package usecase

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/pkg/errors"
	"storefront/pkg/logger"
)

type AuthUseCase struct {
	firebaseAuth FirebaseAuthClient
	authState    *service.AuthStateNotifier
}

func NewAuthUseCase(firebaseAuth FirebaseAuthClient, authState *service.AuthStateNotifier) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
		authState:    authState,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

type AuthResult struct {
	UID          string
	Email        string
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		// The provider's message is surfaced as-is.
		return nil, errors.BadRequest(err.Error(), err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal(err.Error(), err)
	}

	uc.authState.Publish(&service.Principal{UID: uid, Email: input.Email})

	return &AuthResult{
		UID:          uid,
		Email:        input.Email,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized(err.Error(), err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	uc.authState.Publish(&service.Principal{UID: uid, Email: email})

	return &AuthResult{
		UID:          uid,
		Email:        email,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	token, newRefreshToken, err := uc.firebaseAuth.RefreshIdToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized(err.Error(), err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify refreshed token", err)
	}

	return &AuthResult{
		UID:          uid,
		Token:        token,
		RefreshToken: newRefreshToken,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context) error {
	uc.authState.Publish(nil)
	return nil
}
