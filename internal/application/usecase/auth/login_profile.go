// Package auth contains profile gate use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// LoginProfileInput represents the input for profile login.
type LoginProfileInput struct {
	Name     string
	Password string
}

// LoginProfileOutput represents the output of profile login.
type LoginProfileOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// LoginProfileUseCase handles profile login logic.
type LoginProfileUseCase struct {
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginProfileUseCase creates a new LoginProfileUseCase instance.
func NewLoginProfileUseCase(
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginProfileUseCase {
	return &LoginProfileUseCase{
		profileRepo:     profileRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the profile login.
func (uc *LoginProfileUseCase) Execute(ctx context.Context, input LoginProfileInput) (*LoginProfileOutput, error) {
	// Same generic error for unknown name and bad password.
	profile, err := uc.profileRepo.FindByName(ctx, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid profile name or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(profile.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid profile name or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, profile.ID, profile.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginProfileOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Profile:      profile,
	}, nil
}
