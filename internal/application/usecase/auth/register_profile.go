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

// RegisterProfileInput represents the input for profile registration.
type RegisterProfileInput struct {
	Name     string
	Password string
}

// RegisterProfileOutput represents the output of profile registration.
type RegisterProfileOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// RegisterProfileUseCase handles profile registration logic.
type RegisterProfileUseCase struct {
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterProfileUseCase creates a new RegisterProfileUseCase instance.
func NewRegisterProfileUseCase(
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterProfileUseCase {
	return &RegisterProfileUseCase{
		profileRepo:     profileRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the profile registration.
func (uc *RegisterProfileUseCase) Execute(ctx context.Context, input RegisterProfileInput) (*RegisterProfileOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeEmptyProfileName,
			"profile name must not be empty",
			domainerror.ErrEmptyProfileName,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.profileRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileAlreadyExists,
			"a profile with this name already exists",
			domainerror.ErrProfileAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := entity.NewProfile(name, passwordHash)
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, profile.ID, profile.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterProfileOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Profile:      profile,
	}, nil
}
