package auth

import (
	"context"
	"testing"

	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

func TestLoginProfileUseCase_Execute(t *testing.T) {
	newFixture := func(t *testing.T) (*LoginProfileUseCase, *fakeTokenService) {
		t.Helper()
		repo := newFakeProfileRepository()
		tokens := newFakeTokenService()
		register := NewRegisterProfileUseCase(repo, &fakePasswordService{}, tokens)
		if _, err := register.Execute(context.Background(), RegisterProfileInput{
			Name:     "alice",
			Password: "sup3rsecret",
		}); err != nil {
			t.Fatalf("failed to seed profile: %v", err)
		}
		return NewLoginProfileUseCase(repo, &fakePasswordService{}, tokens), tokens
	}

	t.Run("logs in with the right password", func(t *testing.T) {
		uc, _ := newFixture(t)

		output, err := uc.Execute(context.Background(), LoginProfileInput{
			Name:     "alice",
			Password: "sup3rsecret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.Profile.Name != "alice" {
			t.Errorf("expected profile alice, got %q", output.Profile.Name)
		}
	})

	t.Run("wrong password yields the generic credentials error", func(t *testing.T) {
		uc, _ := newFixture(t)

		_, err := uc.Execute(context.Background(), LoginProfileInput{
			Name:     "alice",
			Password: "wrong-pass",
		})
		assertProfileErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	t.Run("unknown name yields the same generic error", func(t *testing.T) {
		uc, _ := newFixture(t)

		_, err := uc.Execute(context.Background(), LoginProfileInput{
			Name:     "nobody",
			Password: "sup3rsecret",
		})
		assertProfileErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	seed := func(t *testing.T) (*RefreshTokenUseCase, string, *fakeTokenService) {
		t.Helper()
		tokens := newFakeTokenService()
		register := NewRegisterProfileUseCase(newFakeProfileRepository(), &fakePasswordService{}, tokens)
		output, err := register.Execute(context.Background(), RegisterProfileInput{
			Name:     "alice",
			Password: "sup3rsecret",
		})
		if err != nil {
			t.Fatalf("failed to seed profile: %v", err)
		}
		return NewRefreshTokenUseCase(tokens), output.RefreshToken, tokens
	}

	t.Run("rotates the refresh token", func(t *testing.T) {
		uc, refreshToken, tokens := seed(t)

		output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: refreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.RefreshToken == refreshToken {
			t.Error("expected a new refresh token")
		}
		if !tokens.invalidated[refreshToken] {
			t.Error("expected the presented token to be invalidated")
		}
	})

	t.Run("a used token cannot be replayed", func(t *testing.T) {
		uc, refreshToken, _ := seed(t)

		if _, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: refreshToken}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: refreshToken})
		assertProfileErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("garbage tokens are rejected", func(t *testing.T) {
		uc, _, _ := seed(t)

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "not-a-token"})
		assertProfileErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})
}
