package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAsWithPassword)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAsWithPassword)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

type authPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Profile      struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"profile"`
}

// authenticate posts credentials and stores the issued tokens on the context.
// The refresh token and profile id also become {refresh_token} and
// {profile_id} placeholders for later steps.
func (tc *TestContext) authenticate(endpoint, name, password string) error {
	body, err := json.Marshal(map[string]string{"name": name, "password": password})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	resp, err := http.Post(tc.server.URL+endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to send auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("auth request to %s failed with status %d", endpoint, resp.StatusCode)
	}

	var payload authPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode auth response: %w", err)
	}

	tc.accessToken = payload.AccessToken
	tc.refreshToken = payload.RefreshToken
	tc.saved["access_token"] = payload.AccessToken
	tc.saved["refresh_token"] = payload.RefreshToken
	tc.saved["profile_id"] = payload.Profile.ID
	return nil
}

func iAmRegisteredAsWithPassword(ctx context.Context, name, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.authenticate("/api/v1/auth/register", name, password); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iLogInAsWithPassword(ctx context.Context, name, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.authenticate("/api/v1/auth/login", name, password); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	tc.refreshToken = ""
	return SetTestContext(ctx, tc), nil
}
