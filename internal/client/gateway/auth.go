package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"emojournal/internal/client/models"
	"emojournal/internal/common"
)

// AuthClient talks to the auth backend. It deliberately uses a plain HTTP
// client: auth endpoints must not pass through the refresh transport or a
// rejected login would trigger a refresh of its own.
type AuthClient struct {
	baseURL string
	http    *http.Client
}

func NewAuthClient(baseURL string, httpClient *http.Client) *AuthClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &AuthClient{baseURL: baseURL, http: httpClient}
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges username/password for an access/refresh token pair.
// Both tokens are required; a response missing either is rejected.
func (a *AuthClient) Login(ctx context.Context, username, password string) (access, refresh string, err error) {
	var tp tokenPair
	err = a.post(ctx, "/auth/login/", map[string]string{
		"username": username,
		"password": password,
	}, &tp)
	if err != nil {
		return "", "", err
	}
	if tp.Access == "" || tp.Refresh == "" {
		return "", "", common.ErrInvalidTokenResponse
	}
	return tp.Access, tp.Refresh, nil
}

// Register creates a new account. It does not authenticate; callers
// follow up with Login.
func (a *AuthClient) Register(ctx context.Context, username, email, password string) error {
	return a.post(ctx, "/auth/register/", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, nil)
}

// Me returns the account behind the given access token.
func (a *AuthClient) Me(ctx context.Context, accessToken string) (models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/auth/me/", nil)
	if err != nil {
		return models.User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.http.Do(req)
	if err != nil {
		return models.User{}, fmt.Errorf("me: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.User{}, statusError("me", resp)
	}

	// The id arrives as a number; the local model keeps it as a string.
	var wire struct {
		Id       json.Number `json:"id"`
		Username string      `json:"username"`
		Email    string      `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return models.User{}, fmt.Errorf("error decoding me response: %w", err)
	}
	return models.User{Id: wire.Id.String(), Username: wire.Username, Email: wire.Email}, nil
}

// Refresh exchanges the refresh token for a new access token. The response
// may or may not rotate the refresh token; an empty second return keeps
// the stored one.
func (a *AuthClient) Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error) {
	var tp tokenPair
	err = a.post(ctx, "/auth/token/refresh/", map[string]string{"refresh": refreshToken}, &tp)
	if err != nil {
		return "", "", err
	}
	if tp.Access == "" {
		return "", "", common.ErrInvalidTokenResponse
	}
	return tp.Access, tp.Refresh, nil
}

// Reachable probes the auth backend. Any HTTP response, including a 401,
// proves reachability; only transport-level failures count as unreachable.
func (a *AuthClient) Reachable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/auth/me/", nil)
	if err != nil {
		return err
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func (a *AuthClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("error decoding %s response: %w", path, err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return nil
}
