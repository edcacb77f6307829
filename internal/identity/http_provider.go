package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider talks to a GoTrue-style identity service over its admin API.
// All requests carry the service-role key; end users never hit these routes.
type HTTPProvider struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewHTTPProvider(baseURL, serviceKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type adminUserResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	EmailConfirmedAt string `json:"email_confirmed_at"`
}

type adminErrorResponse struct {
	Code    string `json:"error_code"`
	Message string `json:"msg"`
}

func (p *HTTPProvider) CreateIdentity(ctx context.Context, email, password string, metadata map[string]string) (*Identity, error) {
	body := map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	}
	if len(metadata) > 0 {
		body["user_metadata"] = metadata
	}

	var out adminUserResponse
	if err := p.do(ctx, http.MethodPost, "/admin/users", body, &out); err != nil {
		return nil, fmt.Errorf("identity: create %s: %w", email, err)
	}

	return &Identity{
		ID:             out.ID,
		Email:          out.Email,
		EmailConfirmed: out.EmailConfirmedAt != "",
	}, nil
}

func (p *HTTPProvider) GetIdentity(ctx context.Context, id string) (*Identity, error) {
	var out adminUserResponse
	if err := p.do(ctx, http.MethodGet, "/admin/users/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("identity: get %s: %w", id, err)
	}
	return &Identity{
		ID:             out.ID,
		Email:          out.Email,
		EmailConfirmed: out.EmailConfirmedAt != "",
	}, nil
}

func (p *HTTPProvider) DeleteIdentity(ctx context.Context, id string) error {
	if err := p.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("identity: delete %s: %w", id, err)
	}
	return nil
}

func (p *HTTPProvider) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrIdentityNotFound
	case res.StatusCode == http.StatusConflict || res.StatusCode == http.StatusUnprocessableEntity:
		var apiErr adminErrorResponse
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.Code == "email_exists" || res.StatusCode == http.StatusConflict {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("status %d: %s", res.StatusCode, apiErr.Message)
	case res.StatusCode >= 400:
		var apiErr adminErrorResponse
		_ = json.Unmarshal(raw, &apiErr)
		return fmt.Errorf("status %d: %s", res.StatusCode, apiErr.Message)
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}
