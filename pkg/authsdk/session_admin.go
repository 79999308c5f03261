package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// AdminSession calls the client registry API.
type AdminSession struct {
	client *SDKClient
	user   string
	pass   string
}

func (a *AdminSession) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var r io.Reader
	headers := map[string]string{}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		r = bytes.NewReader(b)
		headers["Content-Type"] = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, a.client.url(path), r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(a.user, a.pass)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := a.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// CreateClient registers a client. The response carries the plaintext secret
// for web applications; it is not retrievable later.
func (a *AdminSession) CreateClient(ctx context.Context, req ClientRequest) (*ClientInfo, error) {
	resp, err := a.do(ctx, http.MethodPost, "/v1/clients", req)
	if err != nil {
		return nil, err
	}

	var out ClientInfo
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients returns all registered clients ordered by id.
func (a *AdminSession) ListClients(ctx context.Context) (*ListClientsResponse, error) {
	resp, err := a.do(ctx, http.MethodGet, "/v1/clients", nil)
	if err != nil {
		return nil, err
	}

	var out ListClientsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClient returns a single client.
func (a *AdminSession) GetClient(ctx context.Context, id string) (*ClientInfo, error) {
	resp, err := a.do(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out ClientInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient replaces a client's registration.
func (a *AdminSession) UpdateClient(ctx context.Context, id string, req ClientRequest) (*ClientInfo, error) {
	resp, err := a.do(ctx, http.MethodPut, "/v1/clients/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out ClientInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient removes a client with its approvals, nonces, codes and tokens.
func (a *AdminSession) DeleteClient(ctx context.Context, id string) error {
	resp, err := a.do(ctx, http.MethodDelete, "/v1/clients/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
