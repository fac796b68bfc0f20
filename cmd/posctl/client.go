package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tireshop/pos-system/internal/session"
)

// apiClient is a thin HTTP client for the POS backend. Every authenticated
// request carries the cached Bearer token; a 401 response clears the
// session so the next command starts from a clean login.
type apiClient struct {
	baseURL string
	guard   *session.Guard
	http    *http.Client
}

func newAPIClient(baseURL string, guard *session.Guard) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		guard:   guard,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type loginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *session.User `json:"user"`
}

func (c *apiClient) login(username, password string) (*session.User, error) {
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})

	resp, err := c.http.Post(c.baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if lr.AccessToken == "" || lr.User == nil {
		return nil, fmt.Errorf("login response missing access_token or user")
	}

	if err := c.guard.Login(lr.AccessToken, lr.User); err != nil {
		return nil, fmt.Errorf("cache session: %w", err)
	}
	return lr.User, nil
}

// do issues an authenticated request and decodes the JSON response into out.
// Headers may be nil. A nil out discards the body.
func (c *apiClient) do(method, path string, headers map[string]string, payload, out any) error {
	token, ok := c.guard.Token()
	if !ok {
		return fmt.Errorf("not logged in (run `posctl login`)")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Server rejected the token; the cached session is worthless now.
		_ = c.guard.Logout()
		return fmt.Errorf("session rejected by server, please login again")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
		return fmt.Errorf("%s (status %d)", envelope.Error, resp.StatusCode)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
