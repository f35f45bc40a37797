package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const getSessionPath = "/api/auth/get-session"

// RemoteSessionResolver asks an external auth server for the session behind
// the caller's cookies.
type RemoteSessionResolver struct {
	baseURL string
	client  *http.Client
}

var _ SessionResolver = (*RemoteSessionResolver)(nil)

func NewRemoteSessionResolver(baseURL string, timeout time.Duration) *RemoteSessionResolver {
	return &RemoteSessionResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type remoteSessionResponse struct {
	Data *struct {
		User *struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	} `json:"data"`
}

func (r *RemoteSessionResolver) Resolve(ctx context.Context, header http.Header) (*Session, error) {
	cookie := header.Get("Cookie")
	if cookie == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+getSessionPath, nil)
	if err != nil {
		return nil, fmt.Errorf("building session request: %w", err)
	}
	req.Header.Set("Cookie", cookie)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("session provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload remoteSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding session response: %w", err)
	}

	if payload.Data == nil || payload.Data.User == nil {
		return nil, nil
	}

	userID, err := uuid.Parse(payload.Data.User.ID)
	if err != nil {
		return nil, fmt.Errorf("session provider returned invalid user id %q: %w", payload.Data.User.ID, err)
	}

	return &Session{
		UserID: userID,
		Name:   payload.Data.User.Name,
		Email:  payload.Data.User.Email,
	}, nil
}
