package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStatusComplete is the provider status for a finished checkout
const SessionStatusComplete = "complete"

// Session represents a checkout session at the payment provider
type Session struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	PaymentIntent string            `json:"payment_intent"`
	AmountTotal   int64             `json:"amount_total"` // smallest currency unit
	URL           string            `json:"url"`
	Metadata      map[string]string `json:"metadata"`
}

// CreateSessionParams carries the inputs for a new checkout session
type CreateSessionParams struct {
	ContestID     string
	CustomerEmail string
	Amount        int64
	SuccessURL    string
	CancelURL     string
}

// Provider is the payment-provider surface the settlement workflow depends on
type Provider interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*Session, error)
}

// Client is an HTTP client for the checkout provider API. With Mock enabled
// it keeps sessions in memory instead of calling out, which is how local and
// CI environments run.
type Client struct {
	BaseURL string
	APIKey  string
	Mock    bool
	client  *http.Client

	mu       sync.Mutex
	sessions map[string]*Session
}

var _ Provider = (*Client)(nil)

// NewClient creates a new checkout provider client
func NewClient(baseURL, apiKey string, mock bool) *Client {
	return &Client{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Mock:     mock,
		client:   &http.Client{Timeout: 10 * time.Second},
		sessions: make(map[string]*Session),
	}
}

// CreateSession opens a checkout session for a contest entry fee
func (c *Client) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	if c.Mock {
		return c.mockCreateSession(params)
	}

	body, err := json.Marshal(map[string]interface{}{
		"amount_total":   params.Amount,
		"customer_email": params.CustomerEmail,
		"success_url":    params.SuccessURL,
		"cancel_url":     params.CancelURL,
		"metadata": map[string]string{
			"contestId":     params.ContestID,
			"customerEmail": params.CustomerEmail,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// RetrieveSession fetches a checkout session by its reference
func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	if c.Mock {
		return c.mockRetrieveSession(sessionID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Session, error) {
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("checkout provider returned status %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// mockCreateSession creates an already-completed in-memory session so the
// settle flow can be exercised end to end without a provider account.
func (c *Client) mockCreateSession(params CreateSessionParams) (*Session, error) {
	session := &Session{
		ID:            "cs_mock_" + uuid.NewString(),
		Status:        SessionStatusComplete,
		PaymentIntent: "pi_mock_" + uuid.NewString(),
		AmountTotal:   params.Amount,
		Metadata: map[string]string{
			"contestId":     params.ContestID,
			"customerEmail": params.CustomerEmail,
		},
	}
	session.URL = c.BaseURL + "/mock-checkout/" + session.ID

	c.mu.Lock()
	c.sessions[session.ID] = session
	c.mu.Unlock()

	return session, nil
}

func (c *Client) mockRetrieveSession(sessionID string) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("checkout session %q not found", sessionID)
	}
	return session, nil
}
