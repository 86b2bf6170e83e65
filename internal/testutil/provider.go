package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/battlebox/contest-backend/pkg/checkout"
)

// ScriptedProvider is a checkout.Provider whose sessions are set up by the
// test. Err, when set, is returned from every call.
type ScriptedProvider struct {
	mu       sync.Mutex
	sessions map[string]*checkout.Session

	Err error
}

var _ checkout.Provider = (*ScriptedProvider)(nil)

// NewScriptedProvider creates an empty ScriptedProvider
func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{sessions: make(map[string]*checkout.Session)}
}

// AddSession registers a session retrievable by its ID
func (p *ScriptedProvider) AddSession(session *checkout.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessions[session.ID] = session
}

func (p *ScriptedProvider) CreateSession(ctx context.Context, params checkout.CreateSessionParams) (*checkout.Session, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	session := &checkout.Session{
		ID:            "cs_test_" + params.ContestID,
		Status:        "open",
		PaymentIntent: "pi_test_" + params.ContestID,
		AmountTotal:   params.Amount,
		URL:           "https://checkout.test/session/" + params.ContestID,
		Metadata: map[string]string{
			"contestId":     params.ContestID,
			"customerEmail": params.CustomerEmail,
		},
	}
	p.AddSession(session)
	return session, nil
}

func (p *ScriptedProvider) RetrieveSession(ctx context.Context, sessionID string) (*checkout.Session, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	session, ok := p.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such session: " + sessionID)
	}
	return session, nil
}
