package service

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CloseoutService runs the month-end wizard as a server-side state machine:
// Reviewing -> Sweeping -> Completed. Sessions live in memory; the durable
// record of a closeout is the successor budget itself, so an abandoned
// session simply restarts from Reviewing.
type CloseoutService struct {
	budgets *BudgetService

	mu       sync.Mutex
	sessions map[string]*CloseoutSession
}

// NewCloseoutService creates a new CloseoutService.
func NewCloseoutService(budgets *BudgetService) *CloseoutService {
	return &CloseoutService{
		budgets:  budgets,
		sessions: make(map[string]*CloseoutSession),
	}
}

// Summary recomputes the month-end summary from committed rows and puts the
// month's session into Reviewing if it has none. Repeatable at any time
// before Completed; never stale.
func (s *CloseoutService) Summary(ctx context.Context, month Month) (*CloseoutSummary, error) {
	mb, err := s.budgets.GetBudget(ctx, month)
	if err != nil {
		return nil, err
	}
	summary := BuildCloseoutSummary(*mb)

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[month.String()]
	if !ok {
		session = &CloseoutSession{Month: month, State: CloseoutStateReviewing}
		s.sessions[month.String()] = session
	}
	session.Summary = summary

	return &summary, nil
}

// PrepareSweep validates the requested sweep against a fresh summary and
// advances the session to Sweeping. The durable effect happens in the sweep
// action, which re-validates inside its transaction.
func (s *CloseoutService) PrepareSweep(ctx context.Context, month Month, amount decimal.Decimal, goalID *uuid.UUID) error {
	mb, err := s.budgets.GetBudget(ctx, month)
	if err != nil {
		return err
	}
	summary := BuildCloseoutSummary(*mb)

	if err := ValidateSweep(summary, amount, goalID != nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[month.String()]
	if !ok {
		session = &CloseoutSession{Month: month}
		s.sessions[month.String()] = session
	}
	session.State = CloseoutStateSweeping
	session.Summary = summary
	session.SweepAmount = amount
	session.GoalID = goalID

	return nil
}

// CompleteMonth discards the month's session after a successful
// start-new-month. The new budget row is the durable record from here on.
func (s *CloseoutService) CompleteMonth(month Month) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, month.String())
}

// Session returns a copy of the month's session, if one exists.
func (s *CloseoutService) Session(month Month) (CloseoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[month.String()]
	if !ok {
		return CloseoutSession{}, false
	}
	return *session, true
}
