package service

import (
	"context"
	"fmt"

	"cardinal/events"
	"cardinal/models"
)

// economyService implements the EconomyService interface
type economyService struct {
	accounts  UserAccountRepository
	publisher EventPublisher
}

// NewEconomyService creates a new economy service
func NewEconomyService(accounts UserAccountRepository, publisher EventPublisher) EconomyService {
	return &economyService{
		accounts:  accounts,
		publisher: publisher,
	}
}

// GetAccount retrieves an account. A missing account is a normal outcome
// and returns (nil, nil); callers report "not initialized" rather than a
// failure.
func (s *economyService) GetAccount(ctx context.Context, userID int64) (*models.UserAccount, error) {
	account, err := s.accounts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// TopAccounts returns the experience leaderboard, bounded by limit
func (s *economyService) TopAccounts(ctx context.Context, limit int) ([]*models.UserAccount, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	accounts, err := s.accounts.GetTopByExperience(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top accounts: %w", err)
	}
	return accounts, nil
}

// ApplyOutcome applies a signed game outcome to an account's balance.
// The adjustment runs as one atomic store statement, so concurrent
// outcomes against the same account never lose updates. A zero delta is
// a draw: nothing is dispatched to the store and the returned balance
// is zero and meaningless.
func (s *economyService) ApplyOutcome(ctx context.Context, userID int64, delta int64) (int64, error) {
	if delta == 0 {
		return 0, nil
	}

	newBalance, err := s.accounts.ApplyCurrencyDelta(ctx, userID, delta)
	if err != nil {
		return 0, err
	}

	s.publisher.Emit(ctx, events.BalanceChangeEvent{
		UserID:     userID,
		Delta:      delta,
		NewBalance: newBalance,
	})

	return newBalance, nil
}
