package service

import (
	"context"
	"errors"
	"testing"

	"cardinal/events"
	"cardinal/models"
	"cardinal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEconomyService_GetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("existing account", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		account := &models.UserAccount{UserID: 123456, UserName: "testuser", Currency: 500}
		mockAccounts.On("GetByUserID", ctx, int64(123456)).Return(account, nil)

		got, err := service.GetAccount(ctx, 123456)

		assert.NoError(t, err)
		assert.Equal(t, account, got)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("missing account is not an error", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		mockAccounts.On("GetByUserID", ctx, int64(404404)).Return(nil, nil)

		got, err := service.GetAccount(ctx, 404404)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("storage error is surfaced", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		mockAccounts.On("GetByUserID", ctx, int64(1)).Return(nil, errors.New("disk unhappy"))

		got, err := service.GetAccount(ctx, 1)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestEconomyService_ApplyOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("win applies delta and publishes", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		mockAccounts.On("ApplyCurrencyDelta", ctx, int64(1001), int64(50)).Return(int64(150), nil)
		mockPublisher.On("Emit", ctx, events.BalanceChangeEvent{
			UserID:     1001,
			Delta:      50,
			NewBalance: 150,
		}).Return()

		newBalance, err := service.ApplyOutcome(ctx, 1001, 50)

		assert.NoError(t, err)
		assert.Equal(t, int64(150), newBalance)
		mockAccounts.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("draw dispatches nothing", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		newBalance, err := service.ApplyOutcome(ctx, 1001, 0)

		assert.NoError(t, err)
		assert.Zero(t, newBalance)
		mockAccounts.AssertNotCalled(t, "ApplyCurrencyDelta", mock.Anything, mock.Anything, mock.Anything)
		mockPublisher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("missing account keeps ErrNotFound identity", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		mockAccounts.On("ApplyCurrencyDelta", ctx, int64(999), int64(-30)).Return(int64(0), repository.ErrNotFound)

		_, err := service.ApplyOutcome(ctx, 999, -30)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		mockPublisher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestEconomyService_TopAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates with limit", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		xp := int64(50)
		accounts := []*models.UserAccount{{UserID: 1, UserName: "high", TotalXp: &xp}}
		mockAccounts.On("GetTopByExperience", ctx, 3).Return(accounts, nil)

		got, err := service.TopAccounts(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, accounts, got)
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		mockAccounts := new(MockUserAccountRepository)
		mockPublisher := new(MockEventPublisher)
		service := NewEconomyService(mockAccounts, mockPublisher)

		_, err := service.TopAccounts(ctx, 0)

		assert.Error(t, err)
		mockAccounts.AssertNotCalled(t, "GetTopByExperience", mock.Anything, mock.Anything)
	})
}
