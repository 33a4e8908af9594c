package service

import (
	"context"

	"cardinal/events"
	"cardinal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserAccountRepository is a mock implementation of UserAccountRepository
type MockUserAccountRepository struct {
	mock.Mock
}

func (m *MockUserAccountRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAccount), args.Error(1)
}

func (m *MockUserAccountRepository) GetTopByExperience(ctx context.Context, limit int) ([]*models.UserAccount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserAccount), args.Error(1)
}

func (m *MockUserAccountRepository) ApplyCurrencyDelta(ctx context.Context, userID int64, delta int64) (int64, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// MockGuildConfigRepository is a mock implementation of GuildConfigRepository
type MockGuildConfigRepository struct {
	mock.Mock
}

func (m *MockGuildConfigRepository) GetByGuildID(ctx context.Context, guildID int64) (*models.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildConfig), args.Error(1)
}

func (m *MockGuildConfigRepository) Upsert(ctx context.Context, config *models.GuildConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockGuildConfigRepository) SetDisabledCmds(ctx context.Context, guildID int64, cmds []string) error {
	args := m.Called(ctx, guildID, cmds)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
