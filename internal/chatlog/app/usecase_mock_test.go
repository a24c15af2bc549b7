package app

import (
	"context"

	"chatlog_service/internal/chatlog/domain"

	"github.com/stretchr/testify/mock"
)

// MockChatLogRepository mock repository.ChatLogRepository
type MockChatLogRepository struct {
	mock.Mock
}

// Create mock Create
func (m *MockChatLogRepository) Create(ctx context.Context, user string, msg domain.ChatMessage) (int64, error) {
	args := m.Called(ctx, user, msg)
	return args.Get(0).(int64), args.Error(1)
}

// List mock List
func (m *MockChatLogRepository) List(ctx context.Context, user string, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, user, limit)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteAll mock DeleteAll
func (m *MockChatLogRepository) DeleteAll(ctx context.Context, user string) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// DeleteOne mock DeleteOne
func (m *MockChatLogRepository) DeleteOne(ctx context.Context, user, msgID string) error {
	args := m.Called(ctx, user, msgID)
	return args.Error(0)
}
