package app

import (
	"context"
	"fmt"
	"strconv"

	"chatlog_service/internal/chatlog/domain"
	"chatlog_service/internal/chatlog/repository"
	errprocess "chatlog_service/pkg/err"
	"chatlog_service/pkg/logger"

	"go.uber.org/zap"
)

// ChatLogUseCase 封裝了對外提供的 chat log 服務
type ChatLogUseCase interface {
	CreateChatLog(ctx context.Context, user string, req domain.CreateChatLogReq) (int64, error)
	GetChatLogs(ctx context.Context, user, rawLimit string) ([]domain.ChatMessage, error)
	DeleteAllChatLogs(ctx context.Context, user string) (string, error)
	DeleteChatLog(ctx context.Context, user, msgID string) (string, error)
}

type chatLogUseCase struct {
	repo         repository.ChatLogRepository
	defaultLimit int
}

// NewChatLogUseCase create a ChatLogUseCase, defaultLimit <= 0 falls back to domain.DefaultLimit
func NewChatLogUseCase(repo repository.ChatLogRepository, defaultLimit int) ChatLogUseCase {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultLimit
	}
	return &chatLogUseCase{
		repo:         repo,
		defaultLimit: defaultLimit,
	}
}

func (uc *chatLogUseCase) CreateChatLog(ctx context.Context, user string, req domain.CreateChatLogReq) (int64, error) {
	id, err := uc.repo.Create(ctx, user, domain.ChatMessage{
		Message:   req.Message,
		Timestamp: req.Timestamp,
		IsSent:    req.IsSent,
	})
	if err != nil {
		logger.Log.Error("create chat log failed", zap.String("user", user), zap.Error(err))
		return 0, err
	}

	logger.Log.Debug("chat log created", zap.String("user", user), zap.Int64("id", id))
	return id, nil
}

func (uc *chatLogUseCase) GetChatLogs(ctx context.Context, user, rawLimit string) ([]domain.ChatMessage, error) {
	limit, err := uc.parseLimit(rawLimit)
	if err != nil {
		return nil, err
	}
	msgs, err := uc.repo.List(ctx, user, limit)
	if err != nil {
		logger.Log.Error("list chat logs failed", zap.String("user", user), zap.Error(err))
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return msgs, nil
}

// parseLimit empty means default, anything else must be a non-negative integer
func (uc *chatLogUseCase) parseLimit(raw string) (int, error) {
	if raw == "" {
		return uc.defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errprocess.Set(domain.ErrInvalidParameter, fmt.Sprintf("Invalid limit parameter: %s", raw))
	}
	return limit, nil
}

func (uc *chatLogUseCase) DeleteAllChatLogs(ctx context.Context, user string) (string, error) {
	if err := uc.repo.DeleteAll(ctx, user); err != nil {
		logger.Log.Error("delete chat logs failed", zap.String("user", user), zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("All chat logs for user %s have been deleted.", user), nil
}

func (uc *chatLogUseCase) DeleteChatLog(ctx context.Context, user, msgID string) (string, error) {
	if err := uc.repo.DeleteOne(ctx, user, msgID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Chat log with ID %s for user %s has been deleted.", msgID, user), nil
}
