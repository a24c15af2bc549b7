package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"chatlog_service/internal/chatlog/domain"
	errprocess "chatlog_service/pkg/err"
)

// ChatLogRepository definition per-user chat log storage
type ChatLogRepository interface {
	// Create 新增一則訊息並回傳新的 message id
	Create(ctx context.Context, user string, msg domain.ChatMessage) (int64, error)
	// List 依寫入順序回傳最多 limit 則訊息
	List(ctx context.Context, user string, limit int) ([]domain.ChatMessage, error)
	// DeleteAll 刪除 user 所有訊息, 不存在的 user 也不算錯誤
	DeleteAll(ctx context.Context, user string) error
	// DeleteOne 刪除 id 等於 msgID 的第一則訊息
	DeleteOne(ctx context.Context, user, msgID string) error
}

type memoryChatLogRepository struct {
	mu     sync.RWMutex
	logs   map[string][]domain.ChatMessage
	lastID int64
}

// NewMemoryChatLogRepository create an empty in-memory ChatLogRepository
func NewMemoryChatLogRepository() ChatLogRepository {
	return &memoryChatLogRepository{
		logs: make(map[string][]domain.ChatMessage),
	}
}

func (r *memoryChatLogRepository) Create(_ context.Context, user string, msg domain.ChatMessage) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	msg.ID = r.lastID
	r.logs[user] = append(r.logs[user], msg)
	return msg.ID, nil
}

func (r *memoryChatLogRepository) List(_ context.Context, user string, limit int) ([]domain.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.logs[user]
	if limit > len(msgs) {
		limit = len(msgs)
	}
	if limit < 0 {
		limit = 0
	}

	out := make([]domain.ChatMessage, limit)
	copy(out, msgs[:limit])
	return out, nil
}

func (r *memoryChatLogRepository) DeleteAll(_ context.Context, user string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.logs, user)
	return nil
}

func (r *memoryChatLogRepository) DeleteOne(_ context.Context, user, msgID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, ok := r.logs[user]
	if !ok {
		return errprocess.Set(domain.ErrUserNotFound, fmt.Sprintf("User not found: %s", user))
	}

	for i, msg := range msgs {
		if strconv.FormatInt(msg.ID, 10) != msgID {
			continue
		}
		// the user key stays even when its last message goes away
		r.logs[user] = append(msgs[:i:i], msgs[i+1:]...)
		return nil
	}

	return errprocess.Set(domain.ErrMessageNotFound, fmt.Sprintf("Message not found with ID: %s", msgID))
}
