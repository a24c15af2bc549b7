package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"chatlog_service/internal/chatlog/domain"
	errprocess "chatlog_service/pkg/err"
	"chatlog_service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisEntry is the value stored in the user list; unlike the HTTP shape it keeps the id
type redisEntry struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	IsSent    bool   `json:"isSent"`
}

type redisChatLogRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisChatLogRepository create a ChatLogRepository backed by redis lists
//
//	<prefix>:seq          id counter (INCR)
//	<prefix>:user:<user>  list of JSON entries in insertion order
func NewRedisChatLogRepository(client *redis.Client, prefix string) ChatLogRepository {
	if prefix == "" {
		prefix = "chatlog"
	}
	return &redisChatLogRepository{client: client, prefix: prefix}
}

func (r *redisChatLogRepository) seqKey() string {
	return r.prefix + ":seq"
}

func (r *redisChatLogRepository) userKey(user string) string {
	return r.prefix + ":user:" + user
}

func (r *redisChatLogRepository) Create(ctx context.Context, user string, msg domain.ChatMessage) (int64, error) {
	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate message id: %w", err)
	}

	data, err := json.Marshal(redisEntry{
		ID:        id,
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
		IsSent:    msg.IsSent,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal chat message: %w", err)
	}

	if err := r.client.RPush(ctx, r.userKey(user), data).Err(); err != nil {
		return 0, fmt.Errorf("failed to append chat message: %w", err)
	}
	return id, nil
}

func (r *redisChatLogRepository) List(ctx context.Context, user string, limit int) ([]domain.ChatMessage, error) {
	out := []domain.ChatMessage{}
	// LRANGE 0 -1 would mean "everything"
	if limit <= 0 {
		return out, nil
	}

	vals, err := r.client.LRange(ctx, r.userKey(user), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat logs: %w", err)
	}

	for _, v := range vals {
		var e redisEntry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			logger.Log.Error("skip broken chat log entry", zap.String("user", user), zap.Error(err))
			continue
		}
		out = append(out, domain.ChatMessage{
			ID:        e.ID,
			Message:   e.Message,
			Timestamp: e.Timestamp,
			IsSent:    e.IsSent,
		})
	}
	return out, nil
}

func (r *redisChatLogRepository) DeleteAll(ctx context.Context, user string) error {
	if err := r.client.Del(ctx, r.userKey(user)).Err(); err != nil {
		return fmt.Errorf("failed to delete chat logs: %w", err)
	}
	return nil
}

func (r *redisChatLogRepository) DeleteOne(ctx context.Context, user, msgID string) error {
	key := r.userKey(user)

	vals, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read chat logs: %w", err)
	}
	// redis drops empty lists, so no entries means no user
	if len(vals) == 0 {
		return errprocess.Set(domain.ErrUserNotFound, fmt.Sprintf("User not found: %s", user))
	}

	for _, v := range vals {
		var e redisEntry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			continue
		}
		if strconv.FormatInt(e.ID, 10) != msgID {
			continue
		}

		// the raw value is unique because the id is, LREM 1 removes exactly that entry
		removed, err := r.client.LRem(ctx, key, 1, v).Result()
		if err != nil {
			return fmt.Errorf("failed to remove chat log: %w", err)
		}
		if removed > 0 {
			return nil
		}
		break
	}

	return errprocess.Set(domain.ErrMessageNotFound, fmt.Sprintf("Message not found with ID: %s", msgID))
}
