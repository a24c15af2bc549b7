package domain

import "errors"

// ChatMessage 表示一則聊天紀錄. ID is assigned by the store and is not part of the JSON shape.
type ChatMessage struct {
	ID        int64  `json:"-"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	IsSent    bool   `json:"isSent"`
}

// CreateChatLogReq body of POST /chatlogs/{user}
type CreateChatLogReq struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	IsSent    bool   `json:"isSent"`
}

// DefaultLimit number of messages returned when the caller gives no limit
const DefaultLimit = 10

// Error kinds, test with errors.Is
var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUserNotFound     = errors.New("user not found")
	ErrMessageNotFound  = errors.New("message not found")
)
