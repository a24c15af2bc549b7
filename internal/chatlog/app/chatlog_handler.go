package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"chatlog_service/internal/chatlog/domain"
	errprocess "chatlog_service/pkg/err"
	"chatlog_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// ChatLogHandler 处理 chat log 相关的 HTTP 请求
type ChatLogHandler struct {
	Usecase ChatLogUseCase
}

// NewChatLogHandler 创建新的 ChatLogHandler
func NewChatLogHandler(uc ChatLogUseCase) *ChatLogHandler {
	return &ChatLogHandler{Usecase: uc}
}

// fiber reuses the request buffers, params kept past the handler must be copied
func param(c *fiber.Ctx, key string) string {
	return utils.CopyString(c.Params(key))
}

// CreateChatLog 新增一則 chat log
// @Summary Create chat log
// @Tags ChatLogs
// @Accept json
// @Produce plain
// @Param user path string true "user"
// @Param request body domain.CreateChatLogReq true "chat message"
// @Success 200 {string} string "message id"
// @Failure 400 {string} string "malformed request"
// @Router /chatlogs/{user} [post]
func (h *ChatLogHandler) CreateChatLog(c *fiber.Ctx) error {
	user := param(c, "user")
	log := middlewares.Logger(c)

	// body is JSON regardless of Content-Type
	var req domain.CreateChatLogReq
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Debug("cannot decode chat log body", zap.String("user", user), zap.Error(err))
		return h.sendError(c, errprocess.Set(domain.ErrMalformedRequest, fmt.Sprintf("Malformed request body for user %s", user)))
	}

	id, err := h.Usecase.CreateChatLog(c.UserContext(), user, req)
	if err != nil {
		return h.sendError(c, err)
	}

	log.Info("CreateChatLog", zap.String("user", user), zap.Int64("id", id))
	return c.SendString(strconv.FormatInt(id, 10))
}

// GetChatLogs 取得 user 的 chat logs
// @Summary List chat logs
// @Tags ChatLogs
// @Produce json
// @Param user path string true "user"
// @Param limit query int false "max messages" default(10)
// @Success 200 {array} domain.ChatMessage
// @Failure 400 {string} string "invalid limit"
// @Router /chatlogs/{user} [get]
func (h *ChatLogHandler) GetChatLogs(c *fiber.Ctx) error {
	user := param(c, "user")

	msgs, err := h.Usecase.GetChatLogs(c.UserContext(), user, c.Query("limit"))
	if err != nil {
		return h.sendError(c, err)
	}

	middlewares.Logger(c).Debug("GetChatLogs", zap.String("user", user), zap.Int("count", len(msgs)))
	return c.JSON(msgs)
}

// DeleteAllChatLogs 刪除 user 全部 chat logs
// @Summary Delete all chat logs of a user
// @Tags ChatLogs
// @Produce plain
// @Param user path string true "user"
// @Success 200 {string} string "confirmation"
// @Router /chatlogs/{user} [delete]
func (h *ChatLogHandler) DeleteAllChatLogs(c *fiber.Ctx) error {
	user := param(c, "user")

	msg, err := h.Usecase.DeleteAllChatLogs(c.UserContext(), user)
	if err != nil {
		return h.sendError(c, err)
	}

	middlewares.Logger(c).Info("DeleteAllChatLogs", zap.String("user", user))
	return c.SendString(msg)
}

// DeleteChatLog 刪除單一 chat log
// @Summary Delete one chat log
// @Tags ChatLogs
// @Produce plain
// @Param user path string true "user"
// @Param msgid path string true "message id"
// @Success 200 {string} string "confirmation"
// @Failure 404 {string} string "user or message not found"
// @Router /chatlogs/{user}/{msgid} [delete]
func (h *ChatLogHandler) DeleteChatLog(c *fiber.Ctx) error {
	user := param(c, "user")
	msgID := param(c, "msgid")

	msg, err := h.Usecase.DeleteChatLog(c.UserContext(), user, msgID)
	if err != nil {
		return h.sendError(c, err)
	}

	middlewares.Logger(c).Info("DeleteChatLog", zap.String("user", user), zap.String("msgid", msgID))
	return c.SendString(msg)
}

func (h *ChatLogHandler) sendError(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status == fiber.StatusInternalServerError {
		middlewares.Logger(c).Error("chat log request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(status).SendString("internal server error")
	}
	return c.Status(status).SendString(err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedRequest), errors.Is(err, domain.ErrInvalidParameter):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrMessageNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
