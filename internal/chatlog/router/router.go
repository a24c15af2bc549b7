package router

import (
	"chatlog_service/internal/api/handlers"
	"chatlog_service/internal/chatlog/app"
	"chatlog_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册 chat log 相关的路由
func RegisterRoutes(r *fiber.App, chatLogHandler *app.ChatLogHandler) {
	r.Use(middlewares.TraceMiddleware())

	r.Get("/", handlers.ConnectCheck)
	r.Post("/debug", handlers.DebugLogFlag)

	chatLogRoutes := r.Group("/chatlogs")
	chatLogRoutes.Post("/:user", chatLogHandler.CreateChatLog)
	chatLogRoutes.Get("/:user", chatLogHandler.GetChatLogs)
	chatLogRoutes.Delete("/:user", chatLogHandler.DeleteAllChatLogs)
	chatLogRoutes.Delete("/:user/:msgid", chatLogHandler.DeleteChatLog)
}
