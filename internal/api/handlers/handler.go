package handlers

import (
	"fmt"
	"strconv"

	"chatlog_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConnectCheck check api connect start
// @Summary Check service status
// @Tags Shared
// @Success 200 {string} string "chatlog service start!"
// @Router / [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("chatlog service start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Tags Shared
// @Param service query string false "Service name"
// @Param status query bool true "Debug status"
// @Success 200 {string} string "Service debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	service := c.Query("service")
	statusStr := c.Query("status")
	logger.Log.Info("debug", zap.String("service", service), zap.String("status", statusStr))

	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("Invalid status value: %s", statusStr))
	}

	logger.Log.SetDebugMode(status)
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", service, status))
}
