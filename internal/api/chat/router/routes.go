// Package router đăng ký các route thuộc domain Chat.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chathdl "github.com/werbhq/schello-public/internal/api/chat/handler"
	apirouter "github.com/werbhq/schello-public/internal/api/router"
)

// Register đăng ký tất cả route chat lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	chatHandler, err := chathdl.NewChatHandler()
	if err != nil {
		return fmt.Errorf("create chat handler: %w", err)
	}
	v1.Post("/chat/message", chatHandler.HandleMessage)

	return nil
}
