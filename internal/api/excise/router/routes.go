// Package router đăng ký các route thuộc domain Excise: Events, Videos, News.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	excisehdl "github.com/werbhq/schello-public/internal/api/excise/handler"
	apirouter "github.com/werbhq/schello-public/internal/api/router"
)

// Register đăng ký tất cả route excise lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	mediaHandler, err := excisehdl.NewMediaHandler()
	if err != nil {
		return fmt.Errorf("create excise media handler: %w", err)
	}
	v1.Get("/excise/events", mediaHandler.HandleListEvents)
	v1.Get("/excise/videos", mediaHandler.HandleListVideos)
	v1.Get("/excise/news", mediaHandler.HandleListNews)

	return nil
}
