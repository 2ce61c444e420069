// Package router đăng ký các route thuộc domain Community: Videos, Articles.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	communityhdl "github.com/werbhq/schello-public/internal/api/community/handler"
	apirouter "github.com/werbhq/schello-public/internal/api/router"
)

// Register đăng ký tất cả route community lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	videoHandler, err := communityhdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("create community video handler: %w", err)
	}
	v1.Post("/community/videos", videoHandler.HandleSubmit)
	v1.Get("/community/videos", videoHandler.HandleList)
	v1.Get("/community/videos/moderation", videoHandler.HandleListModeration)

	articleHandler, err := communityhdl.NewArticleHandler()
	if err != nil {
		return fmt.Errorf("create community article handler: %w", err)
	}
	v1.Post("/community/articles", articleHandler.HandleSubmit)
	v1.Get("/community/articles", articleHandler.HandleList)
	v1.Get("/community/articles/moderation", articleHandler.HandleListModeration)

	return nil
}
