package excisehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/werbhq/schello-public/internal/api/base/handler"
	excisesvc "github.com/werbhq/schello-public/internal/api/excise/service"
)

// MediaHandler xử lý các request đọc nội dung biên tập
type MediaHandler struct {
	MediaService *excisesvc.MediaService
}

// NewMediaHandler tạo mới MediaHandler
func NewMediaHandler() (*MediaHandler, error) {
	mediaService, err := excisesvc.NewMediaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create excise media service: %v", err)
	}
	return &MediaHandler{MediaService: mediaService}, nil
}

// HandleListEvents trả về danh sách sự kiện biên tập
// @Router /excise/events [get]
func (h *MediaHandler) HandleListEvents(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		events, err := h.MediaService.ListEvents(c.Context())
		basehdl.HandleResponse(c, events, err)
		return nil
	})
}

// HandleListVideos trả về danh sách video biên tập
// @Router /excise/videos [get]
func (h *MediaHandler) HandleListVideos(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		videos, err := h.MediaService.ListVideos(c.Context())
		basehdl.HandleResponse(c, videos, err)
		return nil
	})
}

// HandleListNews trả về danh sách tin tức biên tập
// @Router /excise/news [get]
func (h *MediaHandler) HandleListNews(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		news, err := h.MediaService.ListNews(c.Context())
		basehdl.HandleResponse(c, news, err)
		return nil
	})
}
