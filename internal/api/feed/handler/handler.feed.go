package feedhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/werbhq/schello-public/internal/api/base/handler"
	feedsvc "github.com/werbhq/schello-public/internal/api/feed/service"
)

// FeedHandler xử lý các request đọc feed tổng hợp
type FeedHandler struct {
	FeedService *feedsvc.FeedService
}

// NewFeedHandler tạo mới FeedHandler
func NewFeedHandler() (*FeedHandler, error) {
	feedService, err := feedsvc.NewFeedService()
	if err != nil {
		return nil, fmt.Errorf("failed to create feed service: %v", err)
	}
	return &FeedHandler{FeedService: feedService}, nil
}

// HandleFeed trả về feed tổng hợp, tùy chọn lọc theo query q
// @Summary Feed tổng hợp
// @Description Gộp nội dung cộng đồng đã duyệt và nội dung biên tập, sort giảm dần theo timestamp
// @Param q query string false "Từ khóa search (có hiệu lực khi dài hơn 2 ký tự)"
// @Router /feed [get]
func (h *FeedHandler) HandleFeed(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		query := c.Query("q", "")
		items, err := h.FeedService.Feed(c.Context(), query)
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}

// HandleEvents trả về rail sự kiện biên tập
// @Router /feed/events [get]
func (h *FeedHandler) HandleEvents(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		events, err := h.FeedService.Events(c.Context())
		basehdl.HandleResponse(c, events, err)
		return nil
	})
}
