package communityhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/werbhq/schello-public/internal/api/base/handler"
	communitydto "github.com/werbhq/schello-public/internal/api/community/dto"
	communitymodels "github.com/werbhq/schello-public/internal/api/community/models"
	communitysvc "github.com/werbhq/schello-public/internal/api/community/service"
	"github.com/werbhq/schello-public/internal/logger"
)

// VideoHandler xử lý các request liên quan đến video cộng đồng
type VideoHandler struct {
	*basehdl.BaseHandler[communitymodels.CommunityVideo, communitydto.SubmissionInput]
	VideoService *communitysvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := communitysvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create community video service: %v", err)
	}
	hdl := &VideoHandler{VideoService: videoService}
	hdl.BaseHandler = basehdl.NewBaseHandler[communitymodels.CommunityVideo, communitydto.SubmissionInput](videoService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleSubmit nhận submission video từ cộng đồng
// @Summary Gửi video cộng đồng
// @Description Shape submission với visible=false và lưu vào store, chờ moderation
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Submission đã được lưu"
// @Router /community/videos [post]
func (h *VideoHandler) HandleSubmit(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(communitydto.SubmissionInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.VideoService.Submit(c.Context(), input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogSubmission("community_video", video.ID.Hex(), c)
		basehdl.HandleCreated(c, video)
		return nil
	})
}

// HandleList trả về danh sách video đã duyệt
// @Router /community/videos [get]
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		videos, err := h.VideoService.List(c.Context())
		basehdl.HandleResponse(c, videos, err)
		return nil
	})
}

// HandleListModeration trả về toàn bộ video kể cả chưa duyệt (moderation tooling)
// @Router /community/videos/moderation [get]
func (h *VideoHandler) HandleListModeration(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		videos, err := h.VideoService.ListModeration(c.Context())
		if err == nil {
			logger.LogModerationAccess("community_video", len(videos), c)
		}
		basehdl.HandleResponse(c, videos, err)
		return nil
	})
}
