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

// ArticleHandler xử lý các request liên quan đến bài viết cộng đồng
type ArticleHandler struct {
	*basehdl.BaseHandler[communitymodels.CommunityArticle, communitydto.SubmissionInput]
	ArticleService *communitysvc.ArticleService
}

// NewArticleHandler tạo mới ArticleHandler
func NewArticleHandler() (*ArticleHandler, error) {
	articleService, err := communitysvc.NewArticleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create community article service: %v", err)
	}
	hdl := &ArticleHandler{ArticleService: articleService}
	hdl.BaseHandler = basehdl.NewBaseHandler[communitymodels.CommunityArticle, communitydto.SubmissionInput](articleService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleSubmit nhận submission bài viết từ cộng đồng
// @Router /community/articles [post]
func (h *ArticleHandler) HandleSubmit(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(communitydto.SubmissionInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		article, err := h.ArticleService.Submit(c.Context(), input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogSubmission("community_article", article.ID.Hex(), c)
		basehdl.HandleCreated(c, article)
		return nil
	})
}

// HandleList trả về danh sách bài viết đã duyệt
// @Router /community/articles [get]
func (h *ArticleHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		articles, err := h.ArticleService.List(c.Context())
		basehdl.HandleResponse(c, articles, err)
		return nil
	})
}

// HandleListModeration trả về toàn bộ bài viết kể cả chưa duyệt (moderation tooling)
// @Router /community/articles/moderation [get]
func (h *ArticleHandler) HandleListModeration(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		articles, err := h.ArticleService.ListModeration(c.Context())
		if err == nil {
			logger.LogModerationAccess("community_article", len(articles), c)
		}
		basehdl.HandleResponse(c, articles, err)
		return nil
	})
}
