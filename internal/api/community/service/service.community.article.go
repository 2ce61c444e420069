package communitysvc

import (
	"context"
	"fmt"

	basemodels "github.com/werbhq/schello-public/internal/api/base/models"
	basesvc "github.com/werbhq/schello-public/internal/api/base/service"
	communitydto "github.com/werbhq/schello-public/internal/api/community/dto"
	communitymodels "github.com/werbhq/schello-public/internal/api/community/models"
	"github.com/werbhq/schello-public/internal/common"
	"github.com/werbhq/schello-public/internal/global"
)

// ArticleService là service quản lý bài viết cộng đồng
type ArticleService struct {
	*basesvc.BaseServiceMongoImpl[communitymodels.CommunityArticle]
}

// NewArticleService tạo mới ArticleService
func NewArticleService() (*ArticleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CommunityArticles)
	if !exist {
		return nil, fmt.Errorf("failed to get community_articles collection: %v", common.ErrNotFound)
	}

	return &ArticleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[communitymodels.CommunityArticle](collection),
	}, nil
}

// Submit shape submission thành document article và insert đúng một lần.
func (s *ArticleService) Submit(ctx context.Context, input *communitydto.SubmissionInput) (communitymodels.CommunityArticle, error) {
	article := ShapeArticle(input)
	return s.InsertOne(ctx, article)
}

// List trả về các bài viết đã được duyệt (visible=true), timestamp đã chuẩn hóa.
func (s *ArticleService) List(ctx context.Context) ([]communitymodels.CommunityArticle, error) {
	return s.list(ctx, false)
}

// ListModeration trả về toàn bộ bài viết kể cả chưa duyệt, dành cho moderation tooling.
func (s *ArticleService) ListModeration(ctx context.Context) ([]communitymodels.CommunityArticle, error) {
	return s.list(ctx, true)
}

func (s *ArticleService) list(ctx context.Context, bypassVisibility bool) ([]communitymodels.CommunityArticle, error) {
	raw, err := s.FindRaw(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	raw = basemodels.NormalizeAll(raw)
	raw = basemodels.FilterVisible(raw, bypassVisibility)

	articles, err := basemodels.DecodeAll[communitymodels.CommunityArticle](raw)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Lỗi định dạng dữ liệu khi decode bài viết cộng đồng", common.StatusInternalServerError, err)
	}
	return articles, nil
}
