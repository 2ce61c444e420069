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

// VideoService là service quản lý video cộng đồng
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[communitymodels.CommunityVideo]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CommunityVideos)
	if !exist {
		return nil, fmt.Errorf("failed to get community_videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[communitymodels.CommunityVideo](collection),
	}, nil
}

// Submit shape submission thành document video và insert đúng một lần.
// Lỗi store propagate nguyên vẹn, không retry, không ghi một phần.
func (s *VideoService) Submit(ctx context.Context, input *communitydto.SubmissionInput) (communitymodels.CommunityVideo, error) {
	video := ShapeVideo(input)
	return s.InsertOne(ctx, video)
}

// List trả về các video đã được duyệt (visible=true), timestamp đã chuẩn hóa.
func (s *VideoService) List(ctx context.Context) ([]communitymodels.CommunityVideo, error) {
	return s.list(ctx, false)
}

// ListModeration trả về toàn bộ video kể cả chưa duyệt, dành cho moderation tooling.
func (s *VideoService) ListModeration(ctx context.Context) ([]communitymodels.CommunityVideo, error) {
	return s.list(ctx, true)
}

func (s *VideoService) list(ctx context.Context, bypassVisibility bool) ([]communitymodels.CommunityVideo, error) {
	raw, err := s.FindRaw(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	raw = basemodels.NormalizeAll(raw)
	raw = basemodels.FilterVisible(raw, bypassVisibility)

	videos, err := basemodels.DecodeAll[communitymodels.CommunityVideo](raw)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Lỗi định dạng dữ liệu khi decode video cộng đồng", common.StatusInternalServerError, err)
	}
	return videos, nil
}
