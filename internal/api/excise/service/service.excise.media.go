package excisesvc

import (
	"context"
	"fmt"

	basemodels "github.com/werbhq/schello-public/internal/api/base/models"
	basesvc "github.com/werbhq/schello-public/internal/api/base/service"
	excisemodels "github.com/werbhq/schello-public/internal/api/excise/models"
	"github.com/werbhq/schello-public/internal/common"
	"github.com/werbhq/schello-public/internal/global"
)

// MediaService là service đọc nội dung biên tập từ ba collection cố định:
// events, videos, news. Chỉ đọc, không có đường ghi qua API.
type MediaService struct {
	events *basesvc.BaseServiceMongoImpl[excisemodels.ExciseMedia]
	videos *basesvc.BaseServiceMongoImpl[excisemodels.ExciseMedia]
	news   *basesvc.BaseServiceMongoImpl[excisemodels.ExciseMedia]
}

// NewMediaService tạo mới MediaService
func NewMediaService() (*MediaService, error) {
	events, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ExciseEvents)
	if !exist {
		return nil, fmt.Errorf("failed to get excise_events collection: %v", common.ErrNotFound)
	}
	videos, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ExciseVideos)
	if !exist {
		return nil, fmt.Errorf("failed to get excise_videos collection: %v", common.ErrNotFound)
	}
	news, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ExciseNews)
	if !exist {
		return nil, fmt.Errorf("failed to get excise_news collection: %v", common.ErrNotFound)
	}

	return &MediaService{
		events: basesvc.NewBaseServiceMongo[excisemodels.ExciseMedia](events),
		videos: basesvc.NewBaseServiceMongo[excisemodels.ExciseMedia](videos),
		news:   basesvc.NewBaseServiceMongo[excisemodels.ExciseMedia](news),
	}, nil
}

// ListEvents trả về toàn bộ sự kiện biên tập, timestamp đã chuẩn hóa.
func (s *MediaService) ListEvents(ctx context.Context) ([]excisemodels.ExciseMedia, error) {
	return s.list(ctx, s.events)
}

// ListVideos trả về toàn bộ video biên tập, timestamp đã chuẩn hóa.
func (s *MediaService) ListVideos(ctx context.Context) ([]excisemodels.ExciseMedia, error) {
	return s.list(ctx, s.videos)
}

// ListNews trả về toàn bộ tin tức biên tập, timestamp đã chuẩn hóa.
func (s *MediaService) ListNews(ctx context.Context) ([]excisemodels.ExciseMedia, error) {
	return s.list(ctx, s.news)
}

// list đọc raw, chuẩn hóa timestamp rồi decode. Không lọc visibility:
// nội dung biên tập là nguồn tin cậy, không qua moderation.
func (s *MediaService) list(ctx context.Context, svc *basesvc.BaseServiceMongoImpl[excisemodels.ExciseMedia]) ([]excisemodels.ExciseMedia, error) {
	raw, err := svc.FindRaw(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	raw = basemodels.NormalizeAll(raw)

	items, err := basemodels.DecodeAll[excisemodels.ExciseMedia](raw)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Lỗi định dạng dữ liệu khi decode nội dung biên tập", common.StatusInternalServerError, err)
	}
	return items, nil
}
