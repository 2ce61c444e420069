package feedsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	communitymodels "github.com/werbhq/schello-public/internal/api/community/models"
	communitysvc "github.com/werbhq/schello-public/internal/api/community/service"
	excisemodels "github.com/werbhq/schello-public/internal/api/excise/models"
	excisesvc "github.com/werbhq/schello-public/internal/api/excise/service"
	feedmodels "github.com/werbhq/schello-public/internal/api/feed/models"
)

// Độ dài query tối thiểu để search có hiệu lực; query ngắn hơn trả về
// danh sách không đổi thay vì kết quả rỗng.
const minSearchQueryLength = 3

// FeedService gộp nội dung cộng đồng đã duyệt và nội dung biên tập
// thành một feed thống nhất
type FeedService struct {
	videoService   *communitysvc.VideoService
	articleService *communitysvc.ArticleService
	mediaService   *excisesvc.MediaService
}

// NewFeedService tạo mới FeedService
func NewFeedService() (*FeedService, error) {
	videoService, err := communitysvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create community video service: %v", err)
	}
	articleService, err := communitysvc.NewArticleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create community article service: %v", err)
	}
	mediaService, err := excisesvc.NewMediaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create excise media service: %v", err)
	}

	return &FeedService{
		videoService:   videoService,
		articleService: articleService,
		mediaService:   mediaService,
	}, nil
}

// BuildFeed nối các nguồn theo thứ tự truyền vào rồi sort ổn định giảm dần
// theo timestamp. Item không rõ timestamp (0) xếp cuối; item trùng timestamp
// giữ thứ tự nguồn.
func BuildFeed(sources ...[]feedmodels.FeedItem) []feedmodels.FeedItem {
	items := make([]feedmodels.FeedItem, 0)
	for _, source := range sources {
		items = append(items, source...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	return items
}

// SearchFeed lọc feed theo query, không phân biệt hoa thường, giữ nguyên thứ tự.
// Query có <= 2 ký tự trả về danh sách không đổi; đếm theo rune,
// không theo byte, để query tiếng Việt có dấu không bị tính sai.
func SearchFeed(items []feedmodels.FeedItem, query string) []feedmodels.FeedItem {
	if utf8.RuneCountInString(query) < minSearchQueryLength {
		return items
	}

	q := strings.ToLower(query)
	return lo.Filter(items, func(item feedmodels.FeedItem, _ int) bool {
		return strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Author), q) ||
			strings.Contains(strings.ToLower(item.Source), q) ||
			strings.Contains(strings.ToLower(item.Email), q)
	})
}

// Feed trả về feed tổng hợp: video + bài viết cộng đồng đã duyệt,
// video + tin tức biên tập. Các nguồn được đọc độc lập, chấp nhận
// staleness vài giây giữa các collection.
func (s *FeedService) Feed(ctx context.Context, query string) ([]feedmodels.FeedItem, error) {
	communityVideos, err := s.videoService.List(ctx)
	if err != nil {
		return nil, err
	}
	communityArticles, err := s.articleService.List(ctx)
	if err != nil {
		return nil, err
	}
	exciseVideos, err := s.mediaService.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	exciseNews, err := s.mediaService.ListNews(ctx)
	if err != nil {
		return nil, err
	}

	items := BuildFeed(
		lo.Map(communityVideos, func(v communitymodels.CommunityVideo, _ int) feedmodels.FeedItem {
			return feedmodels.FromCommunityVideo(v)
		}),
		lo.Map(communityArticles, func(a communitymodels.CommunityArticle, _ int) feedmodels.FeedItem {
			return feedmodels.FromCommunityArticle(a)
		}),
		lo.Map(exciseVideos, func(m excisemodels.ExciseMedia, _ int) feedmodels.FeedItem {
			return feedmodels.FromExciseMedia(m, feedmodels.MediaTypeVideo)
		}),
		lo.Map(exciseNews, func(m excisemodels.ExciseMedia, _ int) feedmodels.FeedItem {
			return feedmodels.FromExciseMedia(m, feedmodels.MediaTypeNews)
		}),
	)

	return SearchFeed(items, query), nil
}

// Events trả về rail sự kiện biên tập, sort giảm dần theo timestamp.
func (s *FeedService) Events(ctx context.Context) ([]feedmodels.FeedItem, error) {
	events, err := s.mediaService.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return BuildFeed(
		lo.Map(events, func(m excisemodels.ExciseMedia, _ int) feedmodels.FeedItem {
			return feedmodels.FromExciseMedia(m, feedmodels.MediaTypeEvent)
		}),
	), nil
}
