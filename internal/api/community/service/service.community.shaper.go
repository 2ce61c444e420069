package communitysvc

import (
	"time"

	communitydto "github.com/werbhq/schello-public/internal/api/community/dto"
	communitymodels "github.com/werbhq/schello-public/internal/api/community/models"
)

// Shaper chuyển submission thô thành document lưu trữ.
// Hai bất biến được gán ở đây và không nơi nào khác:
//   - visible luôn là false: không đường code nào của server set visible=true,
//     việc duyệt là thao tác ngoài băng của moderator trên store
//   - timestamp là epoch ms do server gán tại thời điểm shape, không nhận từ client

// ShapeVideo tạo CommunityVideo từ submission, chỉ giữ các field trong allow-list video.
func ShapeVideo(input *communitydto.SubmissionInput) communitymodels.CommunityVideo {
	return communitymodels.CommunityVideo{
		Title:       input.Title,
		Author:      input.Author,
		Email:       input.Email,
		Description: input.Description,
		Platform:    input.Platform,
		URL:         input.URL,
		Thumbnail:   input.Thumbnail,
		Visible:     false,
		Timestamp:   time.Now().UnixMilli(),
	}
}

// ShapeArticle tạo CommunityArticle từ submission.
// Platform/URL/Thumbnail bị loại bỏ: article không có các field này trong store.
func ShapeArticle(input *communitydto.SubmissionInput) communitymodels.CommunityArticle {
	return communitymodels.CommunityArticle{
		Title:       input.Title,
		Author:      input.Author,
		Email:       input.Email,
		Description: input.Description,
		Visible:     false,
		Timestamp:   time.Now().UnixMilli(),
	}
}
