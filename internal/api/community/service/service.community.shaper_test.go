// Package communitysvc - Test shaper: allow-list theo kind và các bất biến moderation.
package communitysvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	communitydto "github.com/werbhq/schello-public/internal/api/community/dto"
	"github.com/werbhq/schello-public/internal/utility"
)

func fullInput() *communitydto.SubmissionInput {
	return &communitydto.SubmissionInput{
		Title:       "Tài liệu phòng chống",
		Author:      "Người gửi",
		Email:       "a@example.com",
		Description: "Mô tả",
		Platform:    "youtube",
		URL:         "https://youtube.com/watch?v=abc",
		Thumbnail:   "https://img.example.com/t.jpg",
	}
}

func TestShapeVideo_KeepsVideoFields(t *testing.T) {
	input := fullInput()
	video := ShapeVideo(input)

	assert.Equal(t, input.Title, video.Title)
	assert.Equal(t, input.Author, video.Author)
	assert.Equal(t, input.Email, video.Email)
	assert.Equal(t, input.Description, video.Description)
	assert.Equal(t, input.Platform, video.Platform)
	assert.Equal(t, input.URL, video.URL)
	assert.Equal(t, input.Thumbnail, video.Thumbnail)
}

func TestShapeArticle_DropsVideoFields(t *testing.T) {
	input := fullInput()
	article := ShapeArticle(input)

	assert.Equal(t, input.Title, article.Title)
	assert.Equal(t, input.Author, article.Author)
	assert.Equal(t, input.Email, article.Email)
	assert.Equal(t, input.Description, article.Description)
	// Article không có platform/url/thumbnail, struct không khai báo các field này
}

func TestShape_VisibleAlwaysFalse(t *testing.T) {
	assert.False(t, ShapeVideo(fullInput()).Visible, "video shape phải có visible=false")
	assert.False(t, ShapeArticle(fullInput()).Visible, "article shape phải có visible=false")
}

// Document persist ra store phải chứa đúng tập field writer đã shape,
// không có createdAt/updatedAt hay bookkeeping nào khác.
func TestShape_PersistedDocumentFieldSet(t *testing.T) {
	videoDoc, err := utility.ToMap(ShapeVideo(fullInput()))
	assert.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"title", "author", "email", "description", "platform", "url", "thumbnail", "visible", "timestamp"},
		mapKeys(videoDoc),
		"document video phải chứa đúng 9 field, không thêm bookkeeping")

	articleDoc, err := utility.ToMap(ShapeArticle(fullInput()))
	assert.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"title", "author", "email", "description", "visible", "timestamp"},
		mapKeys(articleDoc),
		"document article phải chứa đúng 6 field, không thêm bookkeeping")
}

func mapKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestShape_TimestampAssignedByServer(t *testing.T) {
	before := time.Now().UnixMilli()
	video := ShapeVideo(fullInput())
	article := ShapeArticle(fullInput())
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, video.Timestamp, before)
	assert.LessOrEqual(t, video.Timestamp, after)
	assert.GreaterOrEqual(t, article.Timestamp, before)
	assert.LessOrEqual(t, article.Timestamp, after)
}
