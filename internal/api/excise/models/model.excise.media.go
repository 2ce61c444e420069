package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsType phân loại item trong collection news
const (
	NewsTypeNews    = "NEWS"    // Tin tức
	NewsTypeArticle = "ARTICLE" // Bài viết biên tập
)

// ExciseMedia đại diện cho nội dung biên tập (events, videos, news).
// Nguồn tin cậy từ đội biên tập nên không có cờ visible; đường đọc vẫn
// đi qua bộ chuẩn hóa timestamp vì dữ liệu cũ có nhiều định dạng thời gian.
type ExciseMedia struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của document

	Title       string `json:"title,omitempty" bson:"title,omitempty"`               // Tiêu đề
	Description string `json:"description,omitempty" bson:"description,omitempty"`   // Mô tả
	Source      string `json:"source,omitempty" bson:"source,omitempty"`             // Nguồn tin
	RedirectURL string `json:"redirect_url,omitempty" bson:"redirect_url,omitempty"` // URL gốc của nội dung
	NewsType    string `json:"news_type,omitempty" bson:"news_type,omitempty"`       // Phân loại (chỉ collection news)
	Thumbnail   string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`       // URL thumbnail

	Timestamp int64 `json:"timestamp" bson:"timestamp" index:"single:-1"` // Epoch ms sau chuẩn hóa
}
