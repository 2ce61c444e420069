package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityArticle đại diện cho bài viết do cộng đồng gửi lên.
// Khác với CommunityVideo, article không có platform/url/thumbnail:
// các field này bị loại bỏ khi shape, không chỉ để trống.
type CommunityArticle struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của document

	// ===== SUBMISSION =====
	Title       string `json:"title,omitempty" bson:"title,omitempty"`             // Tiêu đề do người gửi nhập
	Author      string `json:"author,omitempty" bson:"author,omitempty"`           // Tên người gửi
	Email       string `json:"email,omitempty" bson:"email,omitempty"`             // Email liên hệ (tùy chọn)
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Nội dung bài viết

	// ===== MODERATION =====
	// Document article chỉ gồm đúng các field trên cộng visible và timestamp,
	// không mang bookkeeping nào khác.
	Visible   bool  `json:"visible" bson:"visible"`                           // Cờ moderation, luôn false khi tạo
	Timestamp int64 `json:"timestamp" bson:"timestamp" index:"single:-1"` // Epoch ms do writer gán khi shape
}
