package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityVideo đại diện cho video do cộng đồng gửi lên.
// Document được tạo với visible=false và chỉ xuất hiện trong feed công khai
// sau khi moderator lật cờ visible trực tiếp trong store.
type CommunityVideo struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của document

	// ===== SUBMISSION =====
	Title       string `json:"title,omitempty" bson:"title,omitempty"`             // Tiêu đề do người gửi nhập
	Author      string `json:"author,omitempty" bson:"author,omitempty"`           // Tên người gửi
	Email       string `json:"email,omitempty" bson:"email,omitempty"`             // Email liên hệ (tùy chọn)
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả nội dung

	// ===== VIDEO =====
	Platform  string `json:"platform,omitempty" bson:"platform,omitempty"`   // Nền tảng video (youtube, ...)
	URL       string `json:"url,omitempty" bson:"url,omitempty"`             // URL tới video
	Thumbnail string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"` // URL thumbnail

	// ===== MODERATION =====
	// Document video chỉ gồm đúng các field trên cộng visible và timestamp,
	// không mang bookkeeping nào khác.
	Visible   bool  `json:"visible" bson:"visible"`                           // Cờ moderation, luôn false khi tạo
	Timestamp int64 `json:"timestamp" bson:"timestamp" index:"single:-1"` // Epoch ms do writer gán khi shape
}
