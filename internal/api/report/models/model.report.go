package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportCategory phân loại sự vụ được báo cáo
const (
	CategoryUsageSuspected   = "USAGE_SUSPECTED"   // Nghi ngờ sử dụng
	CategoryUsageConfirmed   = "USAGE_CONFIRMED"   // Xác nhận sử dụng
	CategoryTradingSuspected = "TRADING_SUSPECTED" // Nghi ngờ mua bán
	CategoryTradingConfirmed = "TRADING_CONFIRMED" // Xác nhận mua bán
)

// ReportStatus trạng thái xử lý của báo cáo
const (
	StatusNew        = "NEW"         // Mới tạo, server gán khi nhận
	StatusInProgress = "IN-PROGRESS" // Đang xử lý
	StatusDone       = "DONE"        // Đã xử lý xong
	StatusSpam       = "SPAM"        // Đánh dấu spam
)

// ReportLocation là vị trí sự vụ trên bản đồ
type ReportLocation struct {
	Lat     float64 `json:"lat" bson:"lat"`                           // Vĩ độ
	Lng     float64 `json:"lng" bson:"lng"`                           // Kinh độ
	Address string  `json:"address,omitempty" bson:"address,omitempty"` // Địa chỉ dạng text
}

// FacialData mô tả nhận dạng khuôn mặt của người bị báo cáo (tùy chọn)
type FacialData struct {
	HairType  string `json:"hairType,omitempty" bson:"hairType,omitempty"`
	SkinColor string `json:"skinColor,omitempty" bson:"skinColor,omitempty"`
	Gender    string `json:"gender,omitempty" bson:"gender,omitempty"`
	EyeColor  string `json:"eyeColor,omitempty" bson:"eyeColor,omitempty"`
	FaceShape string `json:"faceShape,omitempty" bson:"faceShape,omitempty"`
}

// Report là báo cáo ẩn danh về sự vụ liên quan chất cấm.
// Server gán status=NEW khi tạo; các trạng thái khác do đội xử lý cập nhật
// ngoài băng trên store.
type Report struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của document

	// ===== INCIDENT =====
	DateIncident string `json:"dateIncident,omitempty" bson:"dateIncident,omitempty"` // Ngày sự vụ
	TimeFrom     string `json:"timeFrom,omitempty" bson:"timeFrom,omitempty"`         // Khoảng thời gian, từ
	TimeTo       string `json:"timeTo,omitempty" bson:"timeTo,omitempty"`             // Khoảng thời gian, đến
	Category     string `json:"category" bson:"category"`                             // Phân loại sự vụ
	Description  string `json:"description" bson:"description"`                       // Mô tả chi tiết

	// ===== SUBJECT =====
	Location       ReportLocation `json:"location" bson:"location"`                                   // Vị trí sự vụ
	StudentID      string         `json:"studentId,omitempty" bson:"studentId,omitempty"`             // Mã học sinh (tùy chọn)
	FacialData     *FacialData    `json:"facialData,omitempty" bson:"facialData,omitempty"`           // Nhận dạng khuôn mặt (tùy chọn)
	WantedPersonID string         `json:"wantedPersonId,omitempty" bson:"wantedPersonId,omitempty"` // Liên kết hồ sơ truy tìm (tùy chọn)

	// ===== WORKFLOW =====
	Status string `json:"status" bson:"status" index:"single:1"` // NEW | IN-PROGRESS | DONE | SPAM

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
