package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction mô tả một hành động cần ghi audit.
// Nền tảng ẩn danh nên không có user ID; IP + user agent là đủ để truy vết lạm dụng.
type AuditAction struct {
	Action       string                 `json:"action"`        // Tên hành động (ví dụ: "submission_create", "moderation_list")
	ResourceID   string                 `json:"resource_id"`   // ID tài nguyên bị ảnh hưởng
	ResourceType string                 `json:"resource_type"` // Loại tài nguyên (ví dụ: "community_video", "report")
	IP           string                 `json:"ip"`            // IP address
	UserAgent    string                 `json:"user_agent"`    // User agent
	Details      map[string]interface{} `json:"details"`       // Chi tiết bổ sung
	Timestamp    time.Time              `json:"timestamp"`     // Thời gian
}

// LogAction ghi một hành động audit
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"action":     audit.Action,
		"ip":         audit.IP,
		"user_agent": audit.UserAgent,
		"details":    audit.Details,
		"timestamp":  audit.Timestamp,
	}).Info("Audit log")
}

// LogSubmission ghi audit cho một submission mới từ cộng đồng
func LogSubmission(resourceType string, resourceID string, c fiber.Ctx) {
	LogAction("submission_create", c, map[string]interface{}{
		"resource_type": resourceType,
		"resource_id":   resourceID,
	})
}

// LogModerationAccess ghi audit mỗi lần đọc danh sách moderation (bypass visibility)
func LogModerationAccess(resourceType string, count int, c fiber.Ctx) {
	LogAction("moderation_list", c, map[string]interface{}{
		"resource_type": resourceType,
		"count":         count,
	})
}
