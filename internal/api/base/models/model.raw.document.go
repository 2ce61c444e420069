package basemodels

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/werbhq/schello-public/internal/logger"
)

// RawDocument là document đọc thô từ MongoDB trước khi decode sang model.
// Mọi đường đọc của repository đi qua RawDocument để chuẩn hóa timestamp
// và lọc visibility trước khi decode.
type RawDocument = bson.M

// TimestampField là tên field timestamp do writer gán khi tạo document
const TimestampField = "timestamp"

// VisibleField là tên field cờ moderation
const VisibleField = "visible"

// NormalizeTimestamp ghi lại field timestamp về dạng chuẩn epoch milliseconds (int64).
// Idempotent: int64 giữ nguyên. Giá trị thiếu hoặc không đọc được giữ nguyên,
// không trả lỗi cho caller; downstream coi như "không rõ, xếp cuối".
func NormalizeTimestamp(raw RawDocument) RawDocument {
	if raw == nil {
		return raw
	}

	v, ok := raw[TimestampField]
	if !ok || v == nil {
		return raw
	}

	switch t := v.(type) {
	case int64:
		// Đã chuẩn
		return raw
	case primitive.DateTime:
		raw[TimestampField] = int64(t)
	case primitive.Timestamp:
		raw[TimestampField] = int64(t.T) * 1000
	case time.Time:
		raw[TimestampField] = t.UnixMilli()
	case int32:
		raw[TimestampField] = int64(t) * 1000 // epoch seconds từ client cũ
	case float64:
		raw[TimestampField] = int64(t)
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			logger.WithModule("content").WithField("timestamp", t).
				Warn("Timestamp dạng chuỗi không parse được, giữ nguyên giá trị thô")
			return raw
		}
		raw[TimestampField] = parsed.UnixMilli()
	default:
		logger.WithModule("content").WithField("timestamp_type", fmt.Sprintf("%T", v)).
			Warn("Timestamp có kiểu không nhận diện được, giữ nguyên giá trị thô")
	}

	return raw
}

// NormalizeAll chuẩn hóa timestamp cho từng document trong danh sách, giữ nguyên thứ tự.
func NormalizeAll(docs []RawDocument) []RawDocument {
	for i := range docs {
		docs[i] = NormalizeTimestamp(docs[i])
	}
	return docs
}

// TimestampOf trả về timestamp chuẩn hóa của document.
// Document thiếu timestamp hoặc timestamp không chuẩn trả về 0 (xếp cuối khi sort desc).
func TimestampOf(raw RawDocument) int64 {
	if raw == nil {
		return 0
	}
	if ts, ok := raw[TimestampField].(int64); ok {
		return ts
	}
	return 0
}

// DecodeAll decode danh sách RawDocument sang model T, giữ nguyên thứ tự.
// Gọi sau khi đã chạy NormalizeAll và FilterVisible.
func DecodeAll[T any](docs []RawDocument) ([]T, error) {
	results := make([]T, 0, len(docs))
	for _, doc := range docs {
		data, err := bson.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal raw document: %w", err)
		}
		var item T
		if err := bson.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("decode raw document: %w", err)
		}
		results = append(results, item)
	}
	return results, nil
}

// FilterVisible giữ lại các document có visible == true, giữ nguyên thứ tự.
// bypass=true trả về input không đổi; chỉ dành cho moderation tooling.
// Đây là chokepoint duy nhất: không đường code nào khác đọc nội dung chưa duyệt
// vào response công khai.
func FilterVisible(docs []RawDocument, bypass bool) []RawDocument {
	if bypass {
		return docs
	}

	filtered := make([]RawDocument, 0, len(docs))
	for _, doc := range docs {
		if visible, ok := doc[VisibleField].(bool); ok && visible {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}
