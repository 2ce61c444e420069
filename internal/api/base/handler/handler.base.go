// Package basehdl - base handler cho các Fiber handler.
// Cung cấp parse/validate request và chuẩn hóa response cho toàn bộ ứng dụng.
package basehdl

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	basesvc "github.com/werbhq/schello-public/internal/api/base/service"
	"github.com/werbhq/schello-public/internal/common"
	"github.com/werbhq/schello-public/internal/global"
)

// BaseHandler là base handler cho các Fiber handler.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
type BaseHandler[T any, CreateInput any] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput] {
	return &BaseHandler[T, CreateInput]{
		BaseService: baseService,
	}
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
//
// Parameters:
// - c: Fiber context
// - input: Con trỏ tới struct sẽ chứa dữ liệu được parse
//
// Returns:
// - error: Lỗi nếu có trong quá trình parse hoặc validate
func (h *BaseHandler[T, CreateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	return ParseRequestBody(c, input)
}

// ParseRequestBody là hàm dùng chung cho domain handler không embed BaseHandler.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Validate với validator từ global
	if global.Validate != nil {
		if err := global.Validate.Struct(input); err != nil {
			return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
		}
	}

	return nil
}
