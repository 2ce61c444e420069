package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/werbhq/schello-public/internal/api/base/handler"
	reportdto "github.com/werbhq/schello-public/internal/api/report/dto"
	reportmodels "github.com/werbhq/schello-public/internal/api/report/models"
	reportsvc "github.com/werbhq/schello-public/internal/api/report/service"
	"github.com/werbhq/schello-public/internal/logger"
)

// ReportHandler xử lý các request liên quan đến báo cáo sự vụ
type ReportHandler struct {
	*basehdl.BaseHandler[reportmodels.Report, reportdto.ReportCreateInput]
	ReportService *reportsvc.ReportService
}

// NewReportHandler tạo mới ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	hdl := &ReportHandler{ReportService: reportService}
	hdl.BaseHandler = basehdl.NewBaseHandler[reportmodels.Report, reportdto.ReportCreateInput](reportService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate nhận báo cáo sự vụ ẩn danh
// @Summary Tạo báo cáo sự vụ
// @Description Validate payload chặt (category/description/location bắt buộc), server gán status=NEW
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Báo cáo đã được lưu"
// @Router /reports [post]
func (h *ReportHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(reportdto.ReportCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.ReportService.Create(c.Context(), input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogSubmission("report", report.ID.Hex(), c)
		basehdl.HandleCreated(c, report)
		return nil
	})
}

// HandleList trả về danh sách báo cáo, mới nhất trước (moderation tooling)
// @Router /reports [get]
func (h *ReportHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		reports, err := h.ReportService.List(c.Context())
		if err == nil {
			logger.LogModerationAccess("report", len(reports), c)
		}
		basehdl.HandleResponse(c, reports, err)
		return nil
	})
}
