// Package router đăng ký các route thuộc domain Report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reporthdl "github.com/werbhq/schello-public/internal/api/report/handler"
	apirouter "github.com/werbhq/schello-public/internal/api/router"
)

// Register đăng ký tất cả route report lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("create report handler: %w", err)
	}
	v1.Post("/reports", reportHandler.HandleCreate)
	v1.Get("/reports", reportHandler.HandleList)

	return nil
}
