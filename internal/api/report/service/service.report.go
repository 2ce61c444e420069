package reportsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/werbhq/schello-public/internal/api/base/service"
	reportdto "github.com/werbhq/schello-public/internal/api/report/dto"
	reportmodels "github.com/werbhq/schello-public/internal/api/report/models"
	"github.com/werbhq/schello-public/internal/common"
	"github.com/werbhq/schello-public/internal/global"
)

// ReportService là service quản lý báo cáo sự vụ ẩn danh
type ReportService struct {
	*basesvc.BaseServiceMongoImpl[reportmodels.Report]
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reports)
	if !exist {
		return nil, fmt.Errorf("failed to get reports collection: %v", common.ErrNotFound)
	}

	return &ReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[reportmodels.Report](collection),
	}, nil
}

// Create tạo báo cáo mới. Status luôn là NEW bất kể client gửi gì;
// chuyển trạng thái là thao tác của đội xử lý, không qua API này.
// Bookkeeping createdAt/updatedAt chỉ có trên reports, gán tại đây;
// collection nội dung cộng đồng không mang các field này.
func (s *ReportService) Create(ctx context.Context, input *reportdto.ReportCreateInput) (reportmodels.Report, error) {
	now := time.Now().UnixMilli()
	report := reportmodels.Report{
		DateIncident: input.DateIncident,
		TimeFrom:     input.TimeFrom,
		TimeTo:       input.TimeTo,
		Category:     input.Category,
		Description:  input.Description,
		Location: reportmodels.ReportLocation{
			Lat:     input.Location.Lat,
			Lng:     input.Location.Lng,
			Address: input.Location.Address,
		},
		StudentID:      input.StudentID,
		WantedPersonID: input.WantedPersonID,
		Status:         reportmodels.StatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.FacialData != nil {
		report.FacialData = &reportmodels.FacialData{
			HairType:  input.FacialData.HairType,
			SkinColor: input.FacialData.SkinColor,
			Gender:    input.FacialData.Gender,
			EyeColor:  input.FacialData.EyeColor,
			FaceShape: input.FacialData.FaceShape,
		}
	}

	return s.InsertOne(ctx, report)
}

// List trả về báo cáo mới nhất trước, dành cho moderation tooling.
func (s *ReportService) List(ctx context.Context) ([]reportmodels.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, nil, opts)
}
