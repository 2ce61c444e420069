package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/werbhq/schello-public/config"
	"github.com/werbhq/schello-public/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB.
// Tên collection là cố định, handler/service không thể inject tên khác.
type MongoDB_CollectionName struct {
	CommunityVideos   string // Tên collection cho video do cộng đồng gửi
	CommunityArticles string // Tên collection cho bài viết do cộng đồng gửi
	ExciseEvents      string // Tên collection cho sự kiện của excise department
	ExciseVideos      string // Tên collection cho video biên tập của excise department
	ExciseNews        string // Tên collection cho tin tức biên tập của excise department
	Reports           string // Tên collection cho báo cáo ẩn danh
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	CommunityVideos:   "community_videos",
	CommunityArticles: "community_articles",
	ExciseEvents:      "excise_events",
	ExciseVideos:      "excise_videos",
	ExciseNews:        "excise_news",
	Reports:           "reports",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
