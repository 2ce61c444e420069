// Package database - Index cho các collection nội dung, không định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/werbhq/schello-public/internal/global"
)

// CreateContentIndexes tạo index cho các collection nội dung.
// Community: (visible, timestamp desc) cho list có filter; excise: timestamp desc cho feed merge.
// Gọi một lần khi boot, sau khi đăng ký collections.
func CreateContentIndexes(ctx context.Context, db *mongo.Database) error {
	// community_videos / community_articles: (visible, timestamp desc)
	for _, name := range []string{
		global.MongoDB_ColNames.CommunityVideos,
		global.MongoDB_ColNames.CommunityArticles,
	} {
		col := db.Collection(name)
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "visible", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().SetName(name + "_visible_timestamp"),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// excise_events / excise_videos / excise_news: timestamp desc
	for _, name := range []string{
		global.MongoDB_ColNames.ExciseEvents,
		global.MongoDB_ColNames.ExciseVideos,
		global.MongoDB_ColNames.ExciseNews,
	} {
		col := db.Collection(name)
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().SetName(name + "_timestamp"),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// reports: (status, createdAt desc) cho moderation tooling
	reports := db.Collection(global.MongoDB_ColNames.Reports)
	if _, err := reports.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("reports_status_createdAt"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
