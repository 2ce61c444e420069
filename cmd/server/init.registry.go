package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/werbhq/schello-public/config"
	"github.com/werbhq/schello-public/internal/database"
	"github.com/werbhq/schello-public/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")

	// Tạo index cho các collection nội dung
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateContentIndexes(context.TODO(), db); err != nil {
		// Không fatal: thiếu index chỉ ảnh hưởng hiệu năng, không ảnh hưởng semantics
		logrus.Errorf("Failed to create content indexes: %v", err)
	} else {
		logrus.Info("Created content indexes")
	}
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.CommunityVideos,
		global.MongoDB_ColNames.CommunityArticles,
		global.MongoDB_ColNames.ExciseEvents,
		global.MongoDB_ColNames.ExciseVideos,
		global.MongoDB_ColNames.ExciseNews,
		global.MongoDB_ColNames.Reports,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
