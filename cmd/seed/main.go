package main

import (
	"errors"
	"fmt"

	"movielist/internal/model"
	"movielist/pkg/config"
	"movielist/pkg/database"
	"movielist/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, cfg, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	if err := seedAdminUser(db, cfg, log); err != nil {
		return err
	}
	return seedSamplePosts(db, log)
}

func seedAdminUser(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	var existing model.AdminUserModel
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		log.Info("Admin user %s already exists, skipping", cfg.AdminUsername)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.AdminUserModel{
		Username: cfg.AdminUsername,
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("Created admin user %s", cfg.AdminUsername)
	return nil
}

func seedSamplePosts(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&model.PostModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Posts already present, skipping sample data")
		return nil
	}

	samplePosts := []model.PostModel{
		{
			Title:       "The Silent Harbor",
			Description: "A retired detective is pulled back in when a body washes up in the harbor of her hometown.",
			ImageURL:    "https://picsum.photos/seed/harbor/400/600",
			Link480p:    "https://example.com/silent-harbor-480.mp4",
			Link720p:    "https://example.com/silent-harbor-720.mp4",
			Link1080p:   "https://example.com/silent-harbor-1080.mp4",
		},
		{
			Title:       "Orbital Decay",
			Description: "The last crew aboard a failing space station must choose between saving themselves or their research.",
			ImageURL:    "https://picsum.photos/seed/orbital/400/600",
			Link480p:    "https://example.com/orbital-decay-480.mp4",
			Link720p:    "https://example.com/orbital-decay-720.mp4",
		},
		{
			Title:       "Paper Lanterns",
			Description: "Two strangers keep missing each other across three decades of festival nights.",
			ImageURL:    "https://picsum.photos/seed/lanterns/400/600",
			Link720p:    "https://example.com/paper-lanterns-720.mp4",
		},
	}

	for i := range samplePosts {
		if err := db.Create(&samplePosts[i]).Error; err != nil {
			return err
		}
	}

	sampleComments := []model.CommentModel{
		{PostID: samplePosts[0].ID, Username: "moviefan42", Comment: "Watched this twice already, the ending still gets me."},
		{PostID: samplePosts[0].ID, Username: "harbor_local", Comment: "They filmed this near my house!"},
		{PostID: samplePosts[1].ID, Username: "scifi_head", Comment: "Best station set design since the 90s."},
	}
	for i := range sampleComments {
		if err := db.Create(&sampleComments[i]).Error; err != nil {
			return err
		}
	}

	log.Info("Created %d sample posts and %d comments", len(samplePosts), len(sampleComments))
	return nil
}
