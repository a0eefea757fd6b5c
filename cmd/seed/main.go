package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"mediacatalog/internal/database"
	"mediacatalog/internal/domain/album"
	"mediacatalog/internal/domain/category"
	"mediacatalog/internal/domain/episode"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "catalog.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM contents")
	db.Exec("DELETE FROM episodes")
	db.Exec("DELETE FROM albums")
	db.Exec("DELETE FROM category")

	log.Println("Creating categories...")
	for _, name := range []string{"Comics", "Photo Sets", "Audio Dramas"} {
		db.Create(&category.Category{Name: name})
	}

	log.Println("Creating albums...")
	now := time.Now().UTC()
	albums := make([]album.Album, 0, 5)
	for i := 0; i < 5; i++ {
		tags := fmt.Sprintf("demo,seed-%d", i+1)
		released := now.AddDate(0, 0, -rand.Intn(365))
		a := album.Album{
			UUID:        uuid.New().String(),
			Title:       fmt.Sprintf("Demo Album %d", i+1),
			Description: "Seeded demo album",
			Completed:   i%2 == 0,
			Tags:        &tags,
			Enable:      true,
			MinAge:      int32(12 + (i%2)*6),
			ReleasedAt:  &released,
			CreatedAt:   &now,
			UpdatedAt:   &now,
		}
		db.Create(&a)
		albums = append(albums, a)
	}

	log.Println("Creating episodes...")
	for _, a := range albums {
		for j := 1; j <= 3; j++ {
			db.Create(&episode.Episode{
				AlbumID:   a.ID,
				UUID:      uuid.New().String(),
				Title:     fmt.Sprintf("Episode %d", j),
				CreatedAt: &now,
				UpdatedAt: &now,
			})
		}
	}

	log.Println("Seed completed: 3 categories, 5 albums, 15 episodes")
	log.Println("Note: seeded rows carry no media files; upload covers and contents through the API")
}
