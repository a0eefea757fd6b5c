package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mediacatalog/internal/auth"
	"mediacatalog/internal/config"
	"mediacatalog/internal/database"
	"mediacatalog/internal/domain/album"
	"mediacatalog/internal/domain/category"
	"mediacatalog/internal/domain/content"
	"mediacatalog/internal/domain/episode"
	"mediacatalog/internal/events"
	"mediacatalog/internal/ingest"
	"mediacatalog/internal/middleware"
	"mediacatalog/internal/pkg/response"
	"mediacatalog/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("env_file_skipped error=%q", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.ScratchRoot, 0o755); err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(cfg.ProjectRoot, cfg.DataDir), 0o755); err != nil {
		log.Fatal(err)
	}

	layout := storage.NewLayout(cfg.ProjectRoot, cfg.DataDir)
	engine := ingest.New(cfg.ScratchRoot)
	resolver := auth.NewResolver(cfg.AdminAPIKey, cfg.UserAPIKey, cfg.JWTSecret)

	hub := events.NewHub()
	defer hub.Close()

	categoryService := category.NewService(category.NewRepository(db), hub)
	categoryHandler := category.NewHandler(categoryService, engine, resolver)

	albumService := album.NewService(album.NewRepository(db), layout, hub)
	albumHandler := album.NewHandler(albumService, engine, resolver)

	episodeService := episode.NewService(episode.NewRepository(db), layout, hub)
	episodeHandler := episode.NewHandler(episodeService, engine, resolver)

	contentService := content.NewService(content.NewRepository(db), layout, hub)
	contentHandler := content.NewHandler(contentService, engine, resolver)

	eventsHandler := events.NewHandler(hub, resolver)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	root := r.Group("/")
	{
		category.RegisterRoutes(root, categoryHandler)
		album.RegisterRoutes(root, albumHandler)
		episode.RegisterRoutes(root, episodeHandler)
		content.RegisterRoutes(root, contentHandler)
		events.RegisterRoutes(root, eventsHandler)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// stored asset URLs are relative paths under data/
	r.Static("/data", filepath.Join(cfg.ProjectRoot, cfg.DataDir))

	r.NoRoute(func(c *gin.Context) {
		response.Message(c, http.StatusNotFound, "Not Found")
	})

	log.Printf("api_listening addr=%s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
