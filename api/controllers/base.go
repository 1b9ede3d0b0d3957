package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"Courtside/api/cache"
	"Courtside/api/middlewares"
	"Courtside/api/models"
	"Courtside/api/seed"
	"Courtside/api/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Server struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Metrics   *Metrics
	Snapshots *storage.SnapshotStore
}

// ===============================
// SERVER INITIALIZATION
// ===============================
func (server *Server) Initialize(DbUser, DbPassword, DbPort, DbHost, DbName string) {
	db, err := openDatabase(DbUser, DbPassword, DbPort, DbHost, DbName)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	server.DB = db

	if err := models.Migrate(server.DB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Redis init (safe failure)
	if err := cache.InitFromEnv(); err != nil {
		log.Printf("warning: could not connect to redis: %v", err)
	}

	snapshots, err := storage.NewFromEnv(context.Background())
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Println("warning: S3_BUCKET not set, snapshot backups disabled")
	case err != nil:
		log.Printf("warning: snapshot storage unavailable: %v", err)
	default:
		server.Snapshots = snapshots
	}

	if os.Getenv("SEED_DEMO") != "" {
		if err := seed.Load(server.DB); err != nil {
			log.Printf("error seeding demo data: %v\n", err)
		}
	}

	server.Metrics = NewMetrics()

	server.Router = gin.Default()
	server.Router.Use(middlewares.CORSMiddleware(middlewares.AllowedOrigins()))
	server.Router.Use(middlewares.RateLimitMiddleware())
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

// openDatabase picks the driver from DB_DRIVER. Postgres is the default;
// sqlite keeps everything in SQLITE_PATH for single-machine use.
func openDatabase(DbUser, DbPassword, DbPort, DbHost, DbName string) (*gorm.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))

	switch driver {
	case "sqlite", "sqlite3":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "courtside.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})

	case "", "postgres", "postgresql":
		return gorm.Open(postgres.Open(postgresDSN(DbUser, DbPassword, DbPort, DbHost, DbName)), &gorm.Config{})

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func postgresDSN(DbUser, DbPassword, DbPort, DbHost, DbName string) string {
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		dsn := os.Getenv("DATABASE_URL")
		if dsn != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		DbHost, DbUser, DbPassword, DbName, DbPort,
	)
}
