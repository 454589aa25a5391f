package main

import (
	"log"

	v1 "iori_nav/api/v1"
	"iori_nav/internal/auth"
	"iori_nav/internal/cache"
	"iori_nav/internal/config"
	"iori_nav/internal/db"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("✓ Configuration loaded")

	// 2. Initialize MySQL
	gdb, err := db.InitMySQL(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize MySQL: %v", err)
	}
	defer db.Close(gdb)
	log.Println("✓ MySQL connected")

	// 3. Initialize Redis
	rdb, err := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("✓ Redis connected")

	// 4. Initialize JWT
	auth.InitJWT(cfg.JWT.Secret)

	// 5. Optional bootstrap migration + admin seed
	if cfg.Migrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		if cfg.Site.SeedAdminUser != "" && cfg.Site.SeedAdminPassword != "" {
			if err := db.SeedAdmin(gdb, cfg.Site.SeedAdminUser, cfg.Site.SeedAdminPassword); err != nil {
				log.Fatalf("Failed to seed admin user: %v", err)
			}
		}
		log.Println("✓ Database migrated")
	}

	// 6. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	v1.SetupRouter(r, gdb, rdb, cfg)

	log.Printf("✓ Server starting on %s", cfg.HTTPAddr)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
