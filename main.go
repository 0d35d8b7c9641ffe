package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/cart"
	"github.com/cowebsLB/mounifull/catalog"
	"github.com/cowebsLB/mounifull/config"
	orderControllers "github.com/cowebsLB/mounifull/controllers/order"
	"github.com/cowebsLB/mounifull/models"
	"github.com/cowebsLB/mounifull/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("starting mounifull api")

	cfg := config.Load()

	db := initDatabase(cfg)
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	store := cart.NewStore(initKV(cfg))
	store.Subscribe(orderControllers.BroadcastCartChanged)

	loader := catalog.NewLoader(db)

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20 // 8MB, product photos only

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product images
	r.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(r, db, store, loader, cfg)

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("db connection failed")
	}
	return db
}

// initKV picks the cart backend: redis when configured and reachable,
// otherwise the in-process store (carts then live only as long as the
// process).
func initKV(cfg config.Config) cart.KV {
	if cfg.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR not set, using in-memory cart store")
		return cart.NewMemoryKV()
	}

	kv := cart.NewRedisKV(cfg.RedisAddr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := kv.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-memory cart store")
		return cart.NewMemoryKV()
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("cart store backed by redis")
	return kv
}
