package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nmarchetti/shop-admin/docs"
	"github.com/nmarchetti/shop-admin/internal/catalog"
	"github.com/nmarchetti/shop-admin/internal/config"
	"github.com/nmarchetti/shop-admin/internal/httpx"
	"github.com/nmarchetti/shop-admin/internal/identity"
	"github.com/nmarchetti/shop-admin/internal/postgres"
	"github.com/nmarchetti/shop-admin/internal/stats"
	"github.com/nmarchetti/shop-admin/internal/store"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			pool, err := postgres.Connect(cmd.Context(), cfg.PostgresDSN)
			if err != nil {
				return err
			}
			defer pool.Close()

			r := newRouter(pool, cfg)
			log.Printf("[serve] listening on %s", cfg.Addr)
			return r.Run(cfg.Addr)
		},
	}
}

func newRouter(pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	idSvc := identity.NewService(identity.NewPGRepo(pool), cfg.SessionTTL)
	storeRepo := store.NewPGRepo(pool)
	guard := store.NewGuard(storeRepo)

	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), httpx.Recovery(), identity.Middleware(idSvc))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	identity.Routes(api, idSvc)
	store.Routes(api, storeRepo)
	catalog.Routes(api, guard, catalog.NewPGRepos(pool))
	stats.Routes(api, guard, stats.NewPGRepo(pool))
	return r
}
