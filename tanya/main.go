package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tanya/tanya/config"
	"tanya/tanya/controllers"
	"tanya/tanya/routes"
	"tanya/tanya/services/llm"
	"tanya/tanya/services/search"
	"tanya/tanya/sources/sqlitedb"
	"tanya/tanya/sources/sqlitedb/dao"
	"tanya/tanya/utils/logging"
	"tanya/tanya/web"
)

func main() {
	logging.InitLogger()

	if err := godotenv.Load(); err != nil {
		logging.AppLogger.Info("no .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.ErrorLogger.Error("configuration error", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := sqlitedb.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database open error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	renderer, err := web.NewRenderer()
	if err != nil {
		logging.ErrorLogger.Error("template parse error", zap.Error(err))
		os.Exit(1)
	}

	turnDAO := dao.NewTurnDAO(db.DB)
	gateway := llm.NewOpenAIClient(cfg)
	fetcher := search.NewDuckDuckGo(cfg.SearchRegion, cfg.SearchMaxResults)

	chatCtrl := controllers.NewChatController(turnDAO, gateway, fetcher, cfg)
	pageCtrl := controllers.NewPageController(turnDAO, renderer)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	routes.PageRoutes(r, pageCtrl, healthCtrl)
	r.Mount("/api/chat", routes.ChatRoutes(chatCtrl))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
