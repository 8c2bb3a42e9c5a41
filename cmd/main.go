package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpcontext "github.com/uptalent/uptalent-server/internal/api/http/context"
	"github.com/uptalent/uptalent-server/internal/api/http/router"
	"github.com/uptalent/uptalent-server/internal/config"
	"github.com/uptalent/uptalent-server/internal/hash"
	"github.com/uptalent/uptalent-server/internal/logger"
	"github.com/uptalent/uptalent-server/internal/model"
	"github.com/uptalent/uptalent-server/internal/repository/postgres"
	"github.com/uptalent/uptalent-server/internal/seed"
	"github.com/uptalent/uptalent-server/internal/server"
	"github.com/uptalent/uptalent-server/internal/service"
	storage "github.com/uptalent/uptalent-server/internal/storage/minio"
	"github.com/uptalent/uptalent-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	talentRepo := postgres.NewTalentRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := hash.NewBcrypt()
	ctxMgr := httpcontext.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	if cfg.Seed.Enable {
		if err := seed.Talents(ctx, talentRepo, hasher, cfg.Seed.Count, logger); err != nil {
			logger.Fatal("failed to seed talents", "error", err)
		}
	}

	talentService := service.NewTalent(talentRepo, hasher, tokenManager, storageClient, ctxMgr, logger)

	handler := router.New(talentService, tokenManager, ctxMgr, logger).Register()
	httpServer := server.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
