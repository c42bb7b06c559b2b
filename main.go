package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "coursepay/internal/config"
	router "coursepay/internal/http"
	"coursepay/internal/http/handlers"
	"coursepay/internal/ledger"
	"coursepay/internal/logger"
	"coursepay/internal/mail"
	"coursepay/internal/repositories"
	"coursepay/internal/services"
	"coursepay/internal/storage"
)

func main() {
	cfg, err := intconfig.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zlog.Sync() }()

	if cfg.App.GinMode != "" {
		gin.SetMode(cfg.App.GinMode)
	}

	if _, err := intconfig.ConnectDB(cfg.Database.DSN()); err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	defer intconfig.CloseDB()

	store, localDir, err := buildStore(cfg.Storage)
	if err != nil {
		zlog.Fatal("storage init failed", zap.Error(err))
	}

	secret := []byte(cfg.Auth.JWTSecret)

	notifier := services.NotifierService{
		Settings:  repositories.SettingsRepository{},
		Templates: repositories.TemplateRepository{},
		Mailer:    buildMailer(cfg.Mail, zlog),
		Ledger:    ledger.NewClient(cfg.Ledger.WebhookURL, cfg.Ledger.Timeout),
		Log:       zlog,
	}

	handlers.Init(handlers.Deps{
		Submissions: services.SubmissionService{
			Repo:     repositories.ConfirmationRepository{},
			Store:    store,
			Notifier: notifier,
			Log:      zlog,
		},
		Auth: services.AuthService{
			Admins:   repositories.AdminRepository{},
			Secret:   secret,
			TokenTTL: cfg.Auth.TokenTTL,
		},
		Docs:          services.DocsService{Confirmations: repositories.ConfirmationRepository{}},
		Confirmations: repositories.ConfirmationRepository{},
		Settings:      repositories.SettingsRepository{},
		Templates:     repositories.TemplateRepository{},
		Log:           zlog,
	})

	r := router.NewRouter(router.RouterOptions{
		Log:             zlog,
		TokenSecret:     secret,
		LocalReceiptDir: localDir,
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", cfg.App.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}

// buildStore returns the configured blob backend plus the local dir to
// serve over /receipts (empty for s3).
func buildStore(cfg intconfig.StorageConfig) (storage.ReceiptStore, string, error) {
	switch cfg.Driver {
	case "s3":
		s, err := storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region)
		return s, "", err
	default:
		s, err := storage.NewLocalStore(cfg.LocalDir, cfg.PublicURL)
		return s, cfg.LocalDir, err
	}
}

func buildMailer(cfg intconfig.MailConfig, zlog *zap.Logger) mail.Mailer {
	switch cfg.Driver {
	case "resend":
		return mail.NewResendMailer(cfg.ResendAPIKey)
	case "log":
		return mail.LogMailer{Log: zlog}
	default:
		return mail.SMTPMailer{}
	}
}
