package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"portfolio-admin/internal/config"
	"portfolio-admin/internal/model"
	"portfolio-admin/internal/repository"
	"portfolio-admin/pkg/db"
	"portfolio-admin/pkg/logger"
	"portfolio-admin/pkg/util"
)

// createadmin provisions (or resets) the admin account. Run once before
// first login:
//
//	createadmin -email admin@example.com -password <secret>
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Sync()

	if *email == "" || *password == "" {
		log.Fatal("Both -email and -password are required")
	}

	cfg := config.Load()

	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repository.Migrate(ctx, dbConn); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	hash, err := util.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(dbConn, log)
	admin := &model.User{Email: *email, PasswordHash: hash}
	if err := userRepo.Upsert(ctx, admin); err != nil {
		log.Fatal("Failed to upsert admin user", zap.Error(err))
	}

	log.Info("Admin user ready",
		zap.Int64("user_id", admin.ID),
		zap.String("email", *email),
	)
}
