// Command create-admin seeds the initial ADMIN account. It skips the
// insert when a user with the admin email already exists.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/doja-oual/portfolio-backend/config"
	"github.com/doja-oual/portfolio-backend/internal/logger"
	"github.com/doja-oual/portfolio-backend/internal/models"
	mongorepo "github.com/doja-oual/portfolio-backend/internal/repositories/mongo"
	"github.com/doja-oual/portfolio-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	client, err := config.ConnectMongo(cfg)
	if err != nil {
		log.WithError(err).Fatal("MongoDB init error")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := config.EnsureIndexes(client, cfg.MongoDB); err != nil {
		log.WithError(err).Fatal("MongoDB index bootstrap error")
	}

	users := mongorepo.NewUserRepo(client.Database(cfg.MongoDB))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	in := &models.RegisterInput{
		Username: "admin",
		Email:    "admin@portfolio.com",
		Password: "Admin@123",
	}

	admin, err := users.Create(ctx, in, models.RoleAdmin)
	if utils.IsCode(err, utils.CodeConflict) {
		log.WithField("email", in.Email).Warn("an administrator already exists")
		return
	}
	if err != nil {
		log.WithError(err).Fatal("failed to create administrator")
	}

	log.WithFields(map[string]interface{}{
		"email":    admin.Email,
		"username": admin.Username,
		"role":     admin.Role,
	}).Info("administrator created; change the default password in production")
}
