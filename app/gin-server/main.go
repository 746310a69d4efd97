package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/doja-oual/portfolio-backend/config"
	"github.com/doja-oual/portfolio-backend/internal/api/handlers"
	"github.com/doja-oual/portfolio-backend/internal/api/middleware"
	"github.com/doja-oual/portfolio-backend/internal/api/routes"
	"github.com/doja-oual/portfolio-backend/internal/auth"
	gql "github.com/doja-oual/portfolio-backend/internal/graphql"
	"github.com/doja-oual/portfolio-backend/internal/logger"
	mongorepo "github.com/doja-oual/portfolio-backend/internal/repositories/mongo"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	client, err := config.ConnectMongo(cfg)
	if err != nil {
		log.WithError(err).Fatal("MongoDB init error")
	}
	log.Info("MongoDB connected")

	if err := config.EnsureIndexes(client, cfg.MongoDB); err != nil {
		log.WithError(err).Fatal("MongoDB index bootstrap error")
	}

	db := client.Database(cfg.MongoDB)
	tokens := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTExpiresIn)

	resolver := gql.NewResolver(
		mongorepo.NewUserRepo(db),
		mongorepo.NewProfileRepo(db),
		mongorepo.NewSkillRepo(db),
		mongorepo.NewProjectRepo(db),
		mongorepo.NewExperienceRepo(db),
		tokens,
		log,
	)

	schema, err := gql.NewSchema(resolver)
	if err != nil {
		log.WithError(err).Fatal("schema build error")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		GraphQL:    handlers.NewGraphQLHandler(schema),
		Info:       handlers.NewInfoHandler(),
		Tokens:     tokens,
		CORSOrigin: cfg.CORSOrigin,
	})

	log.WithField("port", cfg.Port).Info("server started")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
