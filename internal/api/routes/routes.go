package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/doja-oual/portfolio-backend/internal/api/handlers"
	"github.com/doja-oual/portfolio-backend/internal/api/middleware"
	"github.com/doja-oual/portfolio-backend/internal/auth"
)

type Deps struct {
	GraphQL    *handlers.GraphQLHandler
	Info       *handlers.InfoHandler
	Tokens     *auth.TokenCodec
	CORSOrigin string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// One allowed origin, credentials on. Mounted on the engine so the
	// browser preflight (OPTIONS /graphql, which matches no route) is
	// still answered.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", d.Info.Health)
	r.GET("/", d.Info.Root)

	// The auth context middleware runs unconditionally; guards live in
	// the resolvers.
	gql := r.Group("/graphql")
	gql.Use(middleware.AuthContext(d.Tokens))
	gql.POST("", d.GraphQL.Serve)
}
