package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/doja-oual/portfolio-backend/internal/auth"
)

// AuthContext builds the per-request authentication context and stores
// it on the request. It runs for every API request and never aborts:
// an invalid or absent token just leaves the context unauthenticated,
// and the guards inside the resolvers decide what that means.
func AuthContext(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := auth.FromHeader(codec, c.GetHeader("Authorization"))
		c.Request = c.Request.WithContext(auth.WithContext(c.Request.Context(), ac))

		if ac.Authenticated {
			c.Set("user_id", ac.Claims.UserID())
			c.Set("role", string(ac.Claims.Role))
		}
		c.Next()
	}
}
