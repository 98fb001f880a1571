package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	userhandler "account_backend/internal/feature/user/transport/handler"
	jwtmw "account_backend/internal/platform/jwt"
)

// NewRouter builds the route table. The loader resolves :userId path
// parameters before the authentication gate runs, mirroring how the routes
// compose: load, authenticate, then authorize on mutation.
func NewRouter(authHandler *authhandler.AuthHandler, userHandler *userhandler.UserHandler,
	loader userhandler.UserLoader) *gin.Engine {
	r := gin.Default()

	// Cross-origin requests are allowed for browser clients.
	r.Use(cors.Default())

	// Session boundary
	r.POST("/auth/signin", authHandler.Signin)
	r.GET("/auth/signout", authHandler.Signout)

	// Unauthenticated user routes
	r.GET("/api/users", userHandler.List)
	r.POST("/api/users", userHandler.Create)

	// Routes addressing a single user: resolve the path parameter, then
	// require a valid bearer token.
	user := r.Group("/api/users/:userId")
	user.Use(userhandler.LoadUser(loader), jwtmw.AuthRequired())
	{
		// Any authenticated identity may read any profile.
		user.GET("", userHandler.Read)
		// Mutation additionally requires ownership.
		user.PUT("", userhandler.RequireOwner(), userHandler.Update)
		user.DELETE("", userhandler.RequireOwner(), userHandler.Delete)
	}

	return r
}
