package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"siproa/internal/auth"
	"siproa/internal/directory"
	"siproa/internal/http/handlers"
	"siproa/internal/models"
	"siproa/internal/rbac"
	"siproa/internal/storage"
)

func NewRouter(dir *directory.Directory, up storage.Uploader, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// Liveness probe, kept from the first deployment.
	r.GET("/api/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hola desde SIPROA API"})
	})

	// Public routes
	r.POST("/api/register", handlers.RegisterHandler(dir, jwtSecret))
	r.POST("/api/login", handlers.LoginHandler(dir, jwtSecret))

	// Protected API routes
	api := r.Group("/api", auth.JWT(jwtSecret))
	{
		api.GET("/me", handlers.MeHandler())
		api.GET("/maestro/home", rbac.RequireRole(models.RoleMaestro), handlers.HomeHandler())
		api.GET("/admin-only", rbac.RequireRole(models.RoleAdministrador), handlers.AdminOnlyHandler())
		api.POST("/files/upload", rbac.RequireRole(models.RoleMaestro), handlers.UploadHandler(up))
	}

	return r
}
