package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	healthhttp "github.com/fitplan-app/fitplan-backend/internal/api/http"
	fitnesshttp "github.com/fitplan-app/fitplan-backend/internal/fitness/http"
	"github.com/fitplan-app/fitplan-backend/internal/fitness/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Store       *redis.Client
	App         *service.AppService
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := healthhttp.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	fitnessHandler := fitnesshttp.NewHandler(dep.App)
	fitnessHandler.Register(api)

	return r
}
