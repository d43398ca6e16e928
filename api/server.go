package api

import (
	"net/http"
	"os"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	localauthapi "github.com/orgspacehq/orgspace/api/localauth"
	"github.com/orgspacehq/orgspace/api/openapi"
	orgsapi "github.com/orgspacehq/orgspace/api/orgs"
	userapi "github.com/orgspacehq/orgspace/api/user"
	"github.com/orgspacehq/orgspace/appconfig"
	"github.com/orgspacehq/orgspace/common/log"
	"github.com/orgspacehq/orgspace/models"
	"go.uber.org/zap"
)

type Api struct {
	Store  *models.Store
	logger *zap.Logger
}

func (api *Api) StartAPI() error {
	zaplogger := log.NewDefaultLogger()
	defer zaplogger.Sync()
	route := api.buildRoute(zaplogger)
	return route.Run(":" + appconfig.Get().ApiPort())
}

func (api *Api) buildRoute(zaplogger *zap.Logger) *gin.Engine {
	api.logger = zaplogger

	route := gin.New()
	route.Use(ginzap.RecoveryWithZap(zaplogger, false))
	if os.Getenv("GIN_MODE") == "debug" {
		route.Use(ginzap.Ginzap(zaplogger, time.RFC3339, true))
	}
	// https://pkg.go.dev/github.com/gin-gonic/gin#readme-don-t-trust-all-proxies
	route.SetTrustedProxies(nil)
	route.Use(CORSMiddleware())

	route.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Hello") })
	route.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, openapi.NewNotFound("Resource not found"))
	})

	api.buildRoutes(route)
	return route
}

func (api *Api) buildRoutes(route *gin.Engine) {
	authHandler := &localauthapi.Handler{Store: api.Store}
	userHandler := &userapi.Handler{Store: api.Store}
	orgsHandler := &orgsapi.Handler{Store: api.Store}

	route.POST("/auth/register", authHandler.Register)
	route.POST("/auth/login", authHandler.Login)

	rg := route.Group("/api", api.Authenticate)
	rg.GET("/users/:id", userHandler.GetUserByID)
	rg.GET("/organisations", orgsHandler.List)
	rg.GET("/organisations/:orgId", orgsHandler.Get)
	rg.POST("/organisations", orgsHandler.Create)
	rg.POST("/organisations/:orgId/users", orgsHandler.AddMember)
}
