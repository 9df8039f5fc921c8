package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/recipe-genie/backend/internal/api"
	"github.com/recipe-genie/backend/internal/middleware"
	"github.com/recipe-genie/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	subscribeHandler *api.SubscribeHandler,
	authorizer service.Authorizer,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.Default())

	router.GET("/", api.Index)
	router.GET("/health", api.HealthCheck)
	router.POST("/subscribe", subscribeHandler.Subscribe)
	router.POST("/generate_recipe_and_image",
		middleware.RequireAPIKey(authorizer),
		recipeHandler.Generate,
	)

	return router
}
