package routes

import (
	"Whist/controllers"
	"Whist/middleware"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Store   controllers.Pinger
	Tokens  *middleware.TokenIssuer
	Rooms   *controllers.RoomController
	Results *controllers.ResultsController
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", controllers.Ping(deps.Store))

	api := router.Group("/api")

	api.POST("/new-game", deps.Rooms.NewGame)

	api.POST("/join-game/:code", deps.Rooms.JoinGame)

	api.GET("/results/:code", deps.Results.GetResults)

	authentication := api.Group("/")
	authentication.Use(middleware.AuthRequired(deps.Tokens))
	{
		authentication.GET("/whoami", deps.Rooms.WhoAmI)

		authentication.GET("/rooms/:code", deps.Rooms.GetRoom)
	}
}
