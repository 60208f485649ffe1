package routes

import (
	"madinah_tours/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers = "/users"
)

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:email", userHandler.GetUserByEmail)
	}
}
