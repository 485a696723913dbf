package handler

import (
	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"github.com/MohamedHany17m8/x-from-scratch/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Handler struct {
	services *service.Service
	logger   *zap.Logger
}

func New(services *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(h.requestLogger, h.panicRecovery)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "DELETE"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.authSignUp)
			auth.POST("/login", h.authSignIn)
			auth.POST("/logout", h.authSignOut)
			auth.GET("/getme", h.authMiddleware, h.authGetMe)
		}

		users := api.Group("/users")
		{
			users.Use(h.authMiddleware)

			users.GET("/profile/:username", h.usersGetProfile)
			users.GET("/suggested", h.usersGetSuggested)
			users.POST("/follow/:id", h.usersFollowUnfollow)
			users.POST("/update", h.usersUpdate)
		}

		posts := api.Group("/posts")
		{
			posts.Use(h.authMiddleware)

			posts.GET("/all", h.postsGetAll)
			posts.GET("/following", h.postsGetFollowing)
			posts.GET("/likes/:id", h.postsGetLiked)
			posts.GET("/user/:username", h.postsGetByUsername)
			posts.POST("/create", h.postsCreate)
			posts.POST("/like/:id", h.postsLikeUnlike)
			posts.POST("/comment/:id", h.postsComment)
			posts.DELETE("/:id", h.postsDelete)
		}

		notifications := api.Group("/notifications")
		{
			notifications.Use(h.authMiddleware)

			notifications.GET("", h.notificationsGetAll)
			notifications.DELETE("", h.notificationsDeleteAll)
		}
	}

	return r
}

func (h *Handler) getUser(c *gin.Context) *model.User {
	userReq, _ := c.Get(userKey)

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}
