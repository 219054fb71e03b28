package handler

import (
	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/feed", h.feedGet)
		v1.GET("/analytics", h.analyticsGet)

		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/author/:userID", h.postsGetByAuthor)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.POST("/like", h.authMiddleware, h.postsLike)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)
			}
		}

		users := v1.Group("/users")
		{
			users.PUT("", h.usersUpsert)
		}

		preferences := v1.Group("/preferences")
		{
			preferences.GET("/theme", h.themeGet)
			preferences.PUT("/theme", h.themePut)
		}

		session := v1.Group("/session")
		{
			session.GET("", h.sessionGet)
			session.PUT("", h.sessionPut)
		}
	}

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.Author {
	userReq, _ := c.Get("user")

	author, ok := userReq.(model.Author)
	if !ok {
		return nil
	}

	return &author
}
