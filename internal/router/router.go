package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"Community_Board/internal/handler"
	"Community_Board/internal/middleware"
	"Community_Board/internal/service"
)

type Services struct {
	Posts    *service.PostService
	Comments *service.CommentService
	Health   *service.HealthService
}

func InitRouter(svc Services, origins []string, log *slog.Logger) *gin.Engine {
	handler.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig(origins)))

	health := handler.NewHealthHandler(svc.Health)
	post := handler.NewPostHandler(svc.Posts, log)
	comment := handler.NewCommentHandler(svc.Comments, log)

	// 诊断接口
	r.GET("/", health.Root)
	r.GET("/test", health.Diagnose)

	// 帖子相关接口
	postGroup := r.Group("/api/posts")
	{
		postGroup.POST("", post.CreatePost)
		postGroup.GET("", post.ListPosts)
		postGroup.POST("/:id/like", post.LikePost)
		postGroup.POST("/:id/comments", comment.CreateComment)
		postGroup.GET("/:id/comments", comment.ListComments)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
