package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
	"Community_Board/internal/service"
)

type PostHandler struct {
	svc *service.PostService
	log *slog.Logger
}

type CreatePostReq struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=60"`
	Title       string `json:"title" binding:"required,min=3,max=120"`
	Content     string `json:"content" binding:"required,min=8,max=5000"`
	Topic       string `json:"topic" binding:"required,topic"`
	Likes       int64  `json:"likes" binding:"min=0"`
}

// LikeReq inc 缺省为 1
type LikeReq struct {
	Inc *int `json:"inc"`
}

func NewPostHandler(svc *service.PostService, log *slog.Logger) *PostHandler {
	return &PostHandler{
		svc: svc,
		log: log,
	}
}

// CreatePost 创建帖子接口
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), &model.Post{
		DisplayName: req.DisplayName,
		Title:       req.Title,
		Content:     req.Content,
		Topic:       model.Topic(req.Topic),
		Likes:       req.Likes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toPostOut(*post))
}

// ListPosts 帖子列表接口，支持 topic 精确过滤和 q 关键字搜索
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid limit"})
		return
	}

	filter := repository.PostFilter{
		Topic: c.Query("topic"),
		Query: c.Query("q"),
	}
	list, err := h.svc.ListPosts(c.Request.Context(), filter, limit)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	out := make([]PostOut, 0, len(list))
	for _, p := range list {
		out = append(out, toPostOut(p))
	}
	c.JSON(http.StatusOK, out)
}

// LikePost 点赞/取消点赞接口
func (h *PostHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")
	if !repository.ValidID(postID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	var req LikeReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindFailed(c, err)
		return
	}
	inc := 1
	if req.Inc != nil {
		inc = *req.Inc
	}

	post, err := h.svc.LikePost(c.Request.Context(), postID, inc)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toPostOut(*post))
}
