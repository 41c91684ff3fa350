package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
	"Community_Board/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
	log *slog.Logger
}

// CreateCommentReq post_id 可以出现在请求体中，但始终以路径参数为准
type CreateCommentReq struct {
	PostID      string `json:"post_id"`
	DisplayName string `json:"display_name" binding:"required,min=2,max=60"`
	Content     string `json:"content" binding:"required,min=2,max=2000"`
}

func NewCommentHandler(svc *service.CommentService, log *slog.Logger) *CommentHandler {
	return &CommentHandler{
		svc: svc,
		log: log,
	}
}

// CreateComment 发表评论接口
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID := c.Param("id")
	if !repository.ValidID(postID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), postID, &model.Comment{
		DisplayName: req.DisplayName,
		Content:     req.Content,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toCommentOut(*comment))
}

// ListComments 评论列表接口，按时间正序
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID := c.Param("id")
	if !repository.ValidID(postID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid limit"})
		return
	}

	list, err := h.svc.ListComments(c.Request.Context(), postID, limit)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	out := make([]CommentOut, 0, len(list))
	for _, cm := range list {
		out = append(out, toCommentOut(cm))
	}
	c.JSON(http.StatusOK, out)
}
