package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
	"Community_Board/internal/service"
)

type PostOut struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Topic       string  `json:"topic"`
	Likes       int64   `json:"likes"`
	CreatedAt   *string `json:"created_at"`
}

type CommentOut struct {
	ID          string  `json:"id"`
	PostID      string  `json:"post_id"`
	DisplayName string  `json:"display_name"`
	Content     string  `json:"content"`
	CreatedAt   *string `json:"created_at"`
}

func toPostOut(p model.Post) PostOut {
	return PostOut{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Title:       p.Title,
		Content:     p.Content,
		Topic:       string(p.Topic),
		Likes:       p.Likes,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func toCommentOut(cm model.Comment) CommentOut {
	return CommentOut{
		ID:          cm.ID,
		PostID:      cm.PostID,
		DisplayName: cm.DisplayName,
		Content:     cm.Content,
		CreatedAt:   formatTime(cm.CreatedAt),
	}
}

// formatTime 没有创建时间时返回 nil，序列化为 null
func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

// parseLimit 未传时返回 0，由 service 使用默认值
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// fail 把 service / repository 的错误映射成状态码
func fail(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
	case errors.Is(err, service.ErrInvalidTopic):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": err.Error()})
	default:
		log.ErrorContext(c.Request.Context(), "request failed",
			"route", c.FullPath(),
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}
