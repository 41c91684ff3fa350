package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Community_Board/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id")
)

// PostFilter 帖子查询条件，空字段表示不过滤
type PostFilter struct {
	Topic string // 精确匹配
	Query string // 标题或正文的子串，不区分大小写
}

type PostRepository interface {
	// Create 写入帖子，并回填 ID / CreatedAt / UpdatedAt
	Create(ctx context.Context, post *model.Post) error
	// Find 最多返回 limit 条，不保证顺序
	Find(ctx context.Context, filter PostFilter, limit int) ([]model.Post, error)
	// IncrementLikes 原子地给点赞数加 delta 并返回更新后的帖子
	IncrementLikes(ctx context.Context, id string, delta int) (*model.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByPost(ctx context.Context, postID string, limit int) ([]model.Comment, error)
}

// Diagnoser 诊断接口用的存储连通性信息
type Diagnoser interface {
	Name() string
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// NewID 所有存储后端统一使用 ObjectID 的十六进制形式作为主键
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// Now 存储只保留到毫秒，写入前截断，保证创建接口与后续查询返回的时间一致
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
