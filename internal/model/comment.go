package model

import "time"

// Comment 帖子下的评论，创建后不再修改
type Comment struct {
	ID          string
	PostID      string // 仅保存引用，不做外键约束
	DisplayName string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
