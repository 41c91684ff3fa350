package model

import "time"

type Post struct {
	ID          string
	DisplayName string
	Title       string
	Content     string
	Topic       Topic
	Likes       int64
	CreatedAt   time.Time // 零值表示存储中没有该字段
	UpdatedAt   time.Time
}
