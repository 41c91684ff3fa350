package mysql

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
)

type postRow struct {
	ID          string    `gorm:"primaryKey;type:char(24)"`
	DisplayName string    `gorm:"size:60;not null"`
	Title       string    `gorm:"size:120;not null"`
	Content     string    `gorm:"type:text"`
	Topic       string    `gorm:"size:32;not null;index:idx_topic"`
	Likes       int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"index:idx_created"`
	UpdatedAt   time.Time
}

func (postRow) TableName() string {
	return "posts"
}

func (r postRow) toModel() model.Post {
	return model.Post{
		ID:          r.ID,
		DisplayName: r.DisplayName,
		Title:       r.Title,
		Content:     r.Content,
		Topic:       model.Topic(r.Topic),
		Likes:       r.Likes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	now := repository.Now()
	row := postRow{
		ID:          repository.NewID(),
		DisplayName: post.DisplayName,
		Title:       post.Title,
		Content:     post.Content,
		Topic:       string(post.Topic),
		Likes:       post.Likes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	post.ID = row.ID
	post.CreatedAt = row.CreatedAt
	post.UpdatedAt = row.UpdatedAt
	return nil
}

// likePattern 把用户输入转义成字面量 LIKE 模式
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(q)) + "%"
}

// Find 不排序，顺序由调用方处理
func (r *PostRepository) Find(ctx context.Context, f repository.PostFilter, limit int) ([]model.Post, error) {
	q := r.DB.WithContext(ctx).Model(&postRow{})
	if f.Topic != "" {
		q = q.Where("topic = ?", f.Topic)
	}
	if f.Query != "" {
		p := likePattern(f.Query)
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", p, p)
	}

	var rows []postRow
	if err := q.Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	list := make([]model.Post, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}

// IncrementLikes 行锁 + 自增在同一个事务里，避免并发点赞丢失更新
func (r *PostRepository) IncrementLikes(ctx context.Context, id string, delta int) (*model.Post, error) {
	if !repository.ValidID(id) {
		return nil, repository.ErrInvalidID
	}

	var row postRow
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&row).Error; err != nil {
			return err
		}
		now := repository.Now()
		if err := tx.Model(&postRow{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"likes":      gorm.Expr("likes + ?", delta),
				"updated_at": now,
			}).Error; err != nil {
			return err
		}
		row.Likes += int64(delta)
		row.UpdatedAt = now
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := row.toModel()
	return &p, nil
}
