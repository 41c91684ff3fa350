package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
)

type commentRow struct {
	ID          string    `gorm:"primaryKey;type:char(24)"`
	PostID      string    `gorm:"size:64;not null;index:idx_post_time,priority:1"`
	DisplayName string    `gorm:"size:60;not null"`
	Content     string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index:idx_post_time,priority:2"`
	UpdatedAt   time.Time
}

func (commentRow) TableName() string {
	return "comments"
}

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	now := repository.Now()
	row := commentRow{
		ID:          repository.NewID(),
		PostID:      comment.PostID,
		DisplayName: comment.DisplayName,
		Content:     comment.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	comment.ID = row.ID
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID string, limit int) ([]model.Comment, error) {
	var rows []commentRow
	err := r.DB.WithContext(ctx).
		Where("post_id = ?", postID).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]model.Comment, 0, len(rows))
	for _, row := range rows {
		list = append(list, model.Comment{
			ID:          row.ID,
			PostID:      row.PostID,
			DisplayName: row.DisplayName,
			Content:     row.Content,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return list, nil
}
