package service

import (
	"context"
	"log/slog"
	"slices"

	"Community_Board/internal/model"
	"Community_Board/internal/pkg"
	"Community_Board/internal/repository"
)

type CommentService struct {
	repo   repository.CommentRepository
	events pkg.Publisher
	log    *slog.Logger
}

func NewCommentService(repo repository.CommentRepository, events pkg.Publisher, log *slog.Logger) *CommentService {
	return &CommentService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// CreateComment 帖子 ID 以路径参数为准，覆盖请求体里的值
func (s *CommentService) CreateComment(ctx context.Context, postID string, comment *model.Comment) (*model.Comment, error) {
	if !repository.ValidID(postID) {
		return nil, repository.ErrInvalidID
	}
	comment.PostID = postID
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	publish(ctx, s.events, s.log, pkg.EventCommentCreated, postID, comment.ID, nil)
	return comment, nil
}

// ListComments 按创建时间正序
func (s *CommentService) ListComments(ctx context.Context, postID string, limit int) ([]model.Comment, error) {
	if !repository.ValidID(postID) {
		return nil, repository.ErrInvalidID
	}
	list, err := s.repo.FindByPost(ctx, postID, clampLimit(limit, DefaultCommentLimit))
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(list, func(a, b model.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return list, nil
}
