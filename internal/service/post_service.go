package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"Community_Board/internal/model"
	"Community_Board/internal/pkg"
	"Community_Board/internal/repository"
)

const (
	DefaultPostLimit    = 50
	DefaultCommentLimit = 100
	MaxLimit            = 1000
)

var ErrInvalidTopic = errors.New("invalid topic")

type PostService struct {
	repo   repository.PostRepository
	events pkg.Publisher
	log    *slog.Logger
}

func NewPostService(repo repository.PostRepository, events pkg.Publisher, log *slog.Logger) *PostService {
	return &PostService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// CreatePost 创建帖子，字段约束已在绑定层校验
func (s *PostService) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	if !post.Topic.Valid() {
		return nil, ErrInvalidTopic
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	publish(ctx, s.events, s.log, pkg.EventPostCreated, post.ID, post.ID, map[string]string{
		"topic": string(post.Topic),
	})
	return post, nil
}

// ListPosts 存储层不保证顺序，这里按创建时间倒序
func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter, limit int) ([]model.Post, error) {
	list, err := s.repo.Find(ctx, filter, clampLimit(limit, DefaultPostLimit))
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(list, func(a, b model.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return list, nil
}

// LikePost inc 可以为负数，同一个接口既能点赞也能取消
func (s *PostService) LikePost(ctx context.Context, postID string, inc int) (*model.Post, error) {
	if !repository.ValidID(postID) {
		return nil, repository.ErrInvalidID
	}
	post, err := s.repo.IncrementLikes(ctx, postID, inc)
	if err != nil {
		return nil, err
	}

	publish(ctx, s.events, s.log, pkg.EventPostLiked, post.ID, post.ID, map[string]int64{
		"inc":   int64(inc),
		"likes": post.Likes,
	})
	return post, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
