// Package memory 进程内存储，用于本地开发和测试
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
)

type Store struct {
	mu       sync.RWMutex
	posts    []model.Post
	comments []model.Comment
	now      func() time.Time
}

type Option func(*Store)

// WithClock 替换写入时间来源
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Posts() *PostRepository {
	return &PostRepository{store: s}
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{store: s}
}

func (s *Store) Name() string {
	return "memory"
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	if len(s.posts) > 0 {
		names = append(names, "post")
	}
	if len(s.comments) > 0 {
		names = append(names, "comment")
	}
	return names, nil
}

type PostRepository struct {
	store *Store
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	post.ID = repository.NewID()
	post.CreatedAt = now
	post.UpdatedAt = now
	s.posts = append(s.posts, *post)
	return nil
}

func (r *PostRepository) Find(ctx context.Context, filter repository.PostFilter, limit int) ([]model.Post, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(filter.Query)
	list := make([]model.Post, 0)
	for _, p := range s.posts {
		if len(list) >= limit {
			break
		}
		if filter.Topic != "" && string(p.Topic) != filter.Topic {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Content), q) {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *PostRepository) IncrementLikes(ctx context.Context, id string, delta int) (*model.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Likes += int64(delta)
			s.posts[i].UpdatedAt = s.now()
			p := s.posts[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type CommentRepository struct {
	store *Store
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	comment.ID = repository.NewID()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	s.comments = append(s.comments, *comment)
	return nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID string, limit int) ([]model.Comment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Comment, 0)
	for _, c := range s.comments {
		if len(list) >= limit {
			break
		}
		if c.PostID == postID {
			list = append(list, c)
		}
	}
	return list, nil
}
