package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
)

func TestPostRepositoryFind(t *testing.T) {
	ctx := context.Background()
	repo := New().Posts()

	seed := []model.Post{
		{DisplayName: "Ann", Title: "Sleep tips", Content: "Magnesium before bed", Topic: model.TopicSleep},
		{DisplayName: "Bea", Title: "Anxiety at night", Content: "Any advice welcome", Topic: model.TopicMentalHealth},
		{DisplayName: "Cat", Title: "Walking", Content: "Dealing with ANXIETY by walking", Topic: model.TopicFitness},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
		assert.True(t, repository.ValidID(seed[i].ID))
		assert.False(t, seed[i].CreatedAt.IsZero())
	}

	tests := []struct {
		name     string
		filter   repository.PostFilter
		limit    int
		expected []string
	}{
		{"no filter", repository.PostFilter{}, 50, []string{"Ann", "Bea", "Cat"}},
		{"topic", repository.PostFilter{Topic: "Sleep"}, 50, []string{"Ann"}},
		{"topic is exact", repository.PostFilter{Topic: "sleep"}, 50, nil},
		{"query matches title and content", repository.PostFilter{Query: "anxiety"}, 50, []string{"Bea", "Cat"}},
		{"topic and query", repository.PostFilter{Topic: "Fitness", Query: "Anxiety"}, 50, []string{"Cat"}},
		{"limit", repository.PostFilter{}, 2, []string{"Ann", "Bea"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.Find(ctx, tt.filter, tt.limit)
			require.NoError(t, err)
			var names []string
			for _, p := range list {
				names = append(names, p.DisplayName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestPostRepositoryIncrementLikes(t *testing.T) {
	ctx := context.Background()
	repo := New().Posts()

	post := &model.Post{DisplayName: "Ann", Title: "Hello", Content: "Hello everyone", Topic: model.TopicSleep, Likes: 5}
	require.NoError(t, repo.Create(ctx, post))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.IncrementLikes(ctx, post.ID, 1)
		}()
	}
	wg.Wait()

	got, err := repo.IncrementLikes(ctx, post.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(22), got.Likes)

	_, err = repo.IncrementLikes(ctx, repository.NewID(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCommentRepositoryFindByPost(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := New(WithClock(func() time.Time { return fixed }))
	repo := store.Comments()

	postA, postB := repository.NewID(), repository.NewID()
	require.NoError(t, repo.Create(ctx, &model.Comment{PostID: postA, DisplayName: "Ann", Content: "first"}))
	require.NoError(t, repo.Create(ctx, &model.Comment{PostID: postB, DisplayName: "Bea", Content: "other"}))
	require.NoError(t, repo.Create(ctx, &model.Comment{PostID: postA, DisplayName: "Cat", Content: "second"}))

	list, err := repo.FindByPost(ctx, postA, 100)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, fixed, list[0].CreatedAt)

	names, err := store.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"comment"}, names)
}
