package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
)

func TestPostFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   repository.PostFilter
		expected bson.D
	}{
		{
			name:     "empty",
			filter:   repository.PostFilter{},
			expected: bson.D{},
		},
		{
			name:     "topic only",
			filter:   repository.PostFilter{Topic: "Sleep"},
			expected: bson.D{{Key: "topic", Value: "Sleep"}},
		},
		{
			name:   "query is quoted and case-insensitive",
			filter: repository.PostFilter{Topic: "Sleep", Query: "a.b"},
			expected: bson.D{
				{Key: "topic", Value: "Sleep"},
				{Key: "$or", Value: bson.A{
					bson.D{{Key: "title", Value: primitive.Regex{Pattern: `a\.b`, Options: "i"}}},
					bson.D{{Key: "content", Value: primitive.Regex{Pattern: `a\.b`, Options: "i"}}},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, postFilter(tt.filter))
		})
	}
}

func postBSON(id primitive.ObjectID, title string, likes int64, created time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "display_name", Value: "Ann"},
		{Key: "title", Value: title},
		{Key: "content", Value: "Some content here"},
		{Key: "topic", Value: "Sleep"},
		{Key: "likes", Value: likes},
		{Key: "created_at", Value: created},
	}
}

func TestPostRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewStore(mt.DB).Posts()

		post := &model.Post{DisplayName: "Ann", Title: "Hello", Content: "Hello everyone", Topic: model.TopicSleep}
		require.NoError(mt, repo.Create(context.Background(), post))
		assert.True(mt, repository.ValidID(post.ID))
		assert.False(mt, post.CreatedAt.IsZero())
		assert.Equal(mt, post.CreatedAt, post.CreatedAt.Truncate(time.Millisecond))
	})

	mt.Run("find decodes documents", func(mt *mtest.T) {
		created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		ns := mt.DB.Name() + "." + PostCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			postBSON(id1, "First", 2, created),
			bson.D{{Key: "_id", Value: id2}, {Key: "title", Value: "No timestamp"}},
		))
		repo := NewStore(mt.DB).Posts()

		list, err := repo.Find(context.Background(), repository.PostFilter{Topic: "Sleep"}, 50)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, id1.Hex(), list[0].ID)
		assert.Equal(mt, int64(2), list[0].Likes)
		assert.True(mt, created.Equal(list[0].CreatedAt))
		assert.True(mt, list[1].CreatedAt.IsZero())
	})

	mt.Run("increment likes returns updated document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: postBSON(id, "Liked", 6, time.Now().UTC())},
		})
		repo := NewStore(mt.DB).Posts()

		post, err := repo.IncrementLikes(context.Background(), id.Hex(), 1)
		require.NoError(mt, err)
		assert.Equal(mt, int64(6), post.Likes)
		assert.Equal(mt, id.Hex(), post.ID)
	})

	mt.Run("increment likes on missing post", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})
		repo := NewStore(mt.DB).Posts()

		_, err := repo.IncrementLikes(context.Background(), primitive.NewObjectID().Hex(), 1)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("increment likes with malformed id", func(mt *mtest.T) {
		repo := NewStore(mt.DB).Posts()

		_, err := repo.IncrementLikes(context.Background(), "not-an-id", 1)
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
	})
}

func TestCommentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by post", func(mt *mtest.T) {
		postID := primitive.NewObjectID().Hex()
		ns := mt.DB.Name() + "." + CommentCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "post_id", Value: postID},
				{Key: "display_name", Value: "Bea"},
				{Key: "content", Value: "Thanks!"},
			},
		))
		repo := NewStore(mt.DB).Comments()

		list, err := repo.FindByPost(context.Background(), postID, 100)
		require.NoError(mt, err)
		require.Len(mt, list, 1)
		assert.Equal(mt, postID, list[0].PostID)
		assert.Equal(mt, "Thanks!", list[0].Content)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewStore(mt.DB).Comments()

		c := &model.Comment{PostID: primitive.NewObjectID().Hex(), DisplayName: "Bea", Content: "Hi"}
		require.NoError(mt, repo.Create(context.Background(), c))
		assert.True(mt, repository.ValidID(c.ID))
		assert.Equal(mt, c.CreatedAt, c.CreatedAt.Truncate(time.Millisecond))
	})
}

func TestStoreCollectionNames(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lists collections", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".$cmd.listCollections"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "post"}, {Key: "type", Value: "collection"}},
			bson.D{{Key: "name", Value: "comment"}, {Key: "type", Value: "collection"}},
		))
		store := NewStore(mt.DB)

		names, err := store.CollectionNames(context.Background())
		require.NoError(mt, err)
		assert.ElementsMatch(mt, []string{"post", "comment"}, names)
	})
}
