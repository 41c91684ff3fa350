package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
)

type commentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PostID      string             `bson:"post_id"`
	DisplayName string             `bson:"display_name"`
	Content     string             `bson:"content"`
	CreatedAt   time.Time          `bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty"`
}

type CommentRepository struct {
	coll *mongo.Collection
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	now := repository.Now()
	doc := commentDoc{
		ID:          primitive.NewObjectID(),
		PostID:      comment.PostID,
		DisplayName: comment.DisplayName,
		Content:     comment.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	comment.ID = doc.ID.Hex()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID string, limit int) ([]model.Comment, error) {
	filter := bson.D{{Key: "post_id", Value: postID}}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := make([]model.Comment, 0)
	for cur.Next(ctx) {
		var d commentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		list = append(list, model.Comment{
			ID:          d.ID.Hex(),
			PostID:      d.PostID,
			DisplayName: d.DisplayName,
			Content:     d.Content,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		})
	}
	return list, cur.Err()
}
