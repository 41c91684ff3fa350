package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Community_Board/internal/model"
	"Community_Board/internal/repository"
)

type postDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	DisplayName string             `bson:"display_name"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	Topic       string             `bson:"topic"`
	Likes       int64              `bson:"likes"`
	CreatedAt   time.Time          `bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty"`
}

func (d postDoc) toModel() model.Post {
	return model.Post{
		ID:          d.ID.Hex(),
		DisplayName: d.DisplayName,
		Title:       d.Title,
		Content:     d.Content,
		Topic:       model.Topic(d.Topic),
		Likes:       d.Likes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type PostRepository struct {
	coll *mongo.Collection
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	now := repository.Now()
	doc := postDoc{
		ID:          primitive.NewObjectID(),
		DisplayName: post.DisplayName,
		Title:       post.Title,
		Content:     post.Content,
		Topic:       string(post.Topic),
		Likes:       post.Likes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	post.ID = doc.ID.Hex()
	post.CreatedAt = now
	post.UpdatedAt = now
	return nil
}

// postFilter 构造查询条件：topic 精确匹配，q 按字面子串做不区分大小写的正则
func postFilter(f repository.PostFilter) bson.D {
	filter := bson.D{}
	if f.Topic != "" {
		filter = append(filter, bson.E{Key: "topic", Value: f.Topic})
	}
	if f.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "content", Value: re}},
		}})
	}
	return filter
}

func (r *PostRepository) Find(ctx context.Context, f repository.PostFilter, limit int) ([]model.Post, error) {
	cur, err := r.coll.Find(ctx, postFilter(f), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]model.Post, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toModel())
	}
	return list, nil
}

// IncrementLikes 依赖 findAndModify 的原子性，并发点赞不会丢失更新
func (r *PostRepository) IncrementLikes(ctx context.Context, id string, delta int) (*model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "likes", Value: delta}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: repository.Now()}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := doc.toModel()
	return &p, nil
}
