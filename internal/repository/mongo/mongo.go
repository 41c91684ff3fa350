package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	PostCollection    = "post"
	CommentCollection = "comment"
)

// Store 持有连接池化的客户端和目标数据库
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect 建立客户端。驱动是惰性连接的，这里不做 Ping，由调用方决定
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMaxPoolSize(50)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

// NewStore 基于已有的数据库句柄
func NewStore(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db}
}

func (s *Store) Posts() *PostRepository {
	return &PostRepository{coll: s.db.Collection(PostCollection)}
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{coll: s.db.Collection(CommentCollection)}
}

func (s *Store) Name() string {
	return s.db.Name()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// Close 断开客户端（在程序退出时调用）
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
