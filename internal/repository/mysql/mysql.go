package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store gorm 连接，帖子/评论仓库共用
type Store struct {
	DB   *gorm.DB
	name string
}

// InitDB 打开连接、Ping 并自动建表
func InitDB(dsn, database string, timeout time.Duration) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	// 自动建表
	if err := db.AutoMigrate(&postRow{}, &commentRow{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return NewStore(db, database), nil
}

func NewStore(db *gorm.DB, database string) *Store {
	return &Store{DB: db, name: database}
}

func (s *Store) Posts() *PostRepository {
	return &PostRepository{DB: s.DB}
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{DB: s.DB}
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.DB.WithContext(ctx).Migrator().GetTables()
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
