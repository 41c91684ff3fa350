package app

import (
	"context"
	"fmt"
	"log/slog"

	"Community_Board/internal/config"
	"Community_Board/internal/httpserver"
	"Community_Board/internal/pkg"
	"Community_Board/internal/repository"
	"Community_Board/internal/repository/memory"
	"Community_Board/internal/repository/mongo"
	"Community_Board/internal/repository/mysql"
	"Community_Board/internal/repository/redis"
	"Community_Board/internal/router"
	"Community_Board/internal/service"
)

// store 选中的存储后端
type store struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	diag     repository.Diagnoser
	close    func(ctx context.Context) error
}

func openStore(ctx context.Context, conf config.Database, log *slog.Logger) (*store, error) {
	switch conf.Driver {
	case "mongo":
		s, err := mongo.Connect(ctx, conf.URL, conf.Name, conf.Timeout)
		if err != nil {
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
		if err := s.Ping(pingCtx); err != nil {
			// 不中断启动，由 /test 报告连接状态
			log.Warn("mongo not reachable", "error", err.Error())
		}
		return &store{posts: s.Posts(), comments: s.Comments(), diag: s, close: s.Close}, nil
	case "mysql":
		s, err := mysql.InitDB(conf.URL, conf.Name, conf.Timeout)
		if err != nil {
			return nil, err
		}
		return &store{posts: s.Posts(), comments: s.Comments(), diag: s, close: s.Close}, nil
	case "memory":
		s := memory.New()
		return &store{
			posts:    s.Posts(),
			comments: s.Comments(),
			diag:     s,
			close:    func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unsupported driver %q", conf.Driver)
}

func newPublisher(conf *config.Config) (pkg.Publisher, error) {
	switch conf.Events.Backend {
	case "kafka":
		return pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: conf.Brokers,
			Topic:   conf.Kafka.Topic,
		})
	case "redis":
		rdb, err := redis.NewClient(conf.Redis.Addr, conf.Password, conf.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return pkg.NewStreamPublisher(rdb, conf.Stream), nil
	}
	return pkg.NopPublisher{}, nil
}

// Run 连接存储、组装依赖并启动 HTTP 服务，退出时依次关闭
func Run(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	st, err := openStore(ctx, conf.Database, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), conf.Database.Timeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Error("close store", "error", err.Error())
		}
	}()

	events, err := newPublisher(conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Error("close publisher", "error", err.Error())
		}
	}()

	svc := router.Services{
		Posts:    service.NewPostService(st.posts, events, log),
		Comments: service.NewCommentService(st.comments, events, log),
		Health:   service.NewHealthService(st.diag, conf.Driver, conf.URLSet, conf.NameSet, conf.Database.Timeout),
	}
	r := router.InitRouter(svc, conf.CORSOrigins, log)

	log.Info("starting", "driver", conf.Driver, "events", conf.Events.Backend)
	return httpserver.New(conf.HTTPServer, r, log).Run(ctx)
}
