package service

import (
	"context"
	"time"

	"Community_Board/internal/repository"
)

const maxReportedCollections = 10

// HealthReport 诊断接口的返回内容
type HealthReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	Driver           string   `json:"driver"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthService struct {
	store   repository.Diagnoser
	driver  string
	urlSet  bool
	nameSet bool
	timeout time.Duration
}

func NewHealthService(store repository.Diagnoser, driver string, urlSet, nameSet bool, timeout time.Duration) *HealthService {
	return &HealthService{
		store:   store,
		driver:  driver,
		urlSet:  urlSet,
		nameSet: nameSet,
		timeout: timeout,
	}
}

// Report 存储错误在这里被吞掉，以文本形式写进报告
func (s *HealthService) Report(ctx context.Context) HealthReport {
	r := HealthReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(s.urlSet),
		DatabaseName:     setOrNot(s.nameSet),
		Driver:           s.driver,
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if s.store == nil {
		r.Database = "available but not initialized"
		return r
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		r.Database = "error: " + truncate(err.Error(), 50)
		return r
	}
	r.Database = "available"
	r.ConnectionStatus = "Connected"

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		r.Database = "connected but error: " + truncate(err.Error(), 50)
		return r
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	if names != nil {
		r.Collections = names
	}
	r.Database = "connected & working"
	return r
}

func setOrNot(ok bool) string {
	if ok {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
