// Package cache wraps the Redis client used for the rendered-report cache
// and the archive filename index. Redis is optional: a nil *Service is safe
// to call and behaves as a miss.
package cache

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	reportKey       = "report:latest"
	archiveIndexKey = "report:archives"
)

// Service is a thin wrapper holding the Redis client and its context.
type Service struct {
	rdb *redis.Client
	ctx context.Context
}

func NewService(rdb *redis.Client, ctx context.Context) *Service {
	return &Service{rdb: rdb, ctx: ctx}
}

// GetReport returns the cached rendered report, if any.
func (s *Service) GetReport() (string, bool) {
	if s == nil {
		return "", false
	}
	content, err := s.rdb.Get(s.ctx, reportKey).Result()
	if err != nil {
		return "", false
	}
	return content, true
}

// SetReport caches a rendered report for ttl.
func (s *Service) SetReport(content string, ttl time.Duration) {
	if s == nil {
		return
	}
	s.rdb.Set(s.ctx, reportKey, content, ttl)
}

// InvalidateReport drops the cached report. Called after every write to the
// snapshot store so the next report reflects it.
func (s *Service) InvalidateReport() {
	if s == nil {
		return
	}
	s.rdb.Del(s.ctx, reportKey)
}

// AddArchivedFile records a filename in the archive index.
func (s *Service) AddArchivedFile(name string) {
	if s == nil {
		return
	}
	s.rdb.SAdd(s.ctx, archiveIndexKey, name)
}

// ArchivedFiles lists every recorded archive filename, ascending.
func (s *Service) ArchivedFiles() ([]string, error) {
	if s == nil {
		return nil, nil
	}
	names, err := s.rdb.SMembers(s.ctx, archiveIndexKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
