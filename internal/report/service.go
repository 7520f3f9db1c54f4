package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mpdl-apps/cleaning-inventory/internal/archive"
	"github.com/mpdl-apps/cleaning-inventory/internal/cache"
	"github.com/mpdl-apps/cleaning-inventory/internal/inventory"
)

// cacheTTL bounds how stale a cached report can get. Writes invalidate the
// cache anyway; the TTL covers writes from other instances.
const cacheTTL = time.Minute

// Service generates report documents and archives them to the blob store.
type Service struct {
	inventory *inventory.Service
	blobs     archive.BlobStore
	cache     *cache.Service
	log       *zap.Logger
}

func NewService(inv *inventory.Service, blobs archive.BlobStore, c *cache.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{inventory: inv, blobs: blobs, cache: c, log: logger}
}

// Generate renders the current report: latest snapshot per device plus the
// LAC consolidated aggregate. A cached copy is served when fresh.
func (s *Service) Generate() (string, error) {
	if content, ok := s.cache.GetReport(); ok {
		return content, nil
	}

	latest, err := s.inventory.LatestAll()
	if err != nil {
		return "", err
	}
	consolidated, err := s.inventory.Consolidated()
	if err != nil {
		return "", err
	}

	content := Render(latest, consolidated, time.Now())
	s.cache.SetReport(content, cacheTTL)
	return content, nil
}

// Archive renders the report and uploads it to the blob store under the
// dated archive filename. The filename is recorded in the archive index.
func (s *Service) Archive(ctx context.Context) (filename, url string, err error) {
	content, err := s.Generate()
	if err != nil {
		return "", "", err
	}

	filename = ArchiveFilename(time.Now())
	url, err = s.blobs.Put(ctx, filename, []byte(content))
	if err != nil {
		return "", "", err
	}

	s.cache.AddArchivedFile(filename)
	s.log.Info("report archived",
		zap.String("filename", filename),
		zap.String("url", url),
		zap.Int("bytes", len(content)))
	return filename, url, nil
}

// ArchivedFiles lists recorded archive filenames.
func (s *Service) ArchivedFiles() ([]string, error) {
	return s.cache.ArchivedFiles()
}

// InvalidateCache drops any cached report. Called after snapshot writes.
func (s *Service) InvalidateCache() {
	s.cache.InvalidateReport()
}
