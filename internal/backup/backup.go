// Package backup writes scheduled CSV snapshots of the complete activity log.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/sstent/sportlog-go/internal/database"
	"github.com/sstent/sportlog-go/internal/export"
)

type Service struct {
	store database.Store
	dir   string
	log   zerolog.Logger
}

func NewService(store database.Store, dir string, logger zerolog.Logger) *Service {
	return &Service{
		store: store,
		dir:   dir,
		log:   logger,
	}
}

// Run exports every stored activity to a timestamped CSV file in the backup
// directory.
func (s *Service) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records, err := s.store.FetchRecords(database.Filters{})
	if err != nil {
		return fmt.Errorf("failed to fetch records: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("activities-%s.csv", time.Now().Format("20060102-150405")))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	if err := export.Write(file, records); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	s.log.Info().Str("path", path).Int("records", len(records)).Msg("backup written")
	return nil
}
