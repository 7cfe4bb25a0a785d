// Package importer scans a directory for activity files and records their
// summaries in the index.
package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/openfitness/tcxsync/internal/database"
	"github.com/openfitness/tcxsync/internal/parser"
)

type Service struct {
	store *database.Store
	dir   string
}

func NewService(store *database.Store, dir string) *Service {
	return &Service{store: store, dir: dir}
}

// Run walks the directory once, importing every .tcx and .fit file that is
// not already in the index. A file that fails to parse is logged and
// skipped; the run continues with the next file.
func (s *Service) Run(ctx context.Context) error {
	startTime := time.Now()
	log.Printf("Starting import of %s", s.dir)
	defer func() {
		log.Printf("Import completed in %s", time.Since(startTime))
	}()

	var files []string
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".tcx", ".fit":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", s.dir, err)
	}
	log.Printf("Found %d activity files", len(files))

	for i, path := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		imported, err := s.importFile(path)
		if err != nil {
			log.Printf("[%d/%d] Error importing %s: %v", i+1, len(files), path, err)
			continue
		}
		if imported {
			log.Printf("[%d/%d] Imported %s", i+1, len(files), path)
		}
	}
	return nil
}

func (s *Service) importFile(path string) (bool, error) {
	name := filepath.Base(path)
	exists, err := s.store.ActivityExists(name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	p, err := parser.New(path)
	if err != nil {
		return false, err
	}
	metrics, err := p.ParseFile(path)
	if err != nil {
		return false, err
	}

	activity := &database.Activity{
		Sport:        metrics.Sport,
		StartTime:    metrics.StartTime,
		Duration:     int(metrics.Duration.Seconds()),
		Distance:     metrics.Distance,
		AvgHeartRate: metrics.AvgHeartRate,
		MaxHeartRate: metrics.MaxHeartRate,
		AvgPower:     metrics.AvgPower,
		Calories:     metrics.Calories,
		Trackpoints:  metrics.Trackpoints,
		Filename:     name,
		FileType:     strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
	if err := s.store.SaveActivity(activity); err != nil {
		return false, err
	}
	return true, nil
}
