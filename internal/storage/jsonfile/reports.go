// Package jsonfile keeps wait reports in a single JSON array on disk, the
// format of the legacy reports.json.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"foodi/internal/adapters/observability"
	"foodi/internal/domain"
)

type ReportFile struct {
	mu   sync.Mutex
	path string
}

func New(path string) *ReportFile { return &ReportFile{path: path} }

func (f *ReportFile) Path() string { return f.path }

// LoadAll reads every record. A missing file is an empty set; a file that
// does not decode is an error.
func (f *ReportFile) LoadAll(ctx context.Context) (out []domain.ReportRecord, err error) {
	defer func(t time.Time) { observability.ObserveStore("jsonfile", "load_reports", err, time.Since(t)) }(time.Now())
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *ReportFile) SaveAll(ctx context.Context, rs []domain.ReportRecord) (err error) {
	defer func(t time.Time) { observability.ObserveStore("jsonfile", "save_reports", err, time.Since(t)) }(time.Now())
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(rs)
}

func (f *ReportFile) Append(ctx context.Context, rec domain.ReportRecord) (err error) {
	defer func(t time.Time) { observability.ObserveStore("jsonfile", "append_report", err, time.Since(t)) }(time.Now())
	f.mu.Lock()
	defer f.mu.Unlock()

	rs, err := f.read()
	if err != nil {
		return err
	}
	return f.write(append(rs, rec))
}

func (f *ReportFile) read() ([]domain.ReportRecord, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rs []domain.ReportRecord
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return rs, nil
}

// write replaces the file through a temp file + rename so readers never see
// a half-written array.
func (f *ReportFile) write(rs []domain.ReportRecord) error {
	if rs == nil {
		rs = []domain.ReportRecord{}
	}
	b, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".reports-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
