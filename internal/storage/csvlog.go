package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/vovakirdan/hideseek/internal/tournament"
)

// CSVHeader is the first line of a new match log.
var CSVHeader = []string{"timestamp", "tournament", "hider", "seeker", "result_hider", "result_seeker", "obstacles"}

// CSVLog appends one row per completed match to a CSV file.
type CSVLog struct {
	mu   sync.Mutex
	path string
	file *os.File
	w    *csv.Writer
}

// OpenCSVLog opens path for appending, writing the header if the file is new
// or empty.
func OpenCSVLog(path string) (*CSVLog, error) {
	path, err := prepare(path)
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open match log: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("storage: cannot stat match log: %w", err)
	}

	l := &CSVLog{path: path, file: file, w: csv.NewWriter(file)}
	if info.Size() == 0 {
		if err := l.write(CSVHeader); err != nil {
			file.Close()
			return nil, err
		}
	}
	return l, nil
}

// Path returns the expanded file path.
func (l *CSVLog) Path() string {
	return l.path
}

// AppendMatch writes e as one row and flushes it to disk.
func (l *CSVLog) AppendMatch(e tournament.Entry) error {
	obstacles, err := e.ObstacleJSON()
	if err != nil {
		return fmt.Errorf("storage: cannot encode obstacles: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.write([]string{
		e.Timestamp(),
		e.TournamentID,
		e.Hider,
		e.Seeker,
		e.HiderResult(),
		e.SeekerResult(),
		obstacles,
	})
}

func (l *CSVLog) write(row []string) error {
	if err := l.w.Write(row); err != nil {
		return fmt.Errorf("storage: cannot append match log: %w", err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return fmt.Errorf("storage: cannot append match log: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *CSVLog) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
