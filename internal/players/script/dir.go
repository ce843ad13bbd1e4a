package script

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hideseek/internal/strategy"
)

// LoadDir registers every *.js module in dir, in file name order. Modules
// that fail to load or collide with an existing identity are logged and
// skipped. A missing directory registers nothing.
func LoadDir(dir string, reg *strategy.Registry, logger *log.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		if logger != nil {
			logger.Debug("players directory not found", "dir", dir)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("script: cannot read players directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".js") {
			continue
		}
		path := filepath.Join(dir, e.Name())

		p, err := Load(path)
		if err == nil {
			err = reg.Register(p.ID(), path, p)
		}
		if err != nil {
			if logger != nil {
				logger.Warn("player rejected", "file", path, "error", err)
			}
			continue
		}
		ids = append(ids, p.ID())
	}
	return ids, nil
}
