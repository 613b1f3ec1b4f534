package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/roach88/tasklog/internal/task"
)

// Load reads the interval log at path. A missing file is a first run
// and yields an empty log, never an error.
func Load(path string) (*task.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return task.NewLog(), nil
		}
		return nil, task.NewIOFailure(fmt.Sprintf("open log %s", path), err)
	}
	defer f.Close()
	return Read(f)
}

// Save atomically replaces the interval log at path with the given log.
// The parent directory is created if needed. The previous on-disk log
// survives intact unless the rename at the end succeeds.
func Save(path string, log *task.Log) error {
	return writeFileAtomic(path, log)
}
