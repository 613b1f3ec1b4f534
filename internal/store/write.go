package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/roach88/tasklog/internal/task"
)

// Write encodes the log as JSON Lines in log order.
func Write(w io.Writer, log *task.Log) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, iv := range log.Intervals() {
		if err := enc.Encode(toRecord(iv)); err != nil {
			return fmt.Errorf("encode interval: %w", err)
		}
	}
	return bw.Flush()
}

// writeFileAtomic serializes the log to a temp file in the target
// directory, syncs it, and renames it over path.
func writeFileAtomic(path string, log *task.Log) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return task.NewIOFailure(fmt.Sprintf("create data directory %s", dir), err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return task.NewIOFailure("create temporary log", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := Write(tmp, log); err != nil {
		return task.NewIOFailure("write temporary log", err)
	}
	if err := tmp.Sync(); err != nil {
		return task.NewIOFailure("sync temporary log", err)
	}
	if err := tmp.Close(); err != nil {
		return task.NewIOFailure("close temporary log", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return task.NewIOFailure(fmt.Sprintf("commit log %s", path), err)
	}
	committed = true
	return nil
}
