package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// followInterval is how often TailLog polls a followed file for new data.
const followInterval = 100 * time.Millisecond

// FindLatestLog finds the most recently modified session log in a directory.
// It returns "" when the directory is missing or holds no logs.
func FindLatestLog(logDir string) (string, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read log dir: %w", err)
	}

	var latest string
	var latestTime time.Time

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), LogExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if latest == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latest = filepath.Join(logDir, entry.Name())
		}
	}

	return latest, nil
}

// TailLog writes the last n lines of the file at path to w, or the whole
// file when n <= 0. With follow set it keeps copying appended data until
// ctx is cancelled.
func TailLog(ctx context.Context, w io.Writer, path string, n int, follow bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	if _, err := w.Write(lastLines(data, n)); err != nil {
		return err
	}

	if !follow {
		return nil
	}
	return tailFollow(ctx, w, file)
}

// lastLines returns the suffix of data holding its last n lines.
func lastLines(data []byte, n int) []byte {
	if n <= 0 {
		return data
	}
	// A trailing newline terminates the last line rather than starting a new one.
	end := len(data)
	if end > 0 && data[end-1] == '\n' {
		end--
	}
	start := end
	for i := 0; i < n; i++ {
		idx := bytes.LastIndexByte(data[:start], '\n')
		if idx < 0 {
			return data
		}
		start = idx
	}
	return data[start+1:]
}

// tailFollow copies data appended to file until ctx is done.
func tailFollow(ctx context.Context, w io.Writer, file *os.File) error {
	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()

	for {
		if _, err := io.Copy(w, file); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
