package projsize

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// collector aggregates walk counters from concurrent fastwalk callbacks
// using a mutex, since fastwalk calls back from multiple goroutines.
type collector struct {
	mu         sync.Mutex
	fileCount  int64
	totalBytes int64
	errorCount int64
}

func newCollector() *collector {
	return &collector{}
}

// add records one sized file.
func (c *collector) add(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fileCount++
	c.totalBytes += size
}

// addError increments the skipped-entry counter.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// snapshot returns the current file and byte counts.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// errors returns the number of entries skipped so far.
func (c *collector) errors() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errorCount
}

// FolderSize returns the total size in bytes of all regular files under path,
// recursing into subdirectories. Symbolic links are not followed. Entries
// that cannot be read are skipped, never aborting the computation, and a
// missing or empty directory yields 0.
func FolderSize(ctx context.Context, path string) (int64, error) {
	return folderSize(ctx, path, newCollector())
}

// folderSize is FolderSize feeding progress counters into c. The only error
// it returns is context cancellation; everything else degrades to a partial
// or zero total.
func folderSize(ctx context.Context, path string, c *collector) (int64, error) {
	if _, err := os.Lstat(path); err != nil {
		return 0, nil //nolint:nilerr // Missing directories count as empty
	}

	var total atomic.Int64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			c.addError()

			return nil //nolint:nilerr // Skip unreadable entries, keep walking
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			c.addError()

			return nil //nolint:nilerr // Entry vanished mid-walk
		}

		total.Add(info.Size())
		c.add(info.Size())

		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) {
			return total.Load(), walkErr
		}

		c.addError()
	}

	return total.Load(), nil
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, bytes := c.snapshot()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}
