package hook

import (
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zeveck/claude-session-logger/internal/debug"
)

const (
	// settleInterval is how long the transcript must go without writes
	// before it is considered flushed.
	settleInterval = 200 * time.Millisecond
	// quiesceTimeout bounds the total wait.
	quiesceTimeout = 2 * time.Second
)

// WaitForQuiesce blocks until the transcript file stops receiving
// writes, or the timeout elapses. The stop hook can fire while the CLI
// is still flushing the last records, so converting immediately risks a
// truncated tail.
func WaitForQuiesce(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		if debug.Enabled {
			log.Printf("fsnotify unavailable, polling instead: %v", err)
		}
		pollForQuiesce(path)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		pollForQuiesce(path)
		return
	}

	deadline := time.NewTimer(quiesceTimeout)
	defer deadline.Stop()
	settle := time.NewTimer(settleInterval)
	defer settle.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if !settle.Stop() {
					select {
					case <-settle.C:
					default:
					}
				}
				settle.Reset(settleInterval)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if debug.Enabled {
				log.Printf("watch error on %s: %v", path, err)
			}
		case <-settle.C:
			return
		case <-deadline.C:
			return
		}
	}
}

// pollForQuiesce is the fallback: consider the file flushed once its
// size stops changing between samples.
func pollForQuiesce(path string) {
	prevSize := int64(-1)
	for i := 0; i < 10; i++ {
		var size int64
		if info, err := os.Stat(path); err == nil {
			size = info.Size()
		}
		if size == prevSize {
			return
		}
		prevSize = size
		time.Sleep(settleInterval)
	}
}
