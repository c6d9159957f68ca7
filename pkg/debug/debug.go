// Package debug appends timestamped trace lines to a file when enabled.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	rdebug "runtime/debug"
	"sync"
	"time"
)

const DefaultFile = "plotpad-debug.log"

var (
	mu   sync.Mutex
	fh   *os.File
	path string
)

// Enable starts tracing to filename, DefaultFile when empty.
func Enable(filename string) error {
	mu.Lock()
	defer mu.Unlock()
	if filename == "" {
		filename = DefaultFile
	}
	if fh != nil && filename == path {
		return nil
	}
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("debug: open %s: %w", filename, err)
	}
	if fh != nil {
		fh.Close()
	}
	fh, path = f, filename
	return nil
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return fh != nil
}

func Log(msg string) {
	if !Enabled() {
		return
	}
	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	_, fullPath, line, ok := runtime.Caller(1)
	if ok {
		LogRaw(fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg))
	} else {
		LogRaw(timeStr + " " + msg)
	}
}

func LogRaw(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return
	}
	if _, err := fh.WriteString(msg + "\n"); err != nil {
		log.Println("debug: write failed:", err)
	}
}

// Do runs fn and logs instead of crashing if it panics.
func Do(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered: %v", r)
			LogRaw(fmt.Sprintf("panic: %v\n%s", r, rdebug.Stack()))
		}
	}()
	fn()
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return
	}
	fh.Sync()
	fh.Close()
	fh = nil
}
