// Package watcher reports changes to a single settings file.
//
// Editors often replace a file instead of writing it in place, so the
// watcher observes the parent directory and filters events by name.
// Bursts of events are coalesced into one notification per quiet period.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the quiet period used when none is given.
const DefaultDelay = 100 * time.Millisecond

// Errors returned by the watcher.
var (
	// ErrWatcherClosed indicates the watcher was closed.
	ErrWatcherClosed = errors.New("watcher closed")

	// ErrPathNotExist indicates the watched file's directory doesn't exist.
	ErrPathNotExist = errors.New("path does not exist")
)

// Op describes what happened to the file.
type Op uint8

// Operations, combined when several arrive within one quiet period.
const (
	OpWrite Op = 1 << iota
	OpCreate
	OpRemove
	OpRename
)

// Has reports whether op includes other.
func (op Op) Has(other Op) bool {
	return op&other != 0
}

// Event is a debounced change notification.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// FileWatcher watches one file.
type FileWatcher struct {
	path  string
	delay time.Duration

	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error

	mu       sync.Mutex
	pending  *Event
	timer    *time.Timer
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New watches path, coalescing changes that arrive within delay.
// The file itself may be absent; its directory must exist.
func New(path string, delay time.Duration) (*FileWatcher, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		path:    absPath,
		delay:   delay,
		watcher: fsw,
		events:  make(chan Event, 16),
		errors:  make(chan error, 16),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Events returns the debounced event channel. It is closed by Close.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Pending events are discarded.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = nil
	w.mu.Unlock()

	w.closedWg.Wait()

	err := w.watcher.Close()

	// fire may still be running; take the lock so it sees closed before
	// the channels go away.
	w.mu.Lock()
	close(w.events)
	close(w.errors)
	w.mu.Unlock()

	return err
}

func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				// Channel full, drop error
			}
		}
	}
}

func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if w.pending != nil {
		w.pending.Op |= op
		w.pending.Timestamp = time.Now()
		w.timer.Reset(w.delay)
		return
	}

	w.pending = &Event{Path: w.path, Op: op, Timestamp: time.Now()}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

// fire sends the pending event.
func (w *FileWatcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.pending == nil {
		return
	}
	event := *w.pending
	w.pending = nil

	select {
	case w.events <- event:
	default:
		// Channel full, drop event
	}
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
