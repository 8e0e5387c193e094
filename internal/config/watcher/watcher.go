// Package watcher reports changes to a single binding file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temporary file and renaming it over the
// original keep producing events. Bursts of events are coalesced into one.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Errors returned by the watcher.
var (
	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher closed")

	// ErrPathNotExist indicates the directory holding the file doesn't exist.
	ErrPathNotExist = errors.New("path does not exist")
)

// Op is a bit set of file operations.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Has reports whether op contains other.
func (op Op) Has(other Op) bool { return op&other == other }

// String returns the operations joined with "|".
func (op Op) String() string {
	if op == 0 {
		return "none"
	}
	var s string
	for _, n := range []struct {
		op   Op
		name string
	}{{OpCreate, "create"}, {OpWrite, "write"}, {OpRemove, "remove"}, {OpRename, "rename"}} {
		if op.Has(n.op) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

// Event is one coalesced change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string
	// Op combines every operation seen during the debounce window.
	Op Op
	// Time is when the last operation was seen.
	Time time.Time
}

// Config configures a Watcher.
type Config struct {
	// Debounce is how long the file must be quiet before an event is sent.
	Debounce time.Duration
	// BufferSize is the capacity of the event and error channels.
	BufferSize int
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:   100 * time.Millisecond,
		BufferSize: 16,
	}
}

// Option configures a Watcher.
type Option func(*Config)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.Debounce = d
		}
	}
}

// WithBufferSize sets the channel capacity.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.BufferSize = n
		}
	}
}

// Watcher watches one file.
type Watcher struct {
	path    string
	config  Config
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *Event
	timer   *time.Timer
	closed  bool

	events chan Event
	errors chan error

	closeCh  chan struct{}
	closedWg sync.WaitGroup

	totalEvents int64
}

// New starts watching path. The file itself may not exist yet; its
// directory must.
func New(path string, opts ...Option) (*Watcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
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

	w := &Watcher{
		path:    absPath,
		config:  config,
		watcher: fsw,
		events:  make(chan Event, config.BufferSize),
		errors:  make(chan error, config.BufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string { return w.path }

// Events returns the channel of coalesced changes. It is closed by Close.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors returns the channel of watch errors. It is closed by Close.
func (w *Watcher) Errors() <-chan error { return w.errors }

// TotalEvents returns how many events have been delivered.
func (w *Watcher) TotalEvents() int64 { return atomic.LoadInt64(&w.totalEvents) }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
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

	err := w.watcher.Close()
	w.closedWg.Wait()

	// A timer callback may still be running; take the lock so it sees closed
	// before the channels go away.
	w.mu.Lock()
	close(w.events)
	close(w.errors)
	w.mu.Unlock()
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	// Only the directory is watched, so the base name identifies the file.
	if filepath.Base(ev.Name) != filepath.Base(w.path) {
		return
	}
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	now := time.Now()
	if w.pending != nil {
		w.pending.Op |= op
		w.pending.Time = now
	} else {
		w.pending = &Event{Path: w.path, Op: op, Time: now}
	}

	if w.config.Debounce == 0 {
		w.flushLocked()
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.config.Debounce, w.fire)
	} else {
		w.timer.Reset(w.config.Debounce)
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.flushLocked()
}

func (w *Watcher) flushLocked() {
	if w.pending == nil {
		return
	}
	ev := *w.pending
	w.pending = nil

	select {
	case w.events <- ev:
		atomic.AddInt64(&w.totalEvents, 1)
	default:
		// The consumer is behind and already has a reload queued.
	}
}

func (w *Watcher) sendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.errors <- err:
	default:
	}
}

// convertOp converts fsnotify.Op to Op. Chmod is ignored.
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
