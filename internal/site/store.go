package site

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/render"
)

// Snapshot is one consistent view of the page inputs. It is never
// modified after it is published.
type Snapshot struct {
	Shell    []byte
	Content  *content.Content
	Revision string
	LoadedAt time.Time
}

// Store holds the current content document for serve mode. Readers never
// block; a reload publishes a new Snapshot by swapping a pointer.
type Store struct {
	loader    *content.Loader
	shellPath string
	logger    *zap.Logger

	current atomic.Pointer[Snapshot]

	mu          sync.Mutex
	subscribers map[int]chan string
	nextID      int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger used for load failures.
func WithStoreLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a Store reading content through loader and the page
// shell from shellPath (empty for the built-in page).
func NewStore(loader *content.Loader, shellPath string, opts ...StoreOption) *Store {
	s := &Store{
		loader:      loader,
		shellPath:   shellPath,
		logger:      zap.NewNop(),
		subscribers: make(map[int]chan string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the shell and the content document. On success a new
// revision is published and subscribers are notified. When the content
// fails to load the previous snapshot is kept; if there is none, the
// shell is published with no content so the page renders unfilled.
func (s *Store) Load(ctx context.Context) error {
	shell, err := ReadShell(s.shellPath)
	if err != nil {
		return err
	}

	c, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("error loading content", zap.String("source", s.loader.Source()), zap.Error(err))
		if s.current.Load() == nil {
			s.current.Store(&Snapshot{Shell: shell, LoadedAt: time.Now()})
		}
		return err
	}

	snap := &Snapshot{
		Shell:    shell,
		Content:  c,
		Revision: uuid.NewString(),
		LoadedAt: time.Now(),
	}
	s.current.Store(snap)
	s.logger.Info("content loaded",
		zap.String("source", s.loader.Source()),
		zap.String("revision", snap.Revision),
	)
	s.notify(snap.Revision)
	return nil
}

// Snapshot returns the current snapshot. Before the first Load it holds
// the built-in shell and no content.
func (s *Store) Snapshot() *Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}
	return &Snapshot{Shell: []byte(render.DefaultShell)}
}

// Current returns the current content document, or nil.
func (s *Store) Current() *content.Content { return s.Snapshot().Content }

// Revision returns the id of the last successful load, or "".
func (s *Store) Revision() string { return s.Snapshot().Revision }

// Subscribe returns a channel receiving each new revision. Only the most
// recent revision is buffered for a slow receiver. cancel closes the
// channel.
func (s *Store) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) notify(revision string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers {
		// Drop a stale pending revision in favour of the new one.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- revision:
		default:
		}
	}
}
