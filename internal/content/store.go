package content

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/ziadkadry99/masterclass/internal/logging"
)

// Store fetches the content document once and serves the cached copy for
// the rest of its lifetime. Failed fetches are not cached. Concurrent first
// calls share a single in-flight fetch.
//
// The returned *Document is shared by every caller and must be treated as
// read-only.
type Store struct {
	fetcher     Fetcher
	checkSchema bool
	logger      *logging.Logger

	mu      sync.RWMutex
	doc     *Document
	group   singleflight.Group
	loading atomic.Int32
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSchemaCheck toggles JSON schema validation of fetched documents.
func WithSchemaCheck(enabled bool) StoreOption {
	return func(s *Store) { s.checkSchema = enabled }
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l *logging.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a Store backed by the given fetcher. Schema checking is on
// by default.
func NewStore(fetcher Fetcher, opts ...StoreOption) *Store {
	s := &Store{
		fetcher:     fetcher,
		checkSchema: true,
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns the cached document, fetching it on first use. Errors wrap
// ErrTransport or ErrMalformed; callers render nothing on error.
//
// The shared fetch runs detached from any one caller's cancellation. A caller
// whose ctx ends stops waiting without failing the others.
func (s *Store) Document(ctx context.Context) (*Document, error) {
	if doc := s.cached(); doc != nil {
		return doc, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan("document", func() (interface{}, error) {
		s.loading.Add(1)
		defer s.loading.Add(-1)

		// A caller that lost the race may arrive after the winner cached.
		if doc := s.cached(); doc != nil {
			return doc, nil
		}
		data, err := s.fetcher.Fetch(fetchCtx)
		if err != nil {
			s.logger.Error("content load failed", "error", err)
			return nil, err
		}
		doc, err := Parse(data, s.checkSchema)
		if err != nil {
			s.logger.Error("content parse failed", "error", err, "bytes", len(data))
			return nil, err
		}
		s.mu.Lock()
		s.doc = doc
		s.mu.Unlock()
		s.logger.Info("content loaded", "sections", len(doc.Sections))
		return doc, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for content: %v: %w", ctx.Err(), ErrTransport)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Document), nil
	}
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	return s.loading.Load() > 0
}

// Loaded reports whether a document has been cached.
func (s *Store) Loaded() bool {
	return s.cached() != nil
}

func (s *Store) cached() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}
