// Package userstore persists identity records for an authentication
// framework in a single MongoDB collection, one user per document with
// roles, claims, logins, and tokens embedded.
//
// The store implements one small interface per storage capability (see
// interfaces.go) so callers can depend on just what they use. Mutators only
// touch the caller's in-memory record; Update persists by full document
// replacement.
package userstore

import (
	"context"
	"sync/atomic"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionName is the fixed collection every store binds to.
const CollectionName = "AspNetUsers"

type Store struct {
	c      *mongo.Collection
	client *mongo.Client // set only when Connect opened the connection
	log    *zap.Logger

	disposed atomic.Bool
}

// Option configures a Store at construction.
type Option func(*Store)

// WithLogger replaces the process-global zap logger used by the background
// index bootstrap.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

func withClient(c *mongo.Client) Option {
	return func(s *Store) { s.client = c }
}

// New binds a store to the user collection of an already-connected database.
// Index creation starts in the background; the store is usable immediately,
// even if that creation fails or is still running.
func New(db *mongo.Database, opts ...Option) *Store {
	s := &Store{c: db.Collection(CollectionName), log: zap.L()}
	for _, o := range opts {
		o(s)
	}
	go s.ensureIndexesDetached()
	return s
}

// Connect opens a client for uri, verifies it with a ping, and returns a
// store bound to dbName. Dispose never closes the client; callers that want
// to disconnect at shutdown can reach it through Client.
func Connect(ctx context.Context, uri, dbName string, opts ...Option) (*Store, error) {
	if err := wafflemongo.ValidateURI(uri); err != nil {
		return nil, err
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return New(client.Database(dbName), append(opts, withClient(client))...), nil
}

// Client returns the client Connect opened, or nil when the store was built
// on a caller-owned database handle.
func (s *Store) Client() *mongo.Client {
	return s.client
}

// Dispose marks the store unusable: every later call fails with
// ErrStoreDisposed. It is idempotent and leaves the shared connection open.
func (s *Store) Dispose() {
	s.disposed.Store(true)
}

// guard runs the checks every operation makes before doing anything else:
// disposal first, then cancellation.
func (s *Store) guard(ctx context.Context) error {
	if s.disposed.Load() {
		return ErrStoreDisposed
	}
	return ctx.Err()
}

func (s *Store) ensureIndexesDetached() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.EnsureIndexes(ctx); err != nil {
		// Non-fatal: the indexes usually exist already, and the store must
		// stay usable either way. EnsureIndexes can be re-run manually.
		s.log.Warn("user index bootstrap failed",
			zap.String("collection", s.c.Name()),
			zap.Error(err))
	}
}
