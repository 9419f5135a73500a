// Package state provides durable local state for the SkillShare client.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/skillshare/skillshare-go/internal/telemetry/logger"
)

// Common errors
var (
	ErrKeyNotFound = errors.New("state: key not found")
	ErrClosed      = errors.New("state: store closed")
)

// Config holds store configuration.
type Config struct {
	// Dir is the directory holding the Badger database.
	Dir string
	// GCInterval is how often value-log garbage collection runs.
	// Zero disables the GC loop.
	GCInterval time.Duration
	// SyncWrites forces an fsync on every write.
	SyncWrites bool
}

// DefaultConfig returns a configuration rooted under the user home
// directory.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Dir:        filepath.Join(home, ".skillshare", "state"),
		GCInterval: 10 * time.Minute,
		SyncWrites: true,
	}
}

// Store is a Badger-backed local KV store.
type Store struct {
	db     *badger.DB
	logger logger.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// Open opens (creating if needed) the store at cfg.Dir.
func Open(cfg Config, log logger.Logger) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("state: dir is required")
	}
	if log == nil {
		log = logger.Default()
	}

	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("state: create dir: %w", err)
	}

	opts := badger.DefaultOptions(cfg.Dir)
	opts.Logger = &badgerLogger{logger: log}
	opts.SyncWrites = cfg.SyncWrites
	// Client-side store: keep the footprint small.
	opts.NumMemtables = 2
	opts.NumLevelZeroTables = 2
	opts.NumLevelZeroTablesStall = 4
	opts.ValueLogFileSize = 16 << 20

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("state: open db: %w", err)
	}

	s := &Store{
		db:     db,
		logger: log,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	go s.gcLoop(cfg.GCInterval)

	log.Debug("state store opened", "dir", cfg.Dir)
	return s, nil
}

// Get retrieves a value by key.
func (s *Store) Get(key []byte) ([]byte, error) {
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a key-value pair.
func (s *Store) Set(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// SetWithTTL stores a key-value pair that expires after ttl. Badger
// tracks expiry in whole seconds, so TTLs under a second expire on the
// next read.
func (s *Store) SetWithTTL(key, value []byte, ttl time.Duration) error {
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, value).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// Delete removes a key.
func (s *Store) Delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// DeletePrefix removes all keys with the given prefix.
func (s *Store) DeletePrefix(prefix []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close gracefully shuts down the store.
func (s *Store) Close() error {
	close(s.stopCh)
	<-s.doneCh

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("state: close db: %w", err)
	}
	s.logger.Debug("state store closed")
	return nil
}

// gcLoop runs periodic value-log garbage collection.
func (s *Store) gcLoop(interval time.Duration) {
	defer close(s.doneCh)

	if interval <= 0 {
		<-s.stopCh
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for {
				err := s.db.RunValueLogGC(0.5)
				if err != nil {
					if !errors.Is(err, badger.ErrNoRewrite) {
						s.logger.Warn("state gc failed", "error", err)
					}
					break
				}
			}
		case <-s.stopCh:
			return
		}
	}
}

// badgerLogger adapts the application logger to Badger's Logger interface.
type badgerLogger struct {
	logger logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
