// Package recorder stores received PDUs in BadgerDB sessions and replays
// them with their original timing.
//
// Key layout:
//
//	session:<uuid>            SessionInfo (JSON)
//	pdu:<uuid>:<seq %016x>    receive time (int64 ns, big-endian) + raw PDU
//
// Fixed-width hex sequence numbers keep a session's PDUs in arrival order
// under badger's lexicographic iteration.
package recorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/metrics"
)

const (
	prefixSession = "session:"
	prefixPDU     = "pdu:"
)

var (
	// ErrSessionNotFound is returned for an unknown session id.
	ErrSessionNotFound = errors.New("recorder: session not found")

	// ErrSessionActive is returned when deleting a session still recording.
	ErrSessionActive = errors.New("recorder: session is still recording")

	// ErrSessionClosed is returned by Append after Close.
	ErrSessionClosed = errors.New("recorder: session closed")

	// ErrCorruptRecord is returned for a stored PDU value that is too short.
	ErrCorruptRecord = errors.New("recorder: corrupt record")
)

// Config configures the session store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	InMemory bool

	// ValueLogFileSize caps each value log file. Zero keeps badger's default.
	ValueLogFileSize int64

	SyncWrites bool

	// Metrics is optional.
	Metrics metrics.RecorderMetrics
}

// SessionInfo describes a recording.
type SessionInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at,omitzero"`
	PDUs      uint64    `json:"pdus"`
	Bytes     uint64    `json:"bytes"`

	// FirstAt and LastAt are the receive times of the first and last PDU.
	FirstAt time.Time `json:"first_at,omitzero"`
	LastAt  time.Time `json:"last_at,omitzero"`
}

// Active reports whether the session is still recording.
func (i SessionInfo) Active() bool { return i.EndedAt.IsZero() }

// Duration is the span between the first and last recorded PDU.
func (i SessionInfo) Duration() time.Duration {
	if i.FirstAt.IsZero() {
		return 0
	}
	return i.LastAt.Sub(i.FirstAt)
}

// Record is one stored PDU.
type Record struct {
	Seq uint64
	At  time.Time
	Raw []byte
}

// Store is a BadgerDB-backed session store. It is safe for concurrent use.
type Store struct {
	db      *badgerdb.DB
	metrics metrics.RecorderMetrics

	mu     sync.Mutex
	active map[string]*Session
}

// Open opens or creates the store.
func Open(cfg Config) (*Store, error) {
	path := cfg.Path
	if cfg.InMemory {
		path = ""
	}
	opts := badgerdb.DefaultOptions(path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(badgerLogger{})
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("recorder: path is required unless in memory")
	}
	if cfg.ValueLogFileSize > 0 {
		opts = opts.WithValueLogFileSize(cfg.ValueLogFileSize)
	}

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open recorder store: %w", err)
	}
	logger.Info("Recorder store opened", logger.Path(cfg.Path), "in_memory", cfg.InMemory)

	return &Store{db: db, metrics: cfg.Metrics, active: make(map[string]*Session)}, nil
}

// Close ends every active session and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.active))
	for _, sess := range s.active {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	var errs []error
	for _, sess := range sessions {
		errs = append(errs, sess.Close())
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}

// Healthcheck verifies the database can serve a read transaction.
func (s *Store) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.View(func(*badgerdb.Txn) error { return nil }); err != nil {
		return fmt.Errorf("recorder healthcheck failed: %w", err)
	}
	return nil
}

// StartSession begins a new recording.
func (s *Store) StartSession(name string) (*Session, error) {
	info := SessionInfo{
		ID:        uuid.NewString(),
		Name:      name,
		StartedAt: time.Now().UTC(),
	}
	if err := s.db.Update(func(txn *badgerdb.Txn) error { return putInfo(txn, info) }); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	sess := &Session{store: s, id: info.ID, info: info}
	s.mu.Lock()
	s.active[info.ID] = sess
	n := len(s.active)
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.SetActiveSessions(n)
	}

	logger.Info("Recording session started", logger.Session(info.ID), logger.Name(name))
	return sess, nil
}

// Sessions lists every session, oldest first.
func (s *Store) Sessions(ctx context.Context) ([]SessionInfo, error) {
	var out []SessionInfo
	err := s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = []byte(prefixSession)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var info SessionInfo
			if err := it.Item().Value(func(v []byte) error { return json.Unmarshal(v, &info) }); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, info)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b SessionInfo) int { return a.StartedAt.Compare(b.StartedAt) })
	return out, nil
}

// Session returns the metadata of one session.
func (s *Store) Session(ctx context.Context, id string) (SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return SessionInfo{}, err
	}
	var info SessionInfo
	err := s.db.View(func(txn *badgerdb.Txn) error {
		var err error
		info, err = getInfo(txn, id)
		return err
	})
	return info, err
}

// Iterate calls fn for every PDU of a session in arrival order. Raw is
// only valid during the call. Iteration stops at the first error fn
// returns, which Iterate returns.
func (s *Store) Iterate(ctx context.Context, id string, fn func(Record) error) error {
	if _, err := s.Session(ctx, id); err != nil {
		return err
	}
	return s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = pduPrefix(id)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			seq, err := parseSeq(item.Key(), opts.Prefix)
			if err != nil {
				return err
			}
			err = item.Value(func(v []byte) error {
				at, raw, err := decodeValue(v)
				if err != nil {
					return fmt.Errorf("%w: %s", err, item.Key())
				}
				return fn(Record{Seq: seq, At: at, Raw: raw})
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteSession removes a finished session and its PDUs.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	_, active := s.active[id]
	s.mu.Unlock()
	if active {
		return fmt.Errorf("%w: %s", ErrSessionActive, id)
	}
	if _, err := s.Session(ctx, id); err != nil {
		return err
	}
	if err := s.db.DropPrefix(pduPrefix(id)); err != nil {
		return fmt.Errorf("delete session PDUs: %w", err)
	}
	if err := s.db.Update(func(txn *badgerdb.Txn) error { return txn.Delete(sessionKey(id)) }); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	logger.Info("Recording session deleted", logger.Session(id))
	return nil
}

func (s *Store) finish(sess *Session) {
	s.mu.Lock()
	delete(s.active, sess.id)
	n := len(s.active)
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.SetActiveSessions(n)
	}
}

func putInfo(txn *badgerdb.Txn, info SessionInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return txn.Set(sessionKey(info.ID), b)
}

func getInfo(txn *badgerdb.Txn, id string) (SessionInfo, error) {
	var info SessionInfo
	item, err := txn.Get(sessionKey(id))
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return info, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return info, err
	}
	err = item.Value(func(v []byte) error { return json.Unmarshal(v, &info) })
	return info, err
}
