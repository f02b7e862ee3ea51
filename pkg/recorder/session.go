package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/transport"
)

// Session is an open recording. Append is safe for concurrent use.
type Session struct {
	store *Store
	id    string

	mu     sync.Mutex
	info   SessionInfo
	closed bool
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Info returns a snapshot of the session metadata.
func (s *Session) Info() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Append stores raw as the next PDU of the session, received at at.
func (s *Session) Append(at time.Time, raw []byte) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	next := s.info
	seq := next.PDUs
	next.PDUs++
	next.Bytes += uint64(len(raw))
	if next.FirstAt.IsZero() {
		next.FirstAt = at.UTC()
	}
	next.LastAt = at.UTC()

	err := s.store.db.Update(func(txn *badgerdb.Txn) error {
		if err := txn.Set(pduKey(next.ID, seq), encodeValue(at, raw)); err != nil {
			return err
		}
		return putInfo(txn, next)
	})
	if err != nil {
		return fmt.Errorf("append to session %s: %w", next.ID, err)
	}
	s.info = next

	if m := s.store.metrics; m != nil {
		m.RecordAppend(len(raw), time.Since(start))
	}
	return nil
}

// HandlePDU records every received PDU, so a session can be passed to a
// transport receiver directly.
func (s *Session) HandlePDU(ctx context.Context, d transport.Datagram) {
	if err := s.Append(d.Received, d.Raw); err != nil {
		logger.WarnCtx(ctx, "Failed to record PDU", logger.Session(s.id), logger.Err(err))
	}
}

// Close ends the recording. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.info.EndedAt = time.Now().UTC()
	info := s.info
	s.mu.Unlock()

	s.store.finish(s)
	if err := s.store.db.Update(func(txn *badgerdb.Txn) error { return putInfo(txn, info) }); err != nil {
		return fmt.Errorf("close session %s: %w", info.ID, err)
	}
	logger.Info("Recording session closed",
		logger.Session(info.ID), logger.Count(int(info.PDUs)), logger.Bytes(int(info.Bytes)))
	return nil
}
