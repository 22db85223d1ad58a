package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
)

type sessionKey struct{}

// Session is a request-scoped storage handle. The underlying connection is
// taken from the pool on first use and returned by Close.
type Session struct {
	db *sqlx.DB

	mu     sync.Mutex
	conn   *sqlx.Conn
	closed bool
}

func NewSession(db *sqlx.DB) *Session {
	return &Session{db: db}
}

// Conn returns the session connection, acquiring it on first call.
func (s *Session) Conn(ctx context.Context) (*sqlx.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("database session already closed")
	}
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	s.conn = conn
	return conn, nil
}

// Acquired reports whether a connection has been taken from the pool.
func (s *Session) Acquired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// Close releases the connection. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session carried by ctx, if any.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
