package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
)

// CodeIssuer owns the expected one-time codes. Issue replaces any previous
// code for the destination, so only the latest one verifies.
type CodeIssuer interface {
	Issue(ctx context.Context, destination string) error
	Verify(ctx context.Context, destination, candidate string) (bool, error)
	Revoke(ctx context.Context, destination string) error
}

// LocalIssuer keeps codes in memory.
type LocalIssuer struct {
	mu       sync.Mutex
	codes    map[string]string
	gen      Generator
	notifier Notifier
}

func NewLocalIssuer(gen Generator, notifier Notifier) *LocalIssuer {
	return &LocalIssuer{
		codes:    make(map[string]string),
		gen:      gen,
		notifier: notifier,
	}
}

func (l *LocalIssuer) Issue(ctx context.Context, destination string) error {
	code, err := l.gen.Generate()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	l.mu.Lock()
	l.codes[destination] = code
	l.mu.Unlock()

	l.notifier.Notify(ctx, destination, code)
	return nil
}

func (l *LocalIssuer) Verify(ctx context.Context, destination, candidate string) (bool, error) {
	l.mu.Lock()
	expected, ok := l.codes[destination]
	l.mu.Unlock()

	if !ok {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1, nil
}

func (l *LocalIssuer) Revoke(ctx context.Context, destination string) error {
	l.mu.Lock()
	delete(l.codes, destination)
	l.mu.Unlock()
	return nil
}
