// Package storage persists single JSON values under fixed keys of a
// key-value backend, the way a browser app keeps state in local storage.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopverse/storefront/internal/core/ports"
)

// ErrDecode marks a stored value that is not valid JSON for the slot type.
// Callers recover from it locally; it never reaches a user.
var ErrDecode = errors.New("storage: malformed value")

// DecodeError carries the key and cause of an ErrDecode.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("storage: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// Slot is one JSON-encoded value of type T stored under Key.
type Slot[T any] struct {
	kv  ports.KeyValueStore
	key string
}

// NewSlot binds key of kv to values of type T.
func NewSlot[T any](kv ports.KeyValueStore, key string) *Slot[T] {
	return &Slot[T]{kv: kv, key: key}
}

// Key returns the storage key.
func (s *Slot[T]) Key() string { return s.key }

// Load reads the value. ok is false when the key is absent. A value that
// fails to decode returns a *DecodeError matching ErrDecode.
func (s *Slot[T]) Load(ctx context.Context) (v T, ok bool, err error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return v, false, fmt.Errorf("storage: get %q: %w", s.key, err)
	}
	if !ok {
		return v, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero T
		return zero, false, &DecodeError{Key: s.key, Err: err}
	}
	return v, true, nil
}

// Save encodes v and writes it.
func (s *Slot[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %q: %w", s.key, err)
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("storage: set %q: %w", s.key, err)
	}
	return nil
}

// Clear removes the value.
func (s *Slot[T]) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("storage: delete %q: %w", s.key, err)
	}
	return nil
}

// Namespaced prefixes every key with prefix before delegating to kv.
type Namespaced struct {
	kv     ports.KeyValueStore
	prefix string
}

// Namespace scopes kv under prefix.
func Namespace(kv ports.KeyValueStore, prefix string) *Namespaced {
	return &Namespaced{kv: kv, prefix: prefix}
}

func (n *Namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.kv.Get(ctx, n.prefix+key)
}

func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.kv.Set(ctx, n.prefix+key, value)
}

func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.kv.Delete(ctx, n.prefix+key)
}
