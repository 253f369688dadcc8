package store

import (
	"context"
	"errors"
	"log"
)

// Mirror reads from the remote store when it answers and falls back to the
// local one otherwise. Writes always land locally first; the remote copy is
// best-effort and its failures never reach the caller.
type Mirror struct {
	local  Store
	remote Store

	// OnRemoteError is called for every swallowed remote failure.
	OnRemoteError func(op string, key Key, err error)
}

// NewMirror composes local with an optional remote. A nil remote makes the
// mirror a plain pass-through to local.
func NewMirror(local, remote Store) *Mirror {
	return &Mirror{
		local:  local,
		remote: remote,
		OnRemoteError: func(op string, key Key, err error) {
			log.Printf("⚠️ remote %s %s failed: %v", op, key, err)
		},
	}
}

// Remote reports whether a remote backend is attached.
func (m *Mirror) Remote() bool { return m.remote != nil }

func (m *Mirror) Read(ctx context.Context, key Key) ([]byte, error) {
	if m.remote != nil {
		payload, err := m.remote.Read(ctx, key)
		if err == nil {
			return payload, nil
		}
		if !errors.Is(err, ErrNotFound) {
			m.reportRemote("read", key, err)
		}
	}
	return m.local.Read(ctx, key)
}

func (m *Mirror) Write(ctx context.Context, key Key, payload []byte) error {
	if err := m.local.Write(ctx, key, payload); err != nil {
		return err
	}
	if m.remote != nil {
		if err := m.remote.Write(ctx, key, payload); err != nil {
			m.reportRemote("write", key, err)
		}
	}
	return nil
}

func (m *Mirror) reportRemote(op string, key Key, err error) {
	if m.OnRemoteError != nil {
		m.OnRemoteError(op, key, err)
	}
}
