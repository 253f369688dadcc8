package store

import (
	"context"
	"errors"
	"testing"
)

type memStore struct {
	data     map[Key][]byte
	readErr  error
	writeErr error
	writes   int
}

func newMem() *memStore { return &memStore{data: map[Key][]byte{}} }

func (m *memStore) Read(ctx context.Context, key Key) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *memStore) Write(ctx context.Context, key Key, payload []byte) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[key] = payload
	return nil
}

func TestMirrorPrefersRemote(t *testing.T) {
	local, remote := newMem(), newMem()
	local.data[KeyMenu] = []byte("local")
	remote.data[KeyMenu] = []byte("remote")

	m := NewMirror(local, remote)
	got, err := m.Read(context.Background(), KeyMenu)
	if err != nil || string(got) != "remote" {
		t.Fatalf("Read = %q, %v; want remote", got, err)
	}
}

func TestMirrorFallsBackToLocal(t *testing.T) {
	local, remote := newMem(), newMem()
	local.data[KeyMenu] = []byte("local")

	var reported []string
	m := NewMirror(local, remote)
	m.OnRemoteError = func(op string, key Key, err error) { reported = append(reported, op) }

	// remote has nothing: not an error worth reporting
	got, err := m.Read(context.Background(), KeyMenu)
	if err != nil || string(got) != "local" {
		t.Fatalf("Read = %q, %v; want local", got, err)
	}
	if len(reported) != 0 {
		t.Fatalf("ErrNotFound from remote should not be reported, got %v", reported)
	}

	remote.readErr = errors.New("network down")
	got, err = m.Read(context.Background(), KeyMenu)
	if err != nil || string(got) != "local" {
		t.Fatalf("Read with remote failure = %q, %v; want local", got, err)
	}
	if len(reported) != 1 || reported[0] != "read" {
		t.Fatalf("expected one reported read failure, got %v", reported)
	}
}

func TestMirrorWriteSwallowsRemoteFailure(t *testing.T) {
	local, remote := newMem(), newMem()
	remote.writeErr = errors.New("timeout")

	var reported int
	m := NewMirror(local, remote)
	m.OnRemoteError = func(op string, key Key, err error) { reported++ }

	if err := m.Write(context.Background(), KeySettings, []byte(`{}`)); err != nil {
		t.Fatalf("Write should not surface remote errors: %v", err)
	}
	if string(local.data[KeySettings]) != `{}` {
		t.Fatalf("local write missing")
	}
	if reported != 1 {
		t.Fatalf("expected remote failure reported once, got %d", reported)
	}
}

func TestMirrorLocalFailureSkipsRemote(t *testing.T) {
	local, remote := newMem(), newMem()
	local.writeErr = errors.New("disk full")

	m := NewMirror(local, remote)
	if err := m.Write(context.Background(), KeyMenu, []byte(`[]`)); err == nil {
		t.Fatalf("expected local error")
	}
	if remote.writes != 0 {
		t.Fatalf("remote must not be written when local fails")
	}
}

func TestMirrorWithoutRemote(t *testing.T) {
	local := newMem()
	m := NewMirror(local, nil)
	if m.Remote() {
		t.Fatalf("Remote() should be false")
	}
	if err := m.Write(context.Background(), KeyAdmins, []byte(`[]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := m.Read(context.Background(), KeyMenu); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
