// Package store persists the four content collections as JSON blobs.
//
// Local is the durable store every write lands in first. Remote is an
// optional MySQL/TiDB mirror. Mirror composes the two so callers never need
// to know whether a remote backend is configured.
package store

import (
	"context"
	"errors"
)

// Key names one logical collection.
type Key string

const (
	KeyMenu       Key = "mm_menu"
	KeyCategories Key = "mm_categories"
	KeySettings   Key = "mm_settings"
	KeyAdmins     Key = "mm_admins"
)

// Keys lists every collection in load order.
var Keys = []Key{KeyMenu, KeyCategories, KeySettings, KeyAdmins}

// ErrNotFound is returned by Read when nothing has been stored under a key.
var ErrNotFound = errors.New("store: key not found")

// Store reads and writes whole-collection snapshots. Write has upsert
// semantics: writing the same payload twice leaves the same stored state.
type Store interface {
	Read(ctx context.Context, key Key) ([]byte, error)
	Write(ctx context.Context, key Key, payload []byte) error
}
