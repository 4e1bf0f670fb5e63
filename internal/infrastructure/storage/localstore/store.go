// Package localstore is the local snapshot backend: one JSON file per
// collection under a data directory. When configured it overlays every
// remote read with the local-wins merge policy and feeds the one-time
// migration.
package localstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// compressThreshold is the snapshot size above which files are stored
// zstd-compressed.
const compressThreshold = 10 * 1024 // 10KB

// zstdMagic prefixes every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Store persists collections as JSON snapshot files.
type Store struct {
	dir string

	mu      sync.RWMutex
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &Store{
		dir:     dir,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read unmarshals a collection snapshot into v. A missing snapshot is
// treated the same as an empty one: v is left untouched and no error is
// returned.
func (s *Store) Read(collection string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", collection, err)
	}

	if bytes.HasPrefix(raw, zstdMagic) {
		raw, err = s.decoder.DecodeAll(raw, nil)
		if err != nil {
			return fmt.Errorf("decompress %s: %w", collection, err)
		}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", collection, err)
	}
	return nil
}

// Write marshals v and replaces the collection snapshot atomically.
// Snapshots above the compression threshold are stored zstd-compressed.
func (s *Store) Write(collection string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}

	if len(raw) > compressThreshold {
		raw = s.encoder.EncodeAll(raw, nil)
	}

	path := s.path(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}

// flags is the snapshot holding boolean markers like the migration flag.
const flagsCollection = "flags"

// Flag reports whether a named flag is set.
func (s *Store) Flag(name string) (bool, error) {
	flags := map[string]bool{}
	if err := s.Read(flagsCollection, &flags); err != nil {
		return false, err
	}
	return flags[name], nil
}

// SetFlag sets a named flag.
func (s *Store) SetFlag(name string) error {
	flags := map[string]bool{}
	if err := s.Read(flagsCollection, &flags); err != nil {
		return err
	}
	flags[name] = true
	return s.Write(flagsCollection, flags)
}
