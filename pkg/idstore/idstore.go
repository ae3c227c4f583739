// Copyright (c) 2025, OpenArc Project.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package idstore

import (
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileName is the name of the identifier file within the store directory.
const FileName = "telemetry_id"

// idSize is the exact on-disk record size: one raw uint64, native byte
// order, no delimiter.
const idSize = 8

// Store reads and writes the anonymous installation identifier.
type Store struct {
	// Dir is the directory holding the identifier file, typically the
	// application's user configuration directory.
	Dir string

	// Generate produces a new identifier value. If nil, a random value
	// derived from a UUID is used.
	Generate func() uint64
}

// New creates a store rooted at the given directory.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the full path of the identifier file.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, FileName)
}

// GetID returns the persisted identifier, creating it on first use. If the
// file exists its 8 bytes are returned as-is; otherwise a new value is
// generated and persisted. Any I/O failure is logged and yields zero so
// that telemetry degrades instead of failing the caller.
func (s *Store) GetID() uint64 {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) < idSize {
			slog.Error("telemetry id file is truncated", "path", path, "size", len(data))
			return 0
		}
		return binary.NativeEndian.Uint64(data)
	}
	if !os.IsNotExist(err) {
		slog.Error("failed to open telemetry id file", "path", path, "error", err)
		return 0
	}

	id := s.generate()
	if err := s.write(id); err != nil {
		slog.Error("failed to create telemetry id file", "path", path, "error", err)
		return 0
	}
	return id
}

// RegenerateID generates a fresh identifier and overwrites the file. On
// write failure the previous on-disk value is left intact and zero is
// returned.
func (s *Store) RegenerateID() uint64 {
	id := s.generate()
	if err := s.write(id); err != nil {
		slog.Error("failed to overwrite telemetry id file", "path", s.Path(), "error", err)
		return 0
	}
	return id
}

func (s *Store) generate() uint64 {
	if s.Generate != nil {
		return s.Generate()
	}
	return randomID()
}

// randomID folds a random UUID into 64 bits.
func randomID() uint64 {
	u := uuid.New()
	hi := binary.NativeEndian.Uint64(u[:8])
	lo := binary.NativeEndian.Uint64(u[8:])
	return hi ^ lo
}

// write persists the identifier atomically: the record lands via rename so
// readers never observe a partial 8-byte value.
func (s *Store) write(id uint64) error {
	var buf [idSize]byte
	binary.NativeEndian.PutUint64(buf[:], id)

	tmp, err := os.CreateTemp(s.Dir, FileName+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf[:]); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
