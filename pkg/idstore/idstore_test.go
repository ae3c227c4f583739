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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIDCreatesOnFirstUse(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	id := s.GetID()

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err, "first GetID should create the file")
	assert.Len(t, data, 8)

	// A second read returns the same value without rewriting the file.
	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, id, s.GetID())
	after, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), after.ModTime())
}

func TestGetIDRoundTripAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first := New(dir).GetID()
	second := New(dir).GetID()

	assert.Equal(t, first, second)
}

func TestRegenerateIDOverwrites(t *testing.T) {
	dir := t.TempDir()

	values := []uint64{111, 222}
	next := 0
	s := New(dir)
	s.Generate = func() uint64 {
		v := values[next]
		next++
		return v
	}

	assert.Equal(t, uint64(111), s.GetID())
	assert.Equal(t, uint64(222), s.RegenerateID())

	// The new value is what a fresh store reads back.
	assert.Equal(t, uint64(222), New(dir).GetID())
}

func TestGetIDReadsExistingEightBytes(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	s.Generate = func() uint64 { return 0xdeadbeefcafef00d }

	assert.Equal(t, uint64(0xdeadbeefcafef00d), s.GetID())

	// Even with a different generator, the persisted value wins.
	other := New(dir)
	other.Generate = func() uint64 { return 1 }
	assert.Equal(t, uint64(0xdeadbeefcafef00d), other.GetID())
}

func TestGetIDTruncatedFileYieldsZero(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte{1, 2, 3}, 0o600))

	assert.Zero(t, New(dir).GetID())
}

func TestGetIDUnwritableDirYieldsZero(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does", "not", "exist"))
	assert.Zero(t, s.GetID())
}

func TestRegenerateIDFailureLeavesFileIntact(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	s.Generate = func() uint64 { return 42 }
	require.Equal(t, uint64(42), s.GetID())

	broken := New(filepath.Join(dir, "missing"))
	broken.Generate = func() uint64 { return 43 }
	assert.Zero(t, broken.RegenerateID())

	assert.Equal(t, uint64(42), New(dir).GetID())
}

func TestRandomIDIsNotConstant(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 16; i++ {
		seen[randomID()] = true
	}
	assert.Greater(t, len(seen), 1, "random ids should vary")
}
