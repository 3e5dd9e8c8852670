// Copyright 2026 Blink Labs Software
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

package storage_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alicePubKey = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func TestPrefixKnownValues(t *testing.T) {
	testDefs := []struct {
		module string
		item   string
		hex    string
	}{
		{"System", "Account", "26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9"},
		{"System", "Events", "26aa394eea5630e07c48ae0c9558cef780d41e5e16056765bc8461851072c9d7"},
		{"System", "Number", "26aa394eea5630e07c48ae0c9558cef702a5c1b19ab7a04f536c519aca4983ac"},
	}
	for _, testDef := range testDefs {
		key := storage.Prefix(testDef.module, testDef.item)
		assert.Equal(t, testDef.hex, hex.EncodeToString(key))
	}
	// Plain values resolve to the prefix alone
	key, err := storage.Resolve("System", "Number")
	require.NoError(t, err)
	assert.Equal(t, storage.Prefix("System", "Number"), key)
}

func TestResolveSystemAccount(t *testing.T) {
	var account [32]byte
	copy(account[:], test.DecodeHexString(alicePubKey))
	key, err := storage.Resolve("System", "Account", account)
	require.NoError(t, err)
	assert.Equal(
		t,
		"0x26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9"+
			"de1e86a9a8c739864cf3cc5ec2bea59f"+alicePubKey,
		key.Hex(),
	)
	// Pre-encoded keys hash the same way
	rawKey, err := storage.Resolve("System", "Account", storage.Raw(account[:]))
	require.NoError(t, err)
	assert.Equal(t, key, rawKey)
}

func TestResolveMapKeyEncoding(t *testing.T) {
	key, err := storage.Resolve("TfgridModule", "Twins", uint32(1))
	require.NoError(t, err)
	require.Len(t, key, 32+16+4)
	// Blake2_128Concat keeps the encoded key at the end
	assert.Equal(t, []byte{1, 0, 0, 0}, []byte(key[48:]))

	nameKey, err := storage.Resolve("TfgridModule", "FarmIdByName", []byte("farm"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 'f', 'a', 'r', 'm'}, []byte(nameKey[48:]))
}

func TestResolveErrors(t *testing.T) {
	_, err := storage.Resolve("TfgridModule", "Unknown", uint32(1))
	assert.ErrorIs(t, err, storage.ErrUnknownItem)
	_, err = storage.Resolve("TfgridModule", "Twins")
	assert.ErrorIs(t, err, storage.ErrKeyCount)
	_, err = storage.Resolve("System", "Events", uint32(1))
	assert.ErrorIs(t, err, storage.ErrKeyCount)
}

func TestHashers(t *testing.T) {
	data := []byte{1, 2, 3}
	assert.Len(t, storage.Twox128(data), 16)
	assert.Equal(t, data, storage.Twox64Concat(data)[8:])
	assert.Equal(t, data, storage.Identity(data))
	for _, h := range []storage.Hasher{
		storage.HasherIdentity,
		storage.HasherTwox64Concat,
		storage.HasherBlake2_128Concat,
		storage.HasherBlake2_128,
		storage.HasherBlake2_256,
		storage.HasherTwox128,
		storage.HasherTwox256,
	} {
		_, err := h.Hash(data)
		assert.NoError(t, err, h.String())
	}
	_, err := storage.Hasher(99).Hash(data)
	assert.Error(t, err)
}
