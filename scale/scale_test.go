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

package scale_test

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Version uint32
	Name    []byte
	Extra   scale.Option[uint64]
}

func TestDecodeStruct(t *testing.T) {
	data := test.DecodeHexString("01000000" + "0c616263" + "010a00000000000000")
	var dest testRecord
	require.NoError(t, scale.Decode(data, &dest))
	assert.Equal(t, uint32(1), dest.Version)
	assert.Equal(t, "abc", scale.ToString(dest.Name))
	require.True(t, dest.Extra.HasValue)
	assert.Equal(t, uint64(10), dest.Extra.Value)
	assert.Equal(t, uint64(10), *dest.Extra.Ptr())
}

func TestDecodeOrDefaultAbsent(t *testing.T) {
	dest := uint32(0)
	require.NoError(t, scale.DecodeOrDefault(nil, &dest))
	assert.Equal(t, uint32(0), dest)
	require.NoError(t, scale.DecodeOrDefault([]byte{}, &dest))
	assert.Equal(t, uint32(0), dest)
}

func TestDecodeStrictAbsent(t *testing.T) {
	var dest uint32
	err := scale.DecodeStrict(nil, &dest)
	require.Error(t, err)
	var decErr *scale.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "uint32", decErr.Type)
	assert.ErrorIs(t, err, scale.ErrNoData)
}

func TestDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name    string
		hex     string
		wantErr error
	}{
		{name: "trailing", hex: "01000000" + "00" + "00" + "ff", wantErr: scale.ErrTrailingData},
		{name: "truncated", hex: "2a00"},
		{name: "truncated vec", hex: "01000000" + "0c61"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var dest testRecord
			data, err := hex.DecodeString(testDef.hex)
			require.NoError(t, err)
			err = scale.Decode(data, &dest)
			require.Error(t, err)
			var decErr *scale.DecodeError
			assert.ErrorAs(t, err, &decErr)
			if testDef.wantErr != nil {
				assert.ErrorIs(t, err, testDef.wantErr)
			}
		})
	}
}

func TestNewDecodeErrorPassthrough(t *testing.T) {
	inner := &scale.DecodeError{Type: "Twin", Err: errors.New("boom")}
	err := scale.NewDecodeError(uint32(0), inner)
	assert.Same(t, inner, err)
	assert.Equal(t, "decode Twin: boom", err.Error())
}

func TestCompact(t *testing.T) {
	testDefs := []struct {
		value uint64
		hex   string
	}{
		{value: 0, hex: "00"},
		{value: 1, hex: "04"},
		{value: 63, hex: "fc"},
		{value: 64, hex: "0101"},
		{value: 16384, hex: "02000100"},
		{value: 1 << 32, hex: "070000000001"},
	}
	for _, testDef := range testDefs {
		encoded := scale.EncodeCompact(testDef.value)
		assert.Equal(t, testDef.hex, hex.EncodeToString(encoded))
		var decoded scale.Compact
		require.NoError(t, scale.Decode(encoded, &decoded))
		assert.Equal(t, testDef.value, uint64(decoded))
		r := scale.NewReader(encoded)
		v, err := r.ReadCompact()
		require.NoError(t, err)
		assert.Equal(t, testDef.value, v)
		assert.True(t, r.EOF())
	}
}

func TestU128(t *testing.T) {
	value, ok := new(big.Int).SetString("1000000000000000000000", 10)
	require.True(t, ok)
	encoded, err := scale.Encode(scale.NewU128(value))
	require.NoError(t, err)
	assert.Len(t, encoded, 16)
	var decoded scale.U128
	require.NoError(t, scale.Decode(encoded, &decoded))
	assert.Equal(t, 0, value.Cmp(decoded.BigInt()))
	// Little endian
	one, err := scale.Encode(scale.NewU128(big.NewInt(1)))
	require.NoError(t, err)
	assert.Equal(t, "01000000000000000000000000000000", hex.EncodeToString(one))
	assert.Equal(t, int64(0), scale.U128{}.BigInt().Int64())
}

func TestToStringLossy(t *testing.T) {
	assert.Equal(t, "f�o", scale.ToString([]byte{0x66, 0xff, 0x6f}))
	assert.Equal(t, "farm-1", scale.ToString([]byte("farm-1")))
	assert.Equal(t, "", scale.ToString(nil))
}

func TestReader(t *testing.T) {
	r := scale.NewReader(test.DecodeHexString("0708" + "0c010203" + "05000000"))
	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x07), b)
	require.NoError(t, r.Skip(1))
	assert.Equal(t, 2, r.Position())
	n, err := r.ReadCompactLen(1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	raw, err := r.ReadBytes(n)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, raw)
	var v uint32
	require.NoError(t, r.Decode(&v))
	assert.Equal(t, uint32(5), v)
	assert.Equal(t, 0, r.Remaining())
	_, err = r.ReadByte()
	assert.ErrorIs(t, err, scale.ErrUnexpectedEnd)
}

func TestReaderLengthPrefixBound(t *testing.T) {
	// Claims 100 elements with only 2 bytes following
	r := scale.NewReader(test.DecodeHexString("91010102"))
	_, err := r.ReadCompactLen(1)
	assert.ErrorIs(t, err, scale.ErrUnexpectedEnd)
}

func TestBytesAndVecEncoding(t *testing.T) {
	data, err := scale.Encode(scale.Bytes("abc"))
	require.NoError(t, err)
	assert.Equal(t, "0c616263", hex.EncodeToString(data))

	data, err = scale.Encode(scale.Vec[uint32]{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "080100000002000000", hex.EncodeToString(data))

	var items scale.Vec[uint32]
	require.NoError(t, scale.Decode(data, &items))
	assert.Equal(t, scale.Vec[uint32]{1, 2}, items)

	var nested scale.Vec[scale.Bytes]
	require.NoError(t, scale.Decode(test.DecodeHexString("08 0461 080a0b"), &nested))
	require.Len(t, nested, 2)
	assert.Equal(t, "a", scale.ToString(nested[0]))
	assert.Equal(t, []string{"a", "\n\v"}, scale.ToStrings(nested))
}

func TestOversizedLengthPrefix(t *testing.T) {
	// 0xffffffff items or bytes claimed, a handful present
	var raw scale.Bytes
	err := scale.Decode(test.DecodeHexString("03ffffffff abcd"), &raw)
	require.Error(t, err)
	var decErr *scale.DecodeError
	assert.ErrorAs(t, err, &decErr)

	var items scale.Vec[uint32]
	err = scale.Decode(test.DecodeHexString("03ffffffff 01000000"), &items)
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrUnexpectedEnd)

	var record struct {
		Version uint32
		Items   scale.Vec[scale.Bytes]
	}
	err = scale.Decode(test.DecodeHexString("01000000 13ffffffffffffffff"), &record)
	require.Error(t, err)
	assert.ErrorAs(t, err, &decErr)
}
