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

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Hasher identifies how a map key is hashed into the storage key
type Hasher uint8

const (
	HasherIdentity Hasher = iota
	HasherTwox64Concat
	HasherBlake2_128Concat
	HasherBlake2_128
	HasherBlake2_256
	HasherTwox128
	HasherTwox256
)

func (h Hasher) String() string {
	switch h {
	case HasherIdentity:
		return "Identity"
	case HasherTwox64Concat:
		return "Twox64Concat"
	case HasherBlake2_128Concat:
		return "Blake2_128Concat"
	case HasherBlake2_128:
		return "Blake2_128"
	case HasherBlake2_256:
		return "Blake2_256"
	case HasherTwox128:
		return "Twox128"
	case HasherTwox256:
		return "Twox256"
	default:
		return fmt.Sprintf("Hasher(%d)", uint8(h))
	}
}

// Hash applies the hasher to the encoded key
func (h Hasher) Hash(data []byte) ([]byte, error) {
	switch h {
	case HasherIdentity:
		return Identity(data), nil
	case HasherTwox64Concat:
		return Twox64Concat(data), nil
	case HasherBlake2_128Concat:
		return Blake2_128Concat(data), nil
	case HasherBlake2_128:
		return blake2bSum(data, 16), nil
	case HasherBlake2_256:
		return blake2bSum(data, 32), nil
	case HasherTwox128:
		return Twox128(data), nil
	case HasherTwox256:
		return twox(data, 4), nil
	default:
		return nil, fmt.Errorf("unknown hasher: %d", uint8(h))
	}
}

// Twox128 returns the 128-bit xxhash of data, as used for module and item prefixes
func Twox128(data []byte) []byte {
	return twox(data, 2)
}

// Twox64Concat returns the 64-bit xxhash of data followed by data
func Twox64Concat(data []byte) []byte {
	ret := twox(data, 1)
	return append(ret, data...)
}

// Blake2_128Concat returns the 128-bit blake2b hash of data followed by data
func Blake2_128Concat(data []byte) []byte {
	ret := blake2bSum(data, 16)
	return append(ret, data...)
}

// Identity returns data unchanged
func Identity(data []byte) []byte {
	ret := make([]byte, len(data))
	copy(ret, data)
	return ret
}

// twox concatenates rounds of little endian xxhash64 digests with seeds 0..rounds-1
func twox(data []byte, rounds int) []byte {
	ret := make([]byte, 0, rounds*8)
	for seed := range rounds {
		h := xxhash.NewWithSeed(uint64(seed)) // #nosec G115
		_, _ = h.Write(data)
		ret = binary.LittleEndian.AppendUint64(ret, h.Sum64())
	}
	return ret
}

func blake2bSum(data []byte, size int) []byte {
	h, err := blake2b.New(size, nil)
	if err != nil {
		// Only possible with an invalid size, which is fixed above
		panic(err)
	}
	_, _ = h.Write(data)
	return h.Sum(nil)
}
