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

package ledger

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	AccountIDSize = 32
	HashSize      = 32

	// SS58Prefix is the generic Substrate address format used by TFChain
	SS58Prefix = 42

	ss58ChecksumSize = 2
)

var ss58ChecksumPrefix = []byte("SS58PRE")

var ErrInvalidAddress = errors.New("invalid account address")

type BlockNumber uint32

// AccountID is a 32 byte public key
type AccountID [AccountIDSize]byte

// NewAccountID returns an AccountID from a 32 byte public key
func NewAccountID(data []byte) (AccountID, error) {
	var ret AccountID
	if len(data) != AccountIDSize {
		return ret, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidAddress,
			AccountIDSize,
			len(data),
		)
	}
	copy(ret[:], data)
	return ret, nil
}

// ParseAccountID accepts an SS58 address or a 0x-prefixed hex public key
func ParseAccountID(address string) (AccountID, error) {
	if strings.HasPrefix(address, "0x") {
		data, err := hex.DecodeString(address[2:])
		if err != nil {
			return AccountID{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
		return NewAccountID(data)
	}
	data := base58.Decode(address)
	// One prefix byte, the key and the checksum
	if len(data) != 1+AccountIDSize+ss58ChecksumSize {
		return AccountID{}, fmt.Errorf(
			"%w: unexpected decoded length %d",
			ErrInvalidAddress,
			len(data),
		)
	}
	if data[0] >= 64 {
		return AccountID{}, fmt.Errorf(
			"%w: unsupported address prefix %d",
			ErrInvalidAddress,
			data[0],
		)
	}
	payload := data[:1+AccountIDSize]
	if !bytes.Equal(ss58Checksum(payload), data[1+AccountIDSize:]) {
		return AccountID{}, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	return NewAccountID(data[1 : 1+AccountIDSize])
}

// SS58 encodes the account with the given single byte network prefix
func (a AccountID) SS58(prefix uint8) string {
	payload := make([]byte, 0, 1+AccountIDSize+ss58ChecksumSize)
	payload = append(payload, prefix)
	payload = append(payload, a[:]...)
	payload = append(payload, ss58Checksum(payload)...)
	return base58.Encode(payload)
}

func (a AccountID) String() string {
	return a.SS58(SS58Prefix)
}

func (a AccountID) Bytes() []byte {
	return a[:]
}

func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AccountID) UnmarshalText(data []byte) error {
	tmp, err := ParseAccountID(string(data))
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}

func ss58Checksum(payload []byte) []byte {
	// The hash size is fixed, so New512 cannot fail
	h, _ := blake2b.New512(nil)
	h.Write(ss58ChecksumPrefix)
	h.Write(payload)
	return h.Sum(nil)[:ss58ChecksumSize]
}

// Hash is a 32 byte block or extrinsic hash
type Hash [HashSize]byte

// ParseHash accepts hex with or without a 0x prefix
func ParseHash(s string) (Hash, error) {
	var ret Hash
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return ret, fmt.Errorf("invalid hash: %w", err)
	}
	if len(data) != HashSize {
		return ret, fmt.Errorf(
			"invalid hash: expected %d bytes, got %d",
			HashSize,
			len(data),
		)
	}
	copy(ret[:], data)
	return ret, nil
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(data []byte) error {
	tmp, err := ParseHash(string(data))
	if err != nil {
		return err
	}
	*h = tmp
	return nil
}
