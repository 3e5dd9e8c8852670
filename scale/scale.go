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

package scale

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	_scale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Create aliases for the underlying codec types so that wire types can implement
// custom Decode/Encode methods without importing the upstream package
type (
	Decoder = _scale.Decoder
	Encoder = _scale.Encoder
)

// Option represents Option<T>: a presence byte followed by the value when present
type Option[T any] struct {
	HasValue bool
	Value    T
}

// Some returns an Option holding v
func Some[T any](v T) Option[T] {
	return Option[T]{HasValue: true, Value: v}
}

// None returns an empty Option
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o *Option[T]) Decode(decoder Decoder) error {
	// A missing presence byte is an error, not an empty option
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch b {
	case 0x00:
		var zero T
		o.HasValue = false
		o.Value = zero
		return nil
	case 0x01:
		o.HasValue = true
		return decoder.Decode(&o.Value)
	default:
		return fmt.Errorf("invalid option presence byte: %d", b)
	}
}

func (o Option[T]) Encode(encoder Encoder) error {
	return encoder.EncodeOption(o.HasValue, o.Value)
}

// Ptr returns a pointer to a copy of the value, or nil when the option is empty
func (o Option[T]) Ptr() *T {
	if !o.HasValue {
		return nil
	}
	v := o.Value
	return &v
}

// Compact is an unsigned integer using the SCALE compact encoding
type Compact uint64

func (c *Compact) Decode(decoder Decoder) error {
	v, err := decoder.DecodeUintCompact()
	if err != nil {
		return err
	}
	if !v.IsUint64() {
		return errors.New("compact value overflows uint64")
	}
	*c = Compact(v.Uint64())
	return nil
}

func (c Compact) Encode(encoder Encoder) error {
	return encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(c)))
}

// readChunk bounds how much memory a length prefix can claim before the matching
// input has actually been read
const readChunk = 4096

func decodeLen(decoder Decoder) (uint64, error) {
	v, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, errors.New("length prefix overflows uint64")
	}
	return v.Uint64(), nil
}

// Bytes represents Vec<u8>. Decoding grows the buffer only as input is consumed, so
// a length prefix larger than the input fails instead of allocating it up front
type Bytes []byte

func (b *Bytes) Decode(decoder Decoder) error {
	n, err := decodeLen(decoder)
	if err != nil {
		return err
	}
	ret := make([]byte, 0, min(n, readChunk))
	for uint64(len(ret)) < n {
		start := len(ret)
		step := int(min(n-uint64(start), readChunk))
		ret = append(ret, make([]byte, step)...)
		if err := decoder.Read(ret[start:]); err != nil {
			return fmt.Errorf("vec of %d bytes: %w", n, err)
		}
	}
	*b = ret
	return nil
}

func (b Bytes) Encode(encoder Encoder) error {
	if err := encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(len(b)))); err != nil {
		return err
	}
	return encoder.Write(b)
}

// Vec represents Vec<T>. Items are decoded one at a time, so the prefix never sizes
// an allocation on its own
type Vec[T any] []T

func (v *Vec[T]) Decode(decoder Decoder) error {
	n, err := decodeLen(decoder)
	if err != nil {
		return err
	}
	ret := make([]T, 0, min(n, readChunk/64))
	for i := uint64(0); i < n; i++ {
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("vec item %d of %d: %w", i, n, err)
		}
		ret = append(ret, item)
	}
	*v = ret
	return nil
}

func (v Vec[T]) Encode(encoder Encoder) error {
	if err := encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(len(v)))); err != nil {
		return err
	}
	for _, item := range v {
		if err := encoder.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

const u128Size = 16

// U128 is a 128-bit unsigned integer stored as 16 little endian bytes
type U128 struct {
	value *big.Int
}

// NewU128 returns a U128 holding a copy of v
func NewU128(v *big.Int) U128 {
	if v == nil {
		return U128{}
	}
	return U128{value: new(big.Int).Set(v)}
}

// BigInt returns a copy of the value. A zero U128 returns 0 rather than nil
func (u U128) BigInt() *big.Int {
	if u.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.value)
}

func (u *U128) Decode(decoder Decoder) error {
	buf := make([]byte, u128Size)
	if err := decoder.Read(buf); err != nil {
		return err
	}
	// Convert from little endian to the big endian order big.Int expects
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	u.value = new(big.Int).SetBytes(buf)
	return nil
}

func (u U128) Encode(encoder Encoder) error {
	buf := make([]byte, u128Size)
	if u.value != nil {
		if u.value.Sign() < 0 || u.value.BitLen() > u128Size*8 {
			return errors.New("value does not fit in u128")
		}
		u.value.FillBytes(buf)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return encoder.Write(buf)
}

// ToString converts raw on-chain text to a Go string. Invalid UTF-8 sequences are
// replaced with U+FFFD and never cause a failure
func ToString(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

// ToStrings applies ToString to each element
func ToStrings[S ~[]byte](data []S) []string {
	if len(data) == 0 {
		return nil
	}
	ret := make([]string, 0, len(data))
	for _, item := range data {
		ret = append(ret, ToString(item))
	}
	return ret
}
