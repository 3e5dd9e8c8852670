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
	"bytes"
	"errors"
	"fmt"
)

// Reader provides sequential SCALE decoding with position tracking.
// It is used where values are concatenated without an outer framing, such as the
// event log and extrinsic call arguments.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte offset
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// EOF returns true once all input has been consumed
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Data returns the underlying byte slice
func (r *Reader) Data() []byte {
	return r.data
}

// Slice returns the bytes between two offsets previously reported by Position
func (r *Reader) Slice(start, end int) []byte {
	if start < 0 || end < start || end > len(r.data) {
		return nil
	}
	return r.data[start:end]
}

func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEnd
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes returns the next n bytes
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("cannot read a negative number of bytes")
	}
	if n > r.Remaining() {
		return nil, fmt.Errorf(
			"%w: need %d bytes, have %d",
			ErrUnexpectedEnd,
			n,
			r.Remaining(),
		)
	}
	ret := r.data[r.pos : r.pos+n]
	r.pos += n
	return ret, nil
}

// Skip advances the position by n bytes without decoding
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// ReadCompact decodes a compact-encoded unsigned integer
func (r *Reader) ReadCompact() (uint64, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch first & 0x03 {
	case 0x00:
		return uint64(first >> 2), nil
	case 0x01:
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		return (uint64(first) | uint64(b)<<8) >> 2, nil
	case 0x02:
		buf, err := r.ReadBytes(3)
		if err != nil {
			return 0, err
		}
		v := uint64(first) | uint64(buf[0])<<8 | uint64(buf[1])<<16 | uint64(buf[2])<<24
		return v >> 2, nil
	default:
		size := int(first>>2) + 4
		if size > 8 {
			return 0, fmt.Errorf("compact value of %d bytes overflows uint64", size)
		}
		buf, err := r.ReadBytes(size)
		if err != nil {
			return 0, err
		}
		var v uint64
		for i := size - 1; i >= 0; i-- {
			v = v<<8 | uint64(buf[i])
		}
		return v, nil
	}
}

// ReadCompactLen decodes a compact length prefix and checks it against the
// remaining input, given the minimum encoded size of each element
func (r *Reader) ReadCompactLen(minItemSize int) (int, error) {
	n, err := r.ReadCompact()
	if err != nil {
		return 0, err
	}
	if minItemSize < 1 {
		minItemSize = 1
	}
	if n > uint64(r.Remaining()/minItemSize) {
		return 0, fmt.Errorf(
			"%w: length prefix %d exceeds remaining input",
			ErrUnexpectedEnd,
			n,
		)
	}
	return int(n), nil // #nosec G115
}

// Decode decodes the next value into dest, advancing past the bytes it consumed
func (r *Reader) Decode(dest any) error {
	br := bytes.NewReader(r.data[r.pos:])
	if err := decodeFrom(br, dest); err != nil {
		return NewDecodeError(dest, err)
	}
	r.pos = len(r.data) - br.Len()
	return nil
}
