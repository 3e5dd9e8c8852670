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
	"io"

	_scale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Decode decodes dataBytes into dest. The whole input must be consumed
func Decode(dataBytes []byte, dest any) error {
	r := bytes.NewReader(dataBytes)
	if err := decodeFrom(r, dest); err != nil {
		return NewDecodeError(dest, err)
	}
	if r.Len() > 0 {
		return NewDecodeError(
			dest,
			fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len()),
		)
	}
	return nil
}

// DecodeOrDefault decodes dataBytes into dest. Absent (zero-length) input leaves dest
// untouched at its zero value
func DecodeOrDefault(dataBytes []byte, dest any) error {
	if len(dataBytes) == 0 {
		return nil
	}
	return Decode(dataBytes, dest)
}

// DecodeStrict decodes dataBytes into dest. Absent input is reported as ErrNoData
func DecodeStrict(dataBytes []byte, dest any) error {
	if len(dataBytes) == 0 {
		return NewDecodeError(dest, ErrNoData)
	}
	return Decode(dataBytes, dest)
}

// decodeFrom runs the upstream decoder and converts any panic into an error.
// Destinations carry variable length data as Bytes or Vec, since the upstream
// decoder allocates plain slices at whatever length the prefix claims
func decodeFrom(r io.Reader, dest any) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("codec panic: %v", rec)
		}
	}()
	err = _scale.NewDecoder(r).Decode(dest)
	if errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: %w", ErrUnexpectedEnd, err)
	}
	return err
}
