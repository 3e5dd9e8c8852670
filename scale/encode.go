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
	"fmt"

	_scale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

func Encode(data any) (ret []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ret = nil
			err = fmt.Errorf("encode %T: codec panic: %v", data, rec)
		}
	}()
	buf := bytes.NewBuffer(nil)
	if err := _scale.NewEncoder(buf).Encode(data); err != nil {
		return nil, fmt.Errorf("encode %T: %w", data, err)
	}
	return buf.Bytes(), nil
}

// MustEncode encodes data and panics on failure. It is meant for fixed values whose
// encoding cannot fail, such as storage key components built from integers
func MustEncode(data any) []byte {
	ret, err := Encode(data)
	if err != nil {
		panic(err)
	}
	return ret
}

// EncodeCompact returns the compact encoding of v
func EncodeCompact(v uint64) []byte {
	return MustEncode(Compact(v))
}
