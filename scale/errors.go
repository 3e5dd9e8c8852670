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
	"strings"
)

// ErrNoData indicates that a mandatory value was absent
var ErrNoData = errors.New("no data to decode")

// ErrTrailingData indicates that input remained after the value was decoded
var ErrTrailingData = errors.New("trailing data after decoded value")

// ErrUnexpectedEnd indicates that the input ended in the middle of a value
var ErrUnexpectedEnd = errors.New("unexpected end of data")

// DecodeError wraps any failure to decode remote bytes into a Go value
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("decode: %s", e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError returns a DecodeError for the type of dest. An error that is already
// a DecodeError is returned as is
func NewDecodeError(dest any, err error) error {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return err
	}
	return &DecodeError{
		Type: typeName(dest),
		Err:  err,
	}
}

func typeName(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return strings.TrimLeft(fmt.Sprintf("%T", v), "*")
}
