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

// Package scale provides SCALE encoding/decoding utilities for TFChain data structures.
//
// This package wraps github.com/centrifuge/go-substrate-rpc-client/v4/scale. Struct
// fields are encoded in declaration order, integers are little endian, and slices
// and strings carry a compact length prefix.
//
// # Entry points
//
//   - Decode: strict decode, the input must be consumed entirely
//   - DecodeOrDefault: absent (zero-length) input leaves the destination at its zero value
//   - DecodeStrict: absent input is an error
//   - Encode: encode any supported value
//   - Reader: sequential decoding with position tracking (event logs, call args)
//
// Every failure is returned as a *DecodeError. Panics raised by the underlying codec
// on hostile input are recovered and reported the same way.
//
// # Wire helper types
//
//   - Option[T]: Option<T> with a 0x00/0x01 presence marker
//   - Compact: compact-encoded unsigned integer
//   - U128: 16-byte little endian balance amounts
//
// Text stored as raw bytes on chain is converted with ToString, which replaces
// invalid UTF-8 instead of rejecting it.
package scale
