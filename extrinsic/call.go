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

package extrinsic

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
)

var ErrArgCount = errors.New("wrong number of call arguments")

// Call is a runtime call addressed by pallet and function name. Args are encoded in
// order and must match the call's fields in the metadata
type Call struct {
	Module   string
	Function string
	Args     []any
}

func NewCall(module string, function string, args ...any) Call {
	return Call{
		Module:   module,
		Function: function,
		Args:     args,
	}
}

func (c Call) String() string {
	return c.Module + "." + c.Function
}

// DecodedCall is a call read back from its encoded form. Each argument is kept as its
// raw encoding
type DecodedCall struct {
	Module   string
	Function string
	Args     [][]byte
}

// EncodeCall encodes the call index followed by the arguments
func EncodeCall(meta *runtime.Metadata, call Call) ([]byte, error) {
	idx, variant, err := meta.Call(call.Module, call.Function)
	if err != nil {
		return nil, err
	}
	if len(call.Args) != len(variant.Fields) {
		return nil, fmt.Errorf(
			"%w: %s takes %d, got %d",
			ErrArgCount,
			call,
			len(variant.Fields),
			len(call.Args),
		)
	}
	ret := []byte{idx.Pallet, idx.Call}
	for i, arg := range call.Args {
		data, err := scale.Encode(arg)
		if err != nil {
			return nil, fmt.Errorf("%s argument %s: %w", call, variant.Fields[i].Name, err)
		}
		ret = append(ret, data...)
	}
	return ret, nil
}

// DecodeCall decodes an encoded call. The input must be consumed entirely
func DecodeCall(meta *runtime.Metadata, data []byte) (DecodedCall, error) {
	r := scale.NewReader(data)
	call, err := readCall(meta, r)
	if err != nil {
		return DecodedCall{}, err
	}
	if !r.EOF() {
		return DecodedCall{}, scale.NewDecodeError("call", scale.ErrTrailingData)
	}
	return call, nil
}

func readCall(meta *runtime.Metadata, r *scale.Reader) (DecodedCall, error) {
	var idx runtime.CallIndex
	var err error
	if idx.Pallet, err = r.ReadByte(); err != nil {
		return DecodedCall{}, scale.NewDecodeError("call", err)
	}
	if idx.Call, err = r.ReadByte(); err != nil {
		return DecodedCall{}, scale.NewDecodeError("call", err)
	}
	pallet, variant, err := meta.CallByIndex(idx)
	if err != nil {
		return DecodedCall{}, scale.NewDecodeError("call", err)
	}
	args, err := meta.SkipFields(r, variant.Fields)
	if err != nil {
		return DecodedCall{}, scale.NewDecodeError(
			"call",
			fmt.Errorf("%s.%s: %w", pallet.Name, variant.Name, err),
		)
	}
	return DecodedCall{
		Module:   pallet.Name,
		Function: variant.Name,
		Args:     args,
	}, nil
}
