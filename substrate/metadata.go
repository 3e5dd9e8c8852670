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

package substrate

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var ErrUnsupportedMetadata = errors.New("unsupported metadata version")

// ConvertMetadata converts V14 runtime metadata into the registry used for call
// encoding and event framing
func ConvertMetadata(meta *types.Metadata) (*runtime.Metadata, error) {
	if meta.Version != 14 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMetadata, meta.Version)
	}
	v14 := meta.AsMetadataV14
	ret := &runtime.Metadata{
		Types: make(map[runtime.TypeID]runtime.Type, len(v14.Lookup.Types)),
	}
	for _, portable := range v14.Lookup.Types {
		t, err := convertType(typeID(portable.ID), portable.Type)
		if err != nil {
			return nil, err
		}
		ret.Types[t.ID] = t
	}
	for _, pallet := range v14.Pallets {
		p := runtime.Pallet{
			Name:  string(pallet.Name),
			Index: uint8(pallet.Index),
		}
		if pallet.HasCalls {
			variants, err := palletVariants(ret, typeID(pallet.Calls.Type))
			if err != nil {
				return nil, fmt.Errorf("pallet %s calls: %w", p.Name, err)
			}
			p.Calls = variants
		}
		if pallet.HasEvents {
			variants, err := palletVariants(ret, typeID(pallet.Events.Type))
			if err != nil {
				return nil, fmt.Errorf("pallet %s events: %w", p.Name, err)
			}
			p.Events = variants
		}
		ret.Pallets = append(ret.Pallets, p)
	}
	return ret, nil
}

func palletVariants(meta *runtime.Metadata, id runtime.TypeID) ([]runtime.Variant, error) {
	t, err := meta.Type(id)
	if err != nil {
		return nil, err
	}
	if t.Kind != runtime.KindVariant {
		return nil, fmt.Errorf("type %d is not an enum", id)
	}
	return t.Variants, nil
}

func typeID(id types.Si1LookupTypeID) runtime.TypeID {
	v := big.Int(id.UCompact)
	return runtime.TypeID(v.Uint64()) // #nosec G115
}

func convertType(id runtime.TypeID, t types.Si1Type) (runtime.Type, error) {
	ret := runtime.Type{ID: id}
	for _, segment := range t.Path {
		ret.Path = append(ret.Path, string(segment))
	}
	def := t.Def
	switch {
	case def.IsComposite:
		ret.Kind = runtime.KindComposite
		ret.Fields = convertFields(def.Composite.Fields)
	case def.IsVariant:
		ret.Kind = runtime.KindVariant
		for _, v := range def.Variant.Variants {
			ret.Variants = append(ret.Variants, runtime.Variant{
				Name:   string(v.Name),
				Index:  uint8(v.Index),
				Fields: convertFields(v.Fields),
			})
		}
	case def.IsSequence:
		ret.Kind = runtime.KindSequence
		ret.Elem = typeID(def.Sequence.Type)
	case def.IsArray:
		ret.Kind = runtime.KindArray
		ret.Elem = typeID(def.Array.Type)
		ret.Len = uint32(def.Array.Len)
	case def.IsTuple:
		ret.Kind = runtime.KindTuple
		for _, elem := range def.Tuple {
			ret.Tuple = append(ret.Tuple, typeID(elem))
		}
	case def.IsPrimitive:
		ret.Kind = runtime.KindPrimitive
		ret.Primitive = runtime.PrimitiveKind(def.Primitive.Si0TypeDefPrimitive)
	case def.IsCompact:
		ret.Kind = runtime.KindCompact
		ret.Elem = typeID(def.Compact.Type)
	case def.IsBitSequence:
		ret.Kind = runtime.KindBitSequence
		ret.Elem = typeID(def.BitSequence.BitStoreType)
	default:
		return ret, fmt.Errorf("type %d has an unsupported definition", id)
	}
	return ret, nil
}

func convertFields(fields []types.Si1Field) []runtime.Field {
	if len(fields) == 0 {
		return nil
	}
	ret := make([]runtime.Field, 0, len(fields))
	for _, f := range fields {
		field := runtime.Field{Type: typeID(f.Type)}
		if f.HasName {
			field.Name = string(f.Name)
		}
		if f.HasTypeName {
			field.TypeName = string(f.TypeName)
		}
		ret = append(ret, field)
	}
	return ret
}
