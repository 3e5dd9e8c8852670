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

package runtime

type TypeKind uint8

const (
	KindComposite TypeKind = iota
	KindVariant
	KindSequence
	KindArray
	KindTuple
	KindPrimitive
	KindCompact
	KindBitSequence
)

// PrimitiveKind follows the order of the primitive definitions in the metadata
// type registry
type PrimitiveKind uint8

const (
	PrimitiveBool PrimitiveKind = iota
	PrimitiveChar
	PrimitiveStr
	PrimitiveU8
	PrimitiveU16
	PrimitiveU32
	PrimitiveU64
	PrimitiveU128
	PrimitiveU256
	PrimitiveI8
	PrimitiveI16
	PrimitiveI32
	PrimitiveI64
	PrimitiveI128
	PrimitiveI256
)

// Size returns the encoded size of a fixed width primitive, or 0 for str
func (p PrimitiveKind) Size() int {
	switch p {
	case PrimitiveBool, PrimitiveU8, PrimitiveI8:
		return 1
	case PrimitiveU16, PrimitiveI16:
		return 2
	case PrimitiveChar, PrimitiveU32, PrimitiveI32:
		return 4
	case PrimitiveU64, PrimitiveI64:
		return 8
	case PrimitiveU128, PrimitiveI128:
		return 16
	case PrimitiveU256, PrimitiveI256:
		return 32
	default:
		return 0
	}
}

// Type is one entry of the type registry. Which fields are set depends on Kind
type Type struct {
	ID   TypeID
	Path []string
	Kind TypeKind
	// Composite
	Fields []Field
	// Variant
	Variants []Variant
	// Sequence, Array and Compact element type, BitSequence store type
	Elem TypeID
	// Array
	Len uint32
	// Tuple
	Tuple []TypeID
	// Primitive
	Primitive PrimitiveKind
}

// Name returns the last path segment, if any
func (t *Type) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}
