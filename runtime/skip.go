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

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotfchain/scale"
)

// maxTypeDepth bounds recursion through nested and self-referencing types
const maxTypeDepth = 64

var ErrTypeDepth = errors.New("type nesting too deep")

// Skip advances r past one encoded value of the given type
func (m *Metadata) Skip(r *scale.Reader, id TypeID) error {
	return m.skip(r, id, 0)
}

// SkipFields advances r past each field in order and returns the raw bytes of each
func (m *Metadata) SkipFields(r *scale.Reader, fields []Field) ([][]byte, error) {
	ret := make([][]byte, 0, len(fields))
	for _, field := range fields {
		start := r.Position()
		if err := m.skip(r, field.Type, 0); err != nil {
			if field.Name != "" {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			return nil, err
		}
		ret = append(ret, r.Slice(start, r.Position()))
	}
	return ret, nil
}

func (m *Metadata) skip(r *scale.Reader, id TypeID, depth int) error {
	if depth > maxTypeDepth {
		return ErrTypeDepth
	}
	t, err := m.Type(id)
	if err != nil {
		return err
	}
	switch t.Kind {
	case KindPrimitive:
		if t.Primitive == PrimitiveStr {
			n, err := r.ReadCompactLen(1)
			if err != nil {
				return err
			}
			return r.Skip(n)
		}
		size := t.Primitive.Size()
		if size == 0 {
			return fmt.Errorf("unknown primitive %d in type %d", t.Primitive, id)
		}
		return r.Skip(size)
	case KindCompact:
		_, err := r.ReadCompact()
		return err
	case KindComposite:
		for _, field := range t.Fields {
			if err := m.skip(r, field.Type, depth+1); err != nil {
				return err
			}
		}
		return nil
	case KindTuple:
		for _, elem := range t.Tuple {
			if err := m.skip(r, elem, depth+1); err != nil {
				return err
			}
		}
		return nil
	case KindArray:
		for range t.Len {
			if err := m.skip(r, t.Elem, depth+1); err != nil {
				return err
			}
		}
		return nil
	case KindSequence:
		n, err := r.ReadCompactLen(1)
		if err != nil {
			return err
		}
		// Byte vectors are common enough to skip in one step
		if elem, err := m.Type(t.Elem); err == nil &&
			elem.Kind == KindPrimitive &&
			elem.Primitive.Size() > 0 {
			return r.Skip(n * elem.Primitive.Size())
		}
		for range n {
			if err := m.skip(r, t.Elem, depth+1); err != nil {
				return err
			}
		}
		return nil
	case KindVariant:
		idx, err := r.ReadByte()
		if err != nil {
			return err
		}
		for _, variant := range t.Variants {
			if variant.Index != idx {
				continue
			}
			for _, field := range variant.Fields {
				if err := m.skip(r, field.Type, depth+1); err != nil {
					return err
				}
			}
			return nil
		}
		return fmt.Errorf("type %d has no variant with index %d", id, idx)
	case KindBitSequence:
		bits, err := r.ReadCompact()
		if err != nil {
			return err
		}
		storeSize := 1
		if store, err := m.Type(t.Elem); err == nil && store.Kind == KindPrimitive {
			if size := store.Primitive.Size(); size > 0 {
				storeSize = size
			}
		}
		storeBits := uint64(storeSize) * 8 // #nosec G115
		words := bits / storeBits
		if bits%storeBits != 0 {
			words++
		}
		if words > uint64(r.Remaining())/uint64(storeSize) { // #nosec G115
			return scale.ErrUnexpectedEnd
		}
		return r.Skip(int(words) * storeSize) // #nosec G115
	default:
		return fmt.Errorf("unknown kind %d for type %d", t.Kind, id)
	}
}
