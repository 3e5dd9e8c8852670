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
)

var (
	ErrPalletNotFound = errors.New("pallet not found")
	ErrCallNotFound   = errors.New("call not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrTypeNotFound   = errors.New("type not found")
)

type TypeID uint32

type Field struct {
	Name     string
	Type     TypeID
	TypeName string
}

// Variant is one case of an enum type. Calls and events are variants of the
// pallet's call and event enums
type Variant struct {
	Name   string
	Index  uint8
	Fields []Field
}

type Pallet struct {
	Name   string
	Index  uint8
	Calls  []Variant
	Events []Variant
}

type Metadata struct {
	Pallets []Pallet
	Types   map[TypeID]Type
}

// CallIndex is the two byte prefix identifying a call in an extrinsic
type CallIndex struct {
	Pallet uint8
	Call   uint8
}

func (m *Metadata) Pallet(name string) (*Pallet, error) {
	for i := range m.Pallets {
		if m.Pallets[i].Name == name {
			return &m.Pallets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPalletNotFound, name)
}

func (m *Metadata) PalletByIndex(index uint8) (*Pallet, error) {
	for i := range m.Pallets {
		if m.Pallets[i].Index == index {
			return &m.Pallets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: index %d", ErrPalletNotFound, index)
}

// Call looks up a call by pallet and call name
func (m *Metadata) Call(module string, function string) (CallIndex, *Variant, error) {
	pallet, err := m.Pallet(module)
	if err != nil {
		return CallIndex{}, nil, err
	}
	for i := range pallet.Calls {
		if pallet.Calls[i].Name == function {
			return CallIndex{Pallet: pallet.Index, Call: pallet.Calls[i].Index}, &pallet.Calls[i], nil
		}
	}
	return CallIndex{}, nil, fmt.Errorf("%w: %s.%s", ErrCallNotFound, module, function)
}

// CallByIndex looks up a call by its call index
func (m *Metadata) CallByIndex(idx CallIndex) (*Pallet, *Variant, error) {
	pallet, err := m.PalletByIndex(idx.Pallet)
	if err != nil {
		return nil, nil, err
	}
	for i := range pallet.Calls {
		if pallet.Calls[i].Index == idx.Call {
			return pallet, &pallet.Calls[i], nil
		}
	}
	return nil, nil, fmt.Errorf(
		"%w: %s call index %d",
		ErrCallNotFound,
		pallet.Name,
		idx.Call,
	)
}

// Event looks up an event by pallet and event index
func (m *Metadata) Event(palletIndex uint8, eventIndex uint8) (*Pallet, *Variant, error) {
	pallet, err := m.PalletByIndex(palletIndex)
	if err != nil {
		return nil, nil, err
	}
	for i := range pallet.Events {
		if pallet.Events[i].Index == eventIndex {
			return pallet, &pallet.Events[i], nil
		}
	}
	return nil, nil, fmt.Errorf(
		"%w: %s event index %d",
		ErrEventNotFound,
		pallet.Name,
		eventIndex,
	)
}

func (m *Metadata) Type(id TypeID) (*Type, error) {
	t, ok := m.Types[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTypeNotFound, id)
	}
	return &t, nil
}
