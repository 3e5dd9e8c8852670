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

package ledger

import (
	"fmt"
	"slices"

	"github.com/blinklabs-io/gotfchain/ledger/current"
	"github.com/blinklabs-io/gotfchain/scale"
)

// schema is one historical wire layout of an entity and the version tags that
// select it
type schema[T any] struct {
	name     string
	versions []uint32
	decode   func([]byte) (T, error)
}

// schemaTable lists the layouts of an entity, oldest first
type schemaTable[T any] struct {
	typeName string
	schemas  []schema[T]
}

// decodeAs decodes the whole input as the wire type W and converts it
func decodeAs[W any, T any](convert func(W) T) func([]byte) (T, error) {
	return func(data []byte) (T, error) {
		var wire W
		if err := scale.Decode(data, &wire); err != nil {
			var ret T
			return ret, err
		}
		return convert(wire), nil
	}
}

var twinSchemas = schemaTable[Twin]{
	typeName: "Twin",
	schemas: []schema[Twin]{
		{name: "legacy", versions: []uint32{1}, decode: decodeAs(twinFromLegacy)},
		{name: "current", versions: []uint32{2}, decode: decodeAs(twinFromCurrent)},
	},
}

var farmSchemas = schemaTable[Farm]{
	typeName: "Farm",
	schemas: []schema[Farm]{
		{name: "legacy", versions: []uint32{1, 2, 3}, decode: decodeAs(farmFromLegacy)},
		{name: "current", versions: []uint32{4}, decode: decodeAs(farmFromCurrent)},
	},
}

var nodeSchemas = schemaTable[Node]{
	typeName: "Node",
	schemas: []schema[Node]{
		{name: "legacy", versions: []uint32{1, 2, 3, 4}, decode: decodeAs(nodeFromLegacy)},
		{name: "current", versions: []uint32{5}, decode: decodeAs(nodeFromCurrent)},
	},
}

var contractSchemas = schemaTable[Contract]{
	typeName: "Contract",
	schemas: []schema[Contract]{
		{name: "legacy", versions: []uint32{1, 2, 3}, decode: decodeAs(contractFromLegacy)},
		{name: "current", versions: []uint32{4}, decode: decodeAs(contractFromCurrent)},
	},
}

var pricingPolicySchemas = schemaTable[PricingPolicy]{
	typeName: "PricingPolicy",
	schemas: []schema[PricingPolicy]{
		{name: "legacy", versions: []uint32{1}, decode: decodeAs(pricingPolicyFromLegacy)},
		{name: "current", versions: []uint32{2}, decode: decodeAs(pricingPolicyFromCurrent)},
	},
}

var farmingPolicySchemas = schemaTable[FarmingPolicy]{
	typeName: "FarmingPolicy",
	schemas: []schema[FarmingPolicy]{
		{name: "legacy", versions: []uint32{1}, decode: decodeAs(farmingPolicyFromLegacy)},
		{name: "current", versions: []uint32{2}, decode: decodeAs(farmingPolicyFromCurrent)},
	},
}

var entitySchemas = schemaTable[Entity]{
	typeName: "Entity",
	schemas: []schema[Entity]{
		{name: "legacy", versions: []uint32{1}, decode: decodeAs(entityFromLegacy)},
		{name: "current", versions: []uint32{2}, decode: decodeAs(entityFromCurrent)},
	},
}

// Decode selects the layout by the leading version tag. A value with an unknown
// tag is tried against every layout, newest first, and must decode exactly
func (t schemaTable[T]) Decode(data []byte) (T, error) {
	var ret T
	if len(data) == 0 {
		return ret, nil
	}
	var version uint32
	if err := scale.NewReader(data).Decode(&version); err != nil {
		return ret, scale.NewDecodeError(t.typeName, err)
	}
	for _, s := range t.schemas {
		if !slices.Contains(s.versions, version) {
			continue
		}
		tmp, err := s.decode(data)
		if err != nil {
			return ret, scale.NewDecodeError(
				t.typeName,
				fmt.Errorf("%s layout, version %d: %w", s.name, version, err),
			)
		}
		return tmp, nil
	}
	for i := len(t.schemas) - 1; i >= 0; i-- {
		tmp, err := t.schemas[i].decode(data)
		if err == nil {
			return tmp, nil
		}
	}
	return ret, &scale.DecodeError{
		Type: t.typeName,
		Err: &UnsupportedVersionError{
			Type:    t.typeName,
			Version: version,
		},
	}
}

// Versions returns every version tag with a known layout
func (t schemaTable[T]) Versions() []uint32 {
	var ret []uint32
	for _, s := range t.schemas {
		ret = append(ret, s.versions...)
	}
	return ret
}

// DecodeTwin maps a stored twin. Absent input yields the zero Twin
func DecodeTwin(data []byte) (Twin, error) {
	return twinSchemas.Decode(data)
}

// DecodeFarm maps a stored farm. Absent input yields the zero Farm
func DecodeFarm(data []byte) (Farm, error) {
	return farmSchemas.Decode(data)
}

// DecodeNode maps a stored node. Absent input yields the zero Node
func DecodeNode(data []byte) (Node, error) {
	return nodeSchemas.Decode(data)
}

// DecodeContract maps a stored contract. Absent input yields the zero Contract,
// whose Body is nil
func DecodeContract(data []byte) (Contract, error) {
	return contractSchemas.Decode(data)
}

func DecodePricingPolicy(data []byte) (PricingPolicy, error) {
	return pricingPolicySchemas.Decode(data)
}

func DecodeFarmingPolicy(data []byte) (FarmingPolicy, error) {
	return farmingPolicySchemas.Decode(data)
}

func DecodeEntity(data []byte) (Entity, error) {
	return entitySchemas.Decode(data)
}

// Encoded sizes of the account layouts, which carry no version tag
const (
	accountInfoSize               = 80
	accountInfoDualRefCountSize   = 76
	accountInfoSingleRefCountSize = 72
)

// DecodeAccountInfo maps a System.Account entry. The layout is chosen by length and
// absent input is an error
func DecodeAccountInfo(data []byte) (AccountInfo, error) {
	switch len(data) {
	case 0:
		return AccountInfo{}, scale.NewDecodeError("AccountInfo", scale.ErrNoData)
	case accountInfoDualRefCountSize:
		return decodeAs(accountInfoFromDualRefCount)(data)
	case accountInfoSingleRefCountSize:
		return decodeAs(accountInfoFromLegacy)(data)
	default:
		// Any length other than accountInfoSize fails the strict decode below
		return decodeAs(accountInfoFromCurrent)(data)
	}
}

// DecodeContractResources maps a stored resource report. Absent input yields the
// zero value
func DecodeContractResources(data []byte) (ContractResources, error) {
	var ret ContractResources
	if len(data) == 0 {
		return ret, nil
	}
	return decodeAs(contractResourcesFromCurrent)(data)
}

func DecodeConsumption(data []byte) (Consumption, error) {
	var wire current.Consumption
	if err := scale.DecodeStrict(data, &wire); err != nil {
		return Consumption{}, err
	}
	return copyFields[Consumption](wire), nil
}

func DecodeContractBill(data []byte) (ContractBill, error) {
	if len(data) == 0 {
		return ContractBill{}, scale.NewDecodeError("ContractBill", scale.ErrNoData)
	}
	return decodeAs(contractBillFromCurrent)(data)
}
