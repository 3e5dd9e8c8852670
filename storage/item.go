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

package storage

// Item describes a storage entry: a plain value when Hashers is empty, otherwise a map
// with one hasher per key
type Item struct {
	Module  string
	Name    string
	Hashers []Hasher
}

// Storage items read by the client
var (
	ItemTwins                 = Item{Module: "TfgridModule", Name: "Twins", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemTwinIdByAccountID     = Item{Module: "TfgridModule", Name: "TwinIdByAccountID", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemFarms                 = Item{Module: "TfgridModule", Name: "Farms", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemFarmIdByName          = Item{Module: "TfgridModule", Name: "FarmIdByName", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemNodes                 = Item{Module: "TfgridModule", Name: "Nodes", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemPricingPolicies       = Item{Module: "TfgridModule", Name: "PricingPolicies", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemFarmingPoliciesMap    = Item{Module: "TfgridModule", Name: "FarmingPoliciesMap", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemEntities              = Item{Module: "TfgridModule", Name: "Entities", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemContracts             = Item{Module: "SmartContractModule", Name: "Contracts", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemNodeContractResources = Item{Module: "SmartContractModule", Name: "NodeContractResources", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemSystemAccount         = Item{Module: "System", Name: "Account", Hashers: []Hasher{HasherBlake2_128Concat}}
	ItemSystemEvents          = Item{Module: "System", Name: "Events"}
	ItemSystemNumber          = Item{Module: "System", Name: "Number"}
)

// Items lists the known storage items by "Module.Name"
var Items = map[string]Item{}

func init() {
	for _, item := range []Item{
		ItemTwins,
		ItemTwinIdByAccountID,
		ItemFarms,
		ItemFarmIdByName,
		ItemNodes,
		ItemPricingPolicies,
		ItemFarmingPoliciesMap,
		ItemEntities,
		ItemContracts,
		ItemNodeContractResources,
		ItemSystemAccount,
		ItemSystemEvents,
		ItemSystemNumber,
	} {
		Items[item.Module+"."+item.Name] = item
	}
}

// Lookup returns the item registered for module and name
func Lookup(module string, name string) (Item, bool) {
	item, ok := Items[module+"."+name]
	return item, ok
}
