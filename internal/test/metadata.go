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

package test

import "github.com/blinklabs-io/gotfchain/runtime"

// Type IDs of the fixture registry returned by Metadata
const (
	TypeU8 runtime.TypeID = iota
	TypeU32
	TypeU64
	TypeU128
	TypeBool
	TypeBytes
	TypeBytes32
	TypeAccountID
	TypeEntityProof
	TypeEntityProofs
	TypeTwin
	TypePublicIP
	TypePublicIPs
	TypeFarmCertification
	TypeOptionU64
	TypeOptionU32
	TypeFarmingPolicyLimit
	TypeOptionFarmingPolicyLimit
	TypeFarm
	TypeCause
	TypeContractState
	TypeNodeContract
	TypeNameContract
	TypeRentContract
	TypeContractData
	TypeContract
	TypeDispatchClass
	TypePays
	TypeDispatchInfo
	TypeModuleError
	TypeBytes4
	TypeDispatchError
	TypeCompactU32
	TypeStr
	TypeDiscountLevel
	TypeContractBill
	TypeResources
	TypeLocation
	TypePublicConfig
	TypeOptionPublicConfig
	TypeBytesList
	TypeInterface
	TypeInterfaces
	TypeNodeCertification
	TypeNode
	TypeConsumption
	TypeCompactU64
)

// Pallet indexes of the fixture metadata
const (
	PalletSystem              uint8 = 0
	PalletBalances            uint8 = 5
	PalletTfgridModule        uint8 = 11
	PalletSmartContractModule uint8 = 12
)

func primitive(id runtime.TypeID, kind runtime.PrimitiveKind) runtime.Type {
	return runtime.Type{ID: id, Kind: runtime.KindPrimitive, Primitive: kind}
}

func composite(id runtime.TypeID, name string, fields ...runtime.Field) runtime.Type {
	return runtime.Type{ID: id, Path: []string{name}, Kind: runtime.KindComposite, Fields: fields}
}

func enum(id runtime.TypeID, name string, variants ...runtime.Variant) runtime.Type {
	return runtime.Type{ID: id, Path: []string{name}, Kind: runtime.KindVariant, Variants: variants}
}

func sequence(id runtime.TypeID, elem runtime.TypeID) runtime.Type {
	return runtime.Type{ID: id, Kind: runtime.KindSequence, Elem: elem}
}

func array(id runtime.TypeID, elem runtime.TypeID, length uint32) runtime.Type {
	return runtime.Type{ID: id, Kind: runtime.KindArray, Elem: elem, Len: length}
}

func option(id runtime.TypeID, elem runtime.TypeID) runtime.Type {
	return enum(
		id,
		"Option",
		variant("None", 0),
		variant("Some", 1, field("", elem)),
	)
}

func field(name string, id runtime.TypeID) runtime.Field {
	return runtime.Field{Name: name, Type: id}
}

func variant(name string, index uint8, fields ...runtime.Field) runtime.Variant {
	return runtime.Variant{Name: name, Index: index, Fields: fields}
}

func fieldless(names ...string) []runtime.Variant {
	ret := make([]runtime.Variant, 0, len(names))
	for idx, name := range names {
		ret = append(ret, variant(name, uint8(idx))) // #nosec G115
	}
	return ret
}

// Metadata returns a runtime metadata fixture covering the pallets, calls and events
// the client works with. Payload types follow the current storage layouts
func Metadata() *runtime.Metadata {
	types := []runtime.Type{
		primitive(TypeU8, runtime.PrimitiveU8),
		primitive(TypeU32, runtime.PrimitiveU32),
		primitive(TypeU64, runtime.PrimitiveU64),
		primitive(TypeU128, runtime.PrimitiveU128),
		primitive(TypeBool, runtime.PrimitiveBool),
		sequence(TypeBytes, TypeU8),
		array(TypeBytes32, TypeU8, 32),
		composite(TypeAccountID, "AccountId32", field("", TypeBytes32)),
		composite(TypeEntityProof, "EntityProof", field("entity_id", TypeU32), field("signature", TypeBytes)),
		sequence(TypeEntityProofs, TypeEntityProof),
		composite(
			TypeTwin,
			"Twin",
			field("version", TypeU32),
			field("id", TypeU32),
			field("account_id", TypeAccountID),
			field("ip", TypeBytes),
			field("entities", TypeEntityProofs),
		),
		composite(
			TypePublicIP,
			"PublicIP",
			field("ip", TypeBytes),
			field("gateway", TypeBytes),
			field("contract_id", TypeU64),
		),
		sequence(TypePublicIPs, TypePublicIP),
		enum(TypeFarmCertification, "FarmCertification", fieldless("NotCertified", "Gold")...),
		option(TypeOptionU64, TypeU64),
		option(TypeOptionU32, TypeU32),
		composite(
			TypeFarmingPolicyLimit,
			"FarmingPolicyLimit",
			field("farming_policy_id", TypeU32),
			field("cu", TypeOptionU64),
			field("su", TypeOptionU64),
			field("end", TypeOptionU64),
			field("node_count", TypeOptionU32),
			field("node_certification", TypeBool),
		),
		option(TypeOptionFarmingPolicyLimit, TypeFarmingPolicyLimit),
		composite(
			TypeFarm,
			"Farm",
			field("version", TypeU32),
			field("id", TypeU32),
			field("name", TypeBytes),
			field("twin_id", TypeU32),
			field("pricing_policy_id", TypeU32),
			field("public_ips", TypePublicIPs),
			field("dedicated_farm", TypeBool),
			field("certification", TypeFarmCertification),
			field("farming_policy_limits", TypeOptionFarmingPolicyLimit),
		),
		enum(TypeCause, "Cause", fieldless("CanceledByUser", "OutOfFunds")...),
		enum(
			TypeContractState,
			"ContractState",
			variant("Created", 0),
			variant("Deleted", 1, field("", TypeCause)),
			variant("GracePeriod", 2, field("", TypeU64)),
		),
		composite(
			TypeNodeContract,
			"NodeContract",
			field("node_id", TypeU32),
			field("deployment_data", TypeBytes),
			field("deployment_hash", TypeBytes),
			field("public_ips", TypeU32),
			field("public_ips_list", TypePublicIPs),
		),
		composite(TypeNameContract, "NameContract", field("name", TypeBytes)),
		composite(TypeRentContract, "RentContract", field("node_id", TypeU32)),
		enum(
			TypeContractData,
			"ContractData",
			variant("NodeContract", 0, field("", TypeNodeContract)),
			variant("NameContract", 1, field("", TypeNameContract)),
			variant("RentContract", 2, field("", TypeRentContract)),
		),
		composite(
			TypeContract,
			"Contract",
			field("version", TypeU32),
			field("state", TypeContractState),
			field("contract_id", TypeU64),
			field("twin_id", TypeU32),
			field("contract_type", TypeContractData),
		),
		enum(TypeDispatchClass, "DispatchClass", fieldless("Normal", "Operational", "Mandatory")...),
		enum(TypePays, "Pays", fieldless("Yes", "No")...),
		composite(
			TypeDispatchInfo,
			"DispatchInfo",
			field("weight", TypeU64),
			field("class", TypeDispatchClass),
			field("pays_fee", TypePays),
		),
		composite(TypeModuleError, "ModuleError", field("index", TypeU8), field("error", TypeBytes4)),
		array(TypeBytes4, TypeU8, 4),
		enum(
			TypeDispatchError,
			"DispatchError",
			variant("Other", 0),
			variant("CannotLookup", 1),
			variant("BadOrigin", 2),
			variant("Module", 3, field("", TypeModuleError)),
		),
		{ID: TypeCompactU32, Kind: runtime.KindCompact, Elem: TypeU32},
		primitive(TypeStr, runtime.PrimitiveStr),
		enum(TypeDiscountLevel, "DiscountLevel", fieldless("None", "Default", "Bronze", "Silver", "Gold")...),
		composite(
			TypeContractBill,
			"ContractBill",
			field("contract_id", TypeU64),
			field("timestamp", TypeU64),
			field("discount_level", TypeDiscountLevel),
			field("amount_billed", TypeU128),
		),
		composite(
			TypeResources,
			"Resources",
			field("hru", TypeU64),
			field("sru", TypeU64),
			field("cru", TypeU64),
			field("mru", TypeU64),
		),
		composite(TypeLocation, "Location", field("longitude", TypeBytes), field("latitude", TypeBytes)),
		composite(
			TypePublicConfig,
			"PublicConfig",
			field("ipv4", TypeBytes),
			field("ipv6", TypeBytes),
			field("gw4", TypeBytes),
			field("gw6", TypeBytes),
			field("domain", TypeBytes),
		),
		option(TypeOptionPublicConfig, TypePublicConfig),
		sequence(TypeBytesList, TypeBytes),
		composite(
			TypeInterface,
			"Interface",
			field("name", TypeBytes),
			field("mac", TypeBytes),
			field("ips", TypeBytesList),
		),
		sequence(TypeInterfaces, TypeInterface),
		enum(TypeNodeCertification, "NodeCertification", fieldless("Diy", "Certified")...),
		composite(
			TypeNode,
			"Node",
			field("version", TypeU32),
			field("id", TypeU32),
			field("farm_id", TypeU32),
			field("twin_id", TypeU32),
			field("resources", TypeResources),
			field("location", TypeLocation),
			field("country", TypeBytes),
			field("city", TypeBytes),
			field("public_config", TypeOptionPublicConfig),
			field("created", TypeU64),
			field("farming_policy_id", TypeU32),
			field("interfaces", TypeInterfaces),
			field("certification", TypeNodeCertification),
			field("secure_boot", TypeBool),
			field("virtualized", TypeBool),
			field("serial_number", TypeBytes),
			field("connection_price", TypeU32),
		),
		composite(
			TypeConsumption,
			"Consumption",
			field("contract_id", TypeU64),
			field("timestamp", TypeU64),
			field("cru", TypeU64),
			field("sru", TypeU64),
			field("hru", TypeU64),
			field("mru", TypeU64),
			field("nru", TypeU64),
		),
		{ID: TypeCompactU64, Kind: runtime.KindCompact, Elem: TypeU64},
	}
	ret := &runtime.Metadata{
		Types: make(map[runtime.TypeID]runtime.Type, len(types)),
		Pallets: []runtime.Pallet{
			{
				Name:  "System",
				Index: PalletSystem,
				Calls: []runtime.Variant{
					variant("remark", 1, field("remark", TypeBytes)),
				},
				Events: []runtime.Variant{
					variant("ExtrinsicSuccess", 0, field("dispatch_info", TypeDispatchInfo)),
					variant(
						"ExtrinsicFailed",
						1,
						field("dispatch_error", TypeDispatchError),
						field("dispatch_info", TypeDispatchInfo),
					),
				},
			},
			{
				Name:  "Balances",
				Index: PalletBalances,
				Calls: []runtime.Variant{
					variant("transfer", 0, field("dest", TypeAccountID), field("value", TypeCompactU64)),
				},
				Events: []runtime.Variant{
					variant(
						"Transfer",
						2,
						field("from", TypeAccountID),
						field("to", TypeAccountID),
						field("amount", TypeU128),
					),
				},
			},
			{
				Name:  "TfgridModule",
				Index: PalletTfgridModule,
				Calls: []runtime.Variant{
					variant("create_farm", 0, field("name", TypeBytes)),
					variant("create_twin", 5, field("ip", TypeBytes)),
				},
				Events: []runtime.Variant{
					variant("FarmStored", 0, field("", TypeFarm)),
					variant("FarmDeleted", 2, field("", TypeU32)),
					variant("NodeStored", 3, field("", TypeNode)),
					variant("NodeUpdated", 4, field("", TypeNode)),
					variant("NodeDeleted", 5, field("", TypeU32)),
					variant("TwinStored", 10, field("", TypeTwin)),
					variant("TwinDeleted", 12, field("", TypeU32)),
					variant(
						"FarmPayoutV2AddressRegistered",
						30,
						field("", TypeU32),
						field("", TypeBytes),
					),
				},
			},
			{
				Name:  "SmartContractModule",
				Index: PalletSmartContractModule,
				Calls: []runtime.Variant{
					variant("cancel_contract", 1, field("contract_id", TypeU64)),
				},
				Events: []runtime.Variant{
					variant("ContractCreated", 0, field("", TypeContract)),
					variant("ContractUpdated", 1, field("", TypeContract)),
					variant(
						"NodeContractCanceled",
						2,
						field("contract_id", TypeU64),
						field("node_id", TypeU32),
						field("twin_id", TypeU32),
					),
					variant("NameContractCanceled", 3, field("contract_id", TypeU64)),
					variant("ConsumptionReportReceived", 5, field("", TypeConsumption)),
					variant("ContractBilled", 6, field("", TypeContractBill)),
					variant(
						"ContractGracePeriodStarted",
						10,
						field("contract_id", TypeU64),
						field("node_id", TypeU32),
						field("twin_id", TypeU32),
						field("block_number", TypeU64),
					),
					variant(
						"ContractGracePeriodEnded",
						11,
						field("contract_id", TypeU64),
						field("node_id", TypeU32),
						field("twin_id", TypeU32),
					),
					variant("RentContractCanceled", 12, field("contract_id", TypeU64)),
				},
			},
		},
	}
	for _, t := range types {
		ret.Types[t.ID] = t
	}
	return ret
}
