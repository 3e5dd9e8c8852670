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

package event

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
)

type payloadDecoder func(meta *runtime.Metadata, header Header, fields [][]byte) (Event, error)

const dispatchErrorModule = 3

var decoders = map[string]payloadDecoder{
	"TfgridModule.TwinStored": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		twin, err := single(f, ledger.DecodeTwin)
		return TwinStored{Header: h, Twin: twin}, err
	},
	"TfgridModule.TwinDeleted": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		id, err := single(f, decodeValue[uint32])
		return TwinDeleted{Header: h, TwinID: id}, err
	},
	"TfgridModule.FarmStored": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		farm, err := single(f, ledger.DecodeFarm)
		return FarmStored{Header: h, Farm: farm}, err
	},
	"TfgridModule.FarmDeleted": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		id, err := single(f, decodeValue[uint32])
		return FarmDeleted{Header: h, FarmID: id}, err
	},
	"TfgridModule.NodeStored": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		node, err := single(f, ledger.DecodeNode)
		return NodeStored{Header: h, Node: node}, err
	},
	"TfgridModule.NodeUpdated": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		node, err := single(f, ledger.DecodeNode)
		return NodeUpdated{Header: h, Node: node}, err
	},
	"TfgridModule.NodeDeleted": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		id, err := single(f, decodeValue[uint32])
		return NodeDeleted{Header: h, NodeID: id}, err
	},
	"SmartContractModule.ContractCreated": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		contract, err := single(f, ledger.DecodeContract)
		return ContractCreated{Header: h, Contract: contract}, err
	},
	"SmartContractModule.ContractUpdated": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		contract, err := single(f, ledger.DecodeContract)
		return ContractUpdated{Header: h, Contract: contract}, err
	},
	"SmartContractModule.NodeContractCanceled": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		ret := NodeContractCanceled{Header: h}
		err := decodeFields(f, &ret.ContractID, &ret.NodeID, &ret.TwinID)
		return ret, err
	},
	"SmartContractModule.NameContractCanceled": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		id, err := single(f, decodeValue[uint64])
		return NameContractCanceled{Header: h, ContractID: id}, err
	},
	"SmartContractModule.RentContractCanceled": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		id, err := single(f, decodeValue[uint64])
		return RentContractCanceled{Header: h, ContractID: id}, err
	},
	"SmartContractModule.ContractGracePeriodStarted": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		ret := ContractGracePeriodStarted{Header: h}
		err := decodeFields(f, &ret.ContractID, &ret.NodeID, &ret.TwinID, &ret.BlockNumber)
		return ret, err
	},
	"SmartContractModule.ContractGracePeriodEnded": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		ret := ContractGracePeriodEnded{Header: h}
		err := decodeFields(f, &ret.ContractID, &ret.NodeID, &ret.TwinID)
		return ret, err
	},
	"SmartContractModule.ContractBilled": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		bill, err := single(f, ledger.DecodeContractBill)
		return ContractBilled{Header: h, Bill: bill}, err
	},
	"SmartContractModule.ConsumptionReportReceived": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		consumption, err := single(f, ledger.DecodeConsumption)
		return ConsumptionReportReceived{Header: h, Consumption: consumption}, err
	},
	"Balances.Transfer": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		ret := BalanceTransfer{Header: h}
		var amount scale.U128
		if err := decodeFields(f, &ret.From, &ret.To, &amount); err != nil {
			return ret, err
		}
		ret.Amount = amount.BigInt()
		return ret, nil
	},
	"System.ExtrinsicSuccess": func(_ *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		info, err := single(f, decodeDispatchInfo)
		return ExtrinsicSuccess{Header: h, DispatchInfo: info}, err
	},
	"System.ExtrinsicFailed": func(meta *runtime.Metadata, h Header, f [][]byte) (Event, error) {
		ret := ExtrinsicFailed{Header: h}
		if err := fieldCount(f, 2); err != nil {
			return ret, err
		}
		var err error
		if ret.DispatchError, err = decodeDispatchError(meta, f[0]); err != nil {
			return ret, err
		}
		ret.DispatchInfo, err = decodeDispatchInfo(f[1])
		return ret, err
	},
}

func fieldCount(fields [][]byte, want int) error {
	if len(fields) != want {
		return fmt.Errorf("expected %d fields, found %d", want, len(fields))
	}
	return nil
}

func single[T any](fields [][]byte, decode func([]byte) (T, error)) (T, error) {
	if err := fieldCount(fields, 1); err != nil {
		var zero T
		return zero, err
	}
	return decode(fields[0])
}

func decodeValue[T any](data []byte) (T, error) {
	var ret T
	err := scale.Decode(data, &ret)
	return ret, err
}

// decodeFields decodes each field into the matching destination
func decodeFields(fields [][]byte, dest ...any) error {
	if err := fieldCount(fields, len(dest)); err != nil {
		return err
	}
	for idx, d := range dest {
		if err := scale.Decode(fields[idx], d); err != nil {
			return fmt.Errorf("field %d: %w", idx, err)
		}
	}
	return nil
}

// decodeDispatchInfo accepts both the single u64 weight and the two-dimensional
// compact weight of newer runtimes
func decodeDispatchInfo(data []byte) (DispatchInfo, error) {
	if len(data) < 3 {
		return DispatchInfo{}, scale.ErrUnexpectedEnd
	}
	weight := data[:len(data)-2]
	ret := DispatchInfo{
		Class:   DispatchClass(data[len(data)-2]),
		PaysFee: data[len(data)-1] == 0,
	}
	if len(weight) == 8 {
		v, err := decodeValue[uint64](weight)
		ret.Weight = v
		return ret, err
	}
	refTime, err := scale.NewReader(weight).ReadCompact()
	if err != nil {
		return DispatchInfo{}, err
	}
	ret.Weight = refTime
	return ret, nil
}

func decodeDispatchError(meta *runtime.Metadata, data []byte) (DispatchError, error) {
	if len(data) == 0 {
		return DispatchError{}, errors.New("empty dispatch error")
	}
	ret := DispatchError{Kind: data[0]}
	if ret.Kind != dispatchErrorModule {
		return ret, nil
	}
	if len(data) < 3 {
		return DispatchError{}, scale.ErrUnexpectedEnd
	}
	ret.ModuleError = data[2]
	pallet, err := meta.PalletByIndex(data[1])
	if err != nil {
		ret.Module = fmt.Sprintf("Pallet(%d)", data[1])
		return ret, nil
	}
	ret.Module = pallet.Name
	return ret, nil
}
