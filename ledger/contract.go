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
	"math/big"
)

type Cause uint8

const (
	CauseCanceledByUser Cause = 0
	CauseOutOfFunds     Cause = 1
)

func (c Cause) String() string {
	switch c {
	case CauseCanceledByUser:
		return "Canceled by user"
	case CauseOutOfFunds:
		return "Out of funds"
	default:
		return "Unknown"
	}
}

type ContractStateType uint8

const (
	ContractStateCreated ContractStateType = iota
	ContractStateDeleted
	ContractStateGracePeriod
)

// ContractState is Created, Deleted with a Cause, or in a grace period
type ContractState struct {
	Type ContractStateType
	// Set when Type is ContractStateDeleted
	Cause Cause
	// Set when Type is ContractStateGracePeriod
	GracePeriodBlock uint64
}

func (s ContractState) String() string {
	switch s.Type {
	case ContractStateCreated:
		return "Created"
	case ContractStateDeleted:
		return s.Cause.String()
	case ContractStateGracePeriod:
		return fmt.Sprintf("In grace period until block %d", s.GracePeriodBlock)
	default:
		return "Unknown"
	}
}

func (s ContractState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ContractData is the body of a contract. It is implemented by NodeContract,
// NameContract and RentContract only
type ContractData interface {
	ContractType() string
	isContractData()
}

type NodeContract struct {
	NodeID         uint32
	DeploymentData []byte
	DeploymentHash []byte
	PublicIPs      uint32
	PublicIPsList  []PublicIP
}

func (NodeContract) ContractType() string { return "NodeContract" }
func (NodeContract) isContractData()      {}

type NameContract struct {
	Name string
}

func (NameContract) ContractType() string { return "NameContract" }
func (NameContract) isContractData()      {}

type RentContract struct {
	NodeID uint32
}

func (RentContract) ContractType() string { return "RentContract" }
func (RentContract) isContractData()      {}

// Contract is a deployment agreement. Body is nil only for the zero value returned
// when a contract does not exist
type Contract struct {
	Version    uint32
	State      ContractState
	ContractID uint64
	TwinID     uint32
	Body       ContractData
}

type ContractResources struct {
	ContractID uint64
	Used       Resources
}

type Consumption struct {
	ContractID uint64
	Timestamp  uint64
	CRU        uint64
	SRU        uint64
	HRU        uint64
	MRU        uint64
	NRU        uint64
}

type DiscountLevel uint8

const (
	DiscountLevelNone DiscountLevel = iota
	DiscountLevelDefault
	DiscountLevelBronze
	DiscountLevelSilver
	DiscountLevelGold
)

func (d DiscountLevel) String() string {
	switch d {
	case DiscountLevelNone:
		return "None"
	case DiscountLevelDefault:
		return "Default"
	case DiscountLevelBronze:
		return "Bronze"
	case DiscountLevelSilver:
		return "Silver"
	case DiscountLevelGold:
		return "Gold"
	default:
		return "Unknown"
	}
}

func (d DiscountLevel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ContractBill is reported when a contract is billed
type ContractBill struct {
	ContractID    uint64
	Timestamp     uint64
	DiscountLevel DiscountLevel
	AmountBilled  *big.Int
}
