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
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gotfchain/ledger"
)

type PhaseType uint8

const (
	PhaseApplyExtrinsic PhaseType = 0
	PhaseFinalization   PhaseType = 1
	PhaseInitialization PhaseType = 2
)

// Phase is the point of block execution at which an event was emitted
type Phase struct {
	Type PhaseType
	// Set for PhaseApplyExtrinsic
	ExtrinsicIndex uint32
}

func (p Phase) String() string {
	switch p.Type {
	case PhaseApplyExtrinsic:
		return fmt.Sprintf("ApplyExtrinsic(%d)", p.ExtrinsicIndex)
	case PhaseFinalization:
		return "Finalization"
	case PhaseInitialization:
		return "Initialization"
	default:
		return "Unknown"
	}
}

// Header is common to every event
type Header struct {
	Phase  Phase
	Pallet string
	Name   string
	Topics []ledger.Hash
}

func (h Header) EventHeader() Header {
	return h
}

// Event is one entry of a block's event log. The set of implementations is closed:
// anything outside it is reported as Unrecognized
type Event interface {
	EventHeader() Header
	isEvent()
}

type TwinStored struct {
	Header
	Twin ledger.Twin
}

type TwinDeleted struct {
	Header
	TwinID uint32
}

type FarmStored struct {
	Header
	Farm ledger.Farm
}

type FarmDeleted struct {
	Header
	FarmID uint32
}

type NodeStored struct {
	Header
	Node ledger.Node
}

type NodeUpdated struct {
	Header
	Node ledger.Node
}

type NodeDeleted struct {
	Header
	NodeID uint32
}

type ContractCreated struct {
	Header
	Contract ledger.Contract
}

type ContractUpdated struct {
	Header
	Contract ledger.Contract
}

type NodeContractCanceled struct {
	Header
	ContractID uint64
	NodeID     uint32
	TwinID     uint32
}

type NameContractCanceled struct {
	Header
	ContractID uint64
}

type RentContractCanceled struct {
	Header
	ContractID uint64
}

type ContractGracePeriodStarted struct {
	Header
	ContractID  uint64
	NodeID      uint32
	TwinID      uint32
	BlockNumber uint64
}

type ContractGracePeriodEnded struct {
	Header
	ContractID uint64
	NodeID     uint32
	TwinID     uint32
}

type ContractBilled struct {
	Header
	Bill ledger.ContractBill
}

type ConsumptionReportReceived struct {
	Header
	Consumption ledger.Consumption
}

type BalanceTransfer struct {
	Header
	From   ledger.AccountID
	To     ledger.AccountID
	Amount *big.Int
}

type DispatchClass uint8

const (
	DispatchClassNormal DispatchClass = iota
	DispatchClassOperational
	DispatchClassMandatory
)

func (c DispatchClass) String() string {
	switch c {
	case DispatchClassNormal:
		return "Normal"
	case DispatchClassOperational:
		return "Operational"
	case DispatchClassMandatory:
		return "Mandatory"
	default:
		return "Unknown"
	}
}

type DispatchInfo struct {
	// Reference time component of the weight
	Weight  uint64
	Class   DispatchClass
	PaysFee bool
}

// DispatchError describes why an extrinsic failed. Module and ModuleError are set
// when the error was raised by a pallet
type DispatchError struct {
	Kind        uint8
	Module      string
	ModuleError uint8
}

var dispatchErrorKinds = []string{
	"Other",
	"CannotLookup",
	"BadOrigin",
	"Module",
	"ConsumerRemaining",
	"NoProviders",
	"TooManyConsumers",
	"Token",
	"Arithmetic",
	"Transactional",
	"Exhausted",
	"Corruption",
	"Unavailable",
}

func (e DispatchError) String() string {
	if e.Module != "" {
		return fmt.Sprintf("%s error %d", e.Module, e.ModuleError)
	}
	if int(e.Kind) < len(dispatchErrorKinds) {
		return dispatchErrorKinds[e.Kind]
	}
	return fmt.Sprintf("DispatchError(%d)", e.Kind)
}

type ExtrinsicSuccess struct {
	Header
	DispatchInfo DispatchInfo
}

type ExtrinsicFailed struct {
	Header
	DispatchError DispatchError
	DispatchInfo  DispatchInfo
}

// Unrecognized holds an event outside the known set, or a known event whose payload
// could not be decoded, in which case Err is set
type Unrecognized struct {
	Header
	Raw []byte
	Err error
}

func (TwinStored) isEvent()                 {}
func (TwinDeleted) isEvent()                {}
func (FarmStored) isEvent()                 {}
func (FarmDeleted) isEvent()                {}
func (NodeStored) isEvent()                 {}
func (NodeUpdated) isEvent()                {}
func (NodeDeleted) isEvent()                {}
func (ContractCreated) isEvent()            {}
func (ContractUpdated) isEvent()            {}
func (NodeContractCanceled) isEvent()       {}
func (NameContractCanceled) isEvent()       {}
func (RentContractCanceled) isEvent()       {}
func (ContractGracePeriodStarted) isEvent() {}
func (ContractGracePeriodEnded) isEvent()   {}
func (ContractBilled) isEvent()             {}
func (ConsumptionReportReceived) isEvent()  {}
func (BalanceTransfer) isEvent()            {}
func (ExtrinsicSuccess) isEvent()           {}
func (ExtrinsicFailed) isEvent()            {}
func (Unrecognized) isEvent()               {}
