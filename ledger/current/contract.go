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

package current

import (
	"fmt"

	"github.com/blinklabs-io/gotfchain/scale"
)

type Cause uint8

const (
	CauseCanceledByUser Cause = 0
	CauseOutOfFunds     Cause = 1
)

func (c *Cause) Decode(decoder scale.Decoder) error {
	b, err := decodeVariant(decoder, "Cause", 2)
	*c = Cause(b)
	return err
}

func (c Cause) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(byte(c))
}

type DiscountLevel uint8

const (
	DiscountLevelNone DiscountLevel = iota
	DiscountLevelDefault
	DiscountLevelBronze
	DiscountLevelSilver
	DiscountLevelGold
)

func (d *DiscountLevel) Decode(decoder scale.Decoder) error {
	b, err := decodeVariant(decoder, "DiscountLevel", 5)
	*d = DiscountLevel(b)
	return err
}

func (d DiscountLevel) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(byte(d))
}

type ContractState struct {
	IsCreated     bool
	IsDeleted     bool
	AsDeleted     Cause
	IsGracePeriod bool
	// Block number at which the grace period started
	AsGracePeriod uint64
}

func (s *ContractState) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		s.IsCreated = true
	case 1:
		s.IsDeleted = true
		return decoder.Decode(&s.AsDeleted)
	case 2:
		s.IsGracePeriod = true
		return decoder.Decode(&s.AsGracePeriod)
	default:
		return fmt.Errorf("invalid ContractState variant: %d", b)
	}
	return nil
}

func (s ContractState) Encode(encoder scale.Encoder) error {
	switch {
	case s.IsDeleted:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		return encoder.Encode(s.AsDeleted)
	case s.IsGracePeriod:
		if err := encoder.PushByte(2); err != nil {
			return err
		}
		return encoder.Encode(s.AsGracePeriod)
	default:
		return encoder.PushByte(0)
	}
}

type NodeContract struct {
	NodeID         uint32
	DeploymentData scale.Bytes
	DeploymentHash scale.Bytes
	PublicIPs      uint32
	PublicIPsList  scale.Vec[PublicIP]
}

type NameContract struct {
	Name scale.Bytes
}

type RentContract struct {
	NodeID uint32
}

type ContractData struct {
	IsNodeContract bool
	AsNodeContract NodeContract
	IsNameContract bool
	AsNameContract NameContract
	IsRentContract bool
	AsRentContract RentContract
}

func (d *ContractData) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		d.IsNodeContract = true
		return decoder.Decode(&d.AsNodeContract)
	case 1:
		d.IsNameContract = true
		return decoder.Decode(&d.AsNameContract)
	case 2:
		d.IsRentContract = true
		return decoder.Decode(&d.AsRentContract)
	default:
		return fmt.Errorf("invalid ContractData variant: %d", b)
	}
}

func (d ContractData) Encode(encoder scale.Encoder) error {
	switch {
	case d.IsNameContract:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		return encoder.Encode(d.AsNameContract)
	case d.IsRentContract:
		if err := encoder.PushByte(2); err != nil {
			return err
		}
		return encoder.Encode(d.AsRentContract)
	default:
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Encode(d.AsNodeContract)
	}
}

type Contract struct {
	Version      uint32
	State        ContractState
	ContractID   uint64
	TwinID       uint32
	ContractType ContractData
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

type ContractBill struct {
	ContractID    uint64
	Timestamp     uint64
	DiscountLevel DiscountLevel
	AmountBilled  scale.U128
}
