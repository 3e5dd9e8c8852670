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

// Package current holds the wire layouts written by the running TFChain runtime.
//
// Text is kept as raw bytes exactly as stored on chain. Conversion into the domain
// model lives in the ledger package.
package current

import (
	"fmt"

	"github.com/blinklabs-io/gotfchain/scale"
)

type AccountID [32]byte

// decodeVariant reads a fieldless enum index and checks it against the variant count
func decodeVariant(decoder scale.Decoder, name string, count uint8) (uint8, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return 0, err
	}
	if b >= count {
		return 0, fmt.Errorf("invalid %s variant: %d", name, b)
	}
	return b, nil
}

type FarmCertification uint8

const (
	FarmCertificationNotCertified FarmCertification = 0
	FarmCertificationGold         FarmCertification = 1
)

func (c *FarmCertification) Decode(decoder scale.Decoder) error {
	b, err := decodeVariant(decoder, "FarmCertification", 2)
	*c = FarmCertification(b)
	return err
}

func (c FarmCertification) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(byte(c))
}

type NodeCertification uint8

const (
	NodeCertificationDiy       NodeCertification = 0
	NodeCertificationCertified NodeCertification = 1
)

func (c *NodeCertification) Decode(decoder scale.Decoder) error {
	b, err := decodeVariant(decoder, "NodeCertification", 2)
	*c = NodeCertification(b)
	return err
}

func (c NodeCertification) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(byte(c))
}

type Unit uint8

const (
	UnitBytes Unit = iota
	UnitKilobytes
	UnitMegabytes
	UnitGigabytes
	UnitTerrabytes
)

func (u *Unit) Decode(decoder scale.Decoder) error {
	b, err := decodeVariant(decoder, "Unit", 5)
	*u = Unit(b)
	return err
}

func (u Unit) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(byte(u))
}

type EntityProof struct {
	EntityID  uint32
	Signature scale.Bytes
}

type Twin struct {
	Version   uint32
	ID        uint32
	AccountID AccountID
	IP        scale.Bytes
	Entities  scale.Vec[EntityProof]
}

type Entity struct {
	Version   uint32
	ID        uint32
	Name      scale.Bytes
	AccountID AccountID
	Country   scale.Bytes
	City      scale.Bytes
}

type PublicIP struct {
	IP         scale.Bytes
	Gateway    scale.Bytes
	ContractID uint64
}

type FarmingPolicyLimit struct {
	FarmingPolicyID   uint32
	CU                scale.Option[uint64]
	SU                scale.Option[uint64]
	End               scale.Option[uint64]
	NodeCount         scale.Option[uint32]
	NodeCertification bool
}

// Farm moved the certification after the public IPs and added farming policy limits
type Farm struct {
	Version             uint32
	ID                  uint32
	Name                scale.Bytes
	TwinID              uint32
	PricingPolicyID     uint32
	PublicIPs           scale.Vec[PublicIP]
	DedicatedFarm       bool
	Certification       FarmCertification
	FarmingPolicyLimits scale.Option[FarmingPolicyLimit]
}

type Resources struct {
	HRU uint64
	SRU uint64
	CRU uint64
	MRU uint64
}

type Location struct {
	Longitude scale.Bytes
	Latitude  scale.Bytes
}

type PublicConfig struct {
	IPv4   scale.Bytes
	IPv6   scale.Bytes
	GW4    scale.Bytes
	GW6    scale.Bytes
	Domain scale.Bytes
}

type Interface struct {
	Name scale.Bytes
	Mac  scale.Bytes
	IPs  scale.Vec[scale.Bytes]
}

type Node struct {
	Version         uint32
	ID              uint32
	FarmID          uint32
	TwinID          uint32
	Resources       Resources
	Location        Location
	Country         scale.Bytes
	City            scale.Bytes
	PublicConfig    scale.Option[PublicConfig]
	Created         uint64
	FarmingPolicyID uint32
	Interfaces      scale.Vec[Interface]
	Certification   NodeCertification
	SecureBoot      bool
	Virtualized     bool
	SerialNumber    scale.Bytes
	ConnectionPrice uint32
}

type Policy struct {
	Value uint32
	Unit  Unit
}

type PricingPolicy struct {
	Version                    uint32
	ID                         uint32
	Name                       scale.Bytes
	SU                         Policy
	CU                         Policy
	NU                         Policy
	IPU                        Policy
	UniqueName                 Policy
	DomainName                 Policy
	FoundationAccount          AccountID
	CertifiedSalesAccount      AccountID
	DiscountForDedicationNodes uint8
}

type FarmingPolicy struct {
	Version           uint32
	ID                uint32
	Name              scale.Bytes
	CU                uint32
	SU                uint32
	NU                uint32
	IPv4              uint32
	MinimalUptime     uint16
	PolicyCreated     uint32
	PolicyEnd         uint32
	Immutable         bool
	Default           bool
	NodeCertification NodeCertification
	FarmCertification FarmCertification
}
