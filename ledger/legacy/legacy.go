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

// Package legacy holds the wire layouts written by earlier TFChain runtimes.
//
// Text is kept as raw bytes exactly as stored on chain. Conversion into the domain
// model lives in the ledger package.
package legacy

import (
	"fmt"

	"github.com/blinklabs-io/gotfchain/scale"
)

type AccountID [32]byte

// CertificationType was shared by farms and nodes before the certification split
type CertificationType uint8

const (
	CertificationTypeDiy       CertificationType = 0
	CertificationTypeCertified CertificationType = 1
)

func (c *CertificationType) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if b > byte(CertificationTypeCertified) {
		return fmt.Errorf("invalid CertificationType variant: %d", b)
	}
	*c = CertificationType(b)
	return nil
}

func (c CertificationType) Encode(encoder scale.Encoder) error {
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
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if b > byte(UnitTerrabytes) {
		return fmt.Errorf("invalid Unit variant: %d", b)
	}
	*u = Unit(b)
	return nil
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

type Farm struct {
	Version           uint32
	ID                uint32
	Name              scale.Bytes
	TwinID            uint32
	PricingPolicyID   uint32
	CertificationType CertificationType
	PublicIPs         scale.Vec[PublicIP]
	DedicatedFarm     bool
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
	Version           uint32
	ID                uint32
	FarmID            uint32
	TwinID            uint32
	Resources         Resources
	Location          Location
	Country           scale.Bytes
	City              scale.Bytes
	PublicConfig      scale.Option[PublicConfig]
	Created           uint64
	FarmingPolicyID   uint32
	Interfaces        scale.Vec[Interface]
	CertificationType CertificationType
	SecureBoot        bool
	Virtualized       bool
	SerialNumber      scale.Bytes
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
	Timestamp         uint64
	CertificationType CertificationType
}
