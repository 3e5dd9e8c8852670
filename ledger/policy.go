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

type Unit uint8

const (
	UnitBytes Unit = iota
	UnitKilobytes
	UnitMegabytes
	UnitGigabytes
	UnitTerrabytes
)

func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "Bytes"
	case UnitKilobytes:
		return "Kilobytes"
	case UnitMegabytes:
		return "Megabytes"
	case UnitGigabytes:
		return "Gigabytes"
	case UnitTerrabytes:
		return "Terrabytes"
	default:
		return "Unknown"
	}
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

type Policy struct {
	Value uint32
	Unit  Unit
}

type PricingPolicy struct {
	Version                    uint32
	ID                         uint32
	Name                       string
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

// FarmingPolicy fields missing from legacy data are reported as: MinimalUptime 0,
// PolicyCreated 0, PolicyEnd 0, Immutable false, Default false, NodeCertification
// Diy and FarmCertification NotCertified
type FarmingPolicy struct {
	Version           uint32
	ID                uint32
	Name              string
	CU                uint32
	SU                uint32
	NU                uint32
	IPv4              uint32
	MinimalUptime     uint16
	PolicyCreated     BlockNumber
	PolicyEnd         BlockNumber
	Immutable         bool
	Default           bool
	NodeCertification NodeCertification
	FarmCertification FarmCertification
}
