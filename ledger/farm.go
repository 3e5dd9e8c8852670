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

type FarmCertification uint8

const (
	FarmCertificationNotCertified FarmCertification = 0
	FarmCertificationGold         FarmCertification = 1
)

func (c FarmCertification) String() string {
	switch c {
	case FarmCertificationNotCertified:
		return "Not Certified"
	case FarmCertificationGold:
		return "Gold"
	default:
		return "Unknown"
	}
}

func (c FarmCertification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type PublicIP struct {
	IP         string
	Gateway    string
	ContractID uint64
}

type FarmingPolicyLimit struct {
	FarmingPolicyID   uint32
	CU                *uint64
	SU                *uint64
	End               *uint64
	NodeCount         *uint32
	NodeCertification bool
}

type Farm struct {
	Version         uint32
	ID              uint32
	Name            string
	TwinID          uint32
	PricingPolicyID uint32
	// Legacy farms map Diy to NotCertified and Certified to Gold
	Certification FarmCertification
	PublicIPs     []PublicIP
	DedicatedFarm bool
	// Always nil for legacy farms, which predate farming policy limits
	FarmingPolicyLimits *FarmingPolicyLimit
}
