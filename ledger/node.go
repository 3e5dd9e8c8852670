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

type NodeCertification uint8

const (
	NodeCertificationDiy       NodeCertification = 0
	NodeCertificationCertified NodeCertification = 1
)

func (c NodeCertification) String() string {
	switch c {
	case NodeCertificationDiy:
		return "DIY"
	case NodeCertificationCertified:
		return "Certified"
	default:
		return "Unknown"
	}
}

func (c NodeCertification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Resources are node capacity units. MRU, SRU and HRU are bytes, CRU is logical cores
type Resources struct {
	HRU uint64
	SRU uint64
	CRU uint64
	MRU uint64
}

func (r Resources) Equal(other Resources) bool {
	return r.HRU == other.HRU &&
		r.SRU == other.SRU &&
		r.CRU == other.CRU &&
		r.MRU == other.MRU
}

type Location struct {
	Longitude string
	Latitude  string
}

type PublicConfig struct {
	IPv4   string
	IPv6   string
	GW4    string
	GW6    string
	Domain string
}

type Interface struct {
	Name string
	Mac  string
	IPs  []string
}

type Node struct {
	Version         uint32
	ID              uint32
	FarmID          uint32
	TwinID          uint32
	Resources       Resources
	Location        Location
	Country         string
	City            string
	PublicConfig    *PublicConfig
	// Unix timestamp in seconds
	Created         uint64
	FarmingPolicyID uint32
	Interfaces      []Interface
	Certification   NodeCertification
	SecureBoot      bool
	Virtualized     bool
	SerialNumber    string
	// Unknown in legacy data, reported as 0
	ConnectionPrice uint32
}
