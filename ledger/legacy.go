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
	"github.com/blinklabs-io/gotfchain/ledger/legacy"
	"github.com/blinklabs-io/gotfchain/scale"
)

func farmCertificationFromLegacy(c legacy.CertificationType) FarmCertification {
	if c == legacy.CertificationTypeCertified {
		return FarmCertificationGold
	}
	return FarmCertificationNotCertified
}

func nodeCertificationFromLegacy(c legacy.CertificationType) NodeCertification {
	if c == legacy.CertificationTypeCertified {
		return NodeCertificationCertified
	}
	return NodeCertificationDiy
}

func twinFromLegacy(t legacy.Twin) Twin {
	return Twin{
		Version:   t.Version,
		ID:        t.ID,
		AccountID: AccountID(t.AccountID),
		IP:        scale.ToString(t.IP),
		Entities:  copyEach[EntityProof](t.Entities),
	}
}

func entityFromLegacy(e legacy.Entity) Entity {
	return Entity{
		Version:   e.Version,
		ID:        e.ID,
		Name:      scale.ToString(e.Name),
		AccountID: AccountID(e.AccountID),
		Country:   scale.ToString(e.Country),
		City:      scale.ToString(e.City),
	}
}

func publicIPFromLegacy(ip legacy.PublicIP) PublicIP {
	return PublicIP{
		IP:         scale.ToString(ip.IP),
		Gateway:    scale.ToString(ip.Gateway),
		ContractID: ip.ContractID,
	}
}

func farmFromLegacy(f legacy.Farm) Farm {
	return Farm{
		Version:         f.Version,
		ID:              f.ID,
		Name:            scale.ToString(f.Name),
		TwinID:          f.TwinID,
		PricingPolicyID: f.PricingPolicyID,
		Certification:   farmCertificationFromLegacy(f.CertificationType),
		PublicIPs:       convertEach(f.PublicIPs, publicIPFromLegacy),
		DedicatedFarm:   f.DedicatedFarm,
	}
}

func interfaceFromLegacy(i legacy.Interface) Interface {
	return Interface{
		Name: scale.ToString(i.Name),
		Mac:  scale.ToString(i.Mac),
		IPs:  scale.ToStrings(i.IPs),
	}
}

func publicConfigFromLegacy(o scale.Option[legacy.PublicConfig]) *PublicConfig {
	if !o.HasValue {
		return nil
	}
	return &PublicConfig{
		IPv4:   scale.ToString(o.Value.IPv4),
		IPv6:   scale.ToString(o.Value.IPv6),
		GW4:    scale.ToString(o.Value.GW4),
		GW6:    scale.ToString(o.Value.GW6),
		Domain: scale.ToString(o.Value.Domain),
	}
}

func nodeFromLegacy(n legacy.Node) Node {
	return Node{
		Version:   n.Version,
		ID:        n.ID,
		FarmID:    n.FarmID,
		TwinID:    n.TwinID,
		Resources: copyFields[Resources](n.Resources),
		Location: Location{
			Longitude: scale.ToString(n.Location.Longitude),
			Latitude:  scale.ToString(n.Location.Latitude),
		},
		Country:         scale.ToString(n.Country),
		City:            scale.ToString(n.City),
		PublicConfig:    publicConfigFromLegacy(n.PublicConfig),
		Created:         n.Created,
		FarmingPolicyID: n.FarmingPolicyID,
		Interfaces:      convertEach(n.Interfaces, interfaceFromLegacy),
		Certification:   nodeCertificationFromLegacy(n.CertificationType),
		SecureBoot:      n.SecureBoot,
		Virtualized:     n.Virtualized,
		SerialNumber:    scale.ToString(n.SerialNumber),
		ConnectionPrice: 0,
	}
}

func contractStateFromLegacy(s legacy.ContractState) ContractState {
	if s.IsDeleted {
		return ContractState{
			Type:  ContractStateDeleted,
			Cause: Cause(s.AsDeleted),
		}
	}
	return ContractState{Type: ContractStateCreated}
}

func contractDataFromLegacy(d legacy.ContractData) ContractData {
	switch {
	case d.IsNameContract:
		return NameContract{Name: scale.ToString(d.AsNameContract.Name)}
	case d.IsRentContract:
		return RentContract{NodeID: d.AsRentContract.NodeID}
	default:
		return NodeContract{
			NodeID:         d.AsNodeContract.NodeID,
			DeploymentData: d.AsNodeContract.DeploymentData,
			DeploymentHash: d.AsNodeContract.DeploymentHash,
			PublicIPs:      d.AsNodeContract.PublicIPs,
			PublicIPsList:  convertEach(d.AsNodeContract.PublicIPsList, publicIPFromLegacy),
		}
	}
}

func contractFromLegacy(c legacy.Contract) Contract {
	return Contract{
		Version:    c.Version,
		State:      contractStateFromLegacy(c.State),
		ContractID: c.ContractID,
		TwinID:     c.TwinID,
		Body:       contractDataFromLegacy(c.ContractType),
	}
}

func policyFromLegacy(p legacy.Policy) Policy {
	return Policy{Value: p.Value, Unit: Unit(p.Unit)}
}

func pricingPolicyFromLegacy(p legacy.PricingPolicy) PricingPolicy {
	return PricingPolicy{
		Version:                    p.Version,
		ID:                         p.ID,
		Name:                       scale.ToString(p.Name),
		SU:                         policyFromLegacy(p.SU),
		CU:                         policyFromLegacy(p.CU),
		NU:                         policyFromLegacy(p.NU),
		IPU:                        policyFromLegacy(p.IPU),
		UniqueName:                 policyFromLegacy(p.UniqueName),
		DomainName:                 policyFromLegacy(p.DomainName),
		FoundationAccount:          AccountID(p.FoundationAccount),
		CertifiedSalesAccount:      AccountID(p.CertifiedSalesAccount),
		DiscountForDedicationNodes: p.DiscountForDedicationNodes,
	}
}

// The legacy timestamp and certification type have no counterpart and are dropped
func farmingPolicyFromLegacy(p legacy.FarmingPolicy) FarmingPolicy {
	return FarmingPolicy{
		Version:           p.Version,
		ID:                p.ID,
		Name:              scale.ToString(p.Name),
		CU:                p.CU,
		SU:                p.SU,
		NU:                p.NU,
		IPv4:              p.IPv4,
		MinimalUptime:     0,
		PolicyCreated:     0,
		PolicyEnd:         0,
		Immutable:         false,
		Default:           false,
		NodeCertification: NodeCertificationDiy,
		FarmCertification: FarmCertificationNotCertified,
	}
}

func accountDataFromLegacy(d legacy.AccountData) AccountData {
	return AccountData{
		Free:       d.Free.BigInt(),
		Reserved:   d.Reserved.BigInt(),
		MiscFrozen: d.MiscFrozen.BigInt(),
		FeeFrozen:  d.FeeFrozen.BigInt(),
	}
}

func accountInfoFromLegacy(a legacy.AccountInfo) AccountInfo {
	return AccountInfo{
		Nonce:     a.Nonce,
		Consumers: a.RefCount,
		Data:      accountDataFromLegacy(a.Data),
	}
}

func accountInfoFromDualRefCount(a legacy.AccountInfoDualRefCount) AccountInfo {
	return AccountInfo{
		Nonce:     a.Nonce,
		Consumers: a.Consumers,
		Providers: a.Providers,
		Data:      accountDataFromLegacy(a.Data),
	}
}
