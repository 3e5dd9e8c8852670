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
	"github.com/blinklabs-io/gotfchain/ledger/current"
	"github.com/blinklabs-io/gotfchain/scale"
)

func twinFromCurrent(t current.Twin) Twin {
	return Twin{
		Version:   t.Version,
		ID:        t.ID,
		AccountID: AccountID(t.AccountID),
		IP:        scale.ToString(t.IP),
		Entities:  copyEach[EntityProof](t.Entities),
	}
}

func entityFromCurrent(e current.Entity) Entity {
	return Entity{
		Version:   e.Version,
		ID:        e.ID,
		Name:      scale.ToString(e.Name),
		AccountID: AccountID(e.AccountID),
		Country:   scale.ToString(e.Country),
		City:      scale.ToString(e.City),
	}
}

func publicIPFromCurrent(ip current.PublicIP) PublicIP {
	return PublicIP{
		IP:         scale.ToString(ip.IP),
		Gateway:    scale.ToString(ip.Gateway),
		ContractID: ip.ContractID,
	}
}

func farmingPolicyLimitFromCurrent(
	o scale.Option[current.FarmingPolicyLimit],
) *FarmingPolicyLimit {
	if !o.HasValue {
		return nil
	}
	return &FarmingPolicyLimit{
		FarmingPolicyID:   o.Value.FarmingPolicyID,
		CU:                optionPtr(o.Value.CU),
		SU:                optionPtr(o.Value.SU),
		End:               optionPtr(o.Value.End),
		NodeCount:         optionPtr(o.Value.NodeCount),
		NodeCertification: o.Value.NodeCertification,
	}
}

func farmFromCurrent(f current.Farm) Farm {
	return Farm{
		Version:             f.Version,
		ID:                  f.ID,
		Name:                scale.ToString(f.Name),
		TwinID:              f.TwinID,
		PricingPolicyID:     f.PricingPolicyID,
		Certification:       FarmCertification(f.Certification),
		PublicIPs:           convertEach(f.PublicIPs, publicIPFromCurrent),
		DedicatedFarm:       f.DedicatedFarm,
		FarmingPolicyLimits: farmingPolicyLimitFromCurrent(f.FarmingPolicyLimits),
	}
}

func interfaceFromCurrent(i current.Interface) Interface {
	return Interface{
		Name: scale.ToString(i.Name),
		Mac:  scale.ToString(i.Mac),
		IPs:  scale.ToStrings(i.IPs),
	}
}

func publicConfigFromCurrent(o scale.Option[current.PublicConfig]) *PublicConfig {
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

func nodeFromCurrent(n current.Node) Node {
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
		PublicConfig:    publicConfigFromCurrent(n.PublicConfig),
		Created:         n.Created,
		FarmingPolicyID: n.FarmingPolicyID,
		Interfaces:      convertEach(n.Interfaces, interfaceFromCurrent),
		Certification:   NodeCertification(n.Certification),
		SecureBoot:      n.SecureBoot,
		Virtualized:     n.Virtualized,
		SerialNumber:    scale.ToString(n.SerialNumber),
		ConnectionPrice: n.ConnectionPrice,
	}
}

func contractStateFromCurrent(s current.ContractState) ContractState {
	switch {
	case s.IsDeleted:
		return ContractState{
			Type:  ContractStateDeleted,
			Cause: Cause(s.AsDeleted),
		}
	case s.IsGracePeriod:
		return ContractState{
			Type:             ContractStateGracePeriod,
			GracePeriodBlock: s.AsGracePeriod,
		}
	default:
		return ContractState{Type: ContractStateCreated}
	}
}

func contractDataFromCurrent(d current.ContractData) ContractData {
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
			PublicIPsList:  convertEach(d.AsNodeContract.PublicIPsList, publicIPFromCurrent),
		}
	}
}

func contractFromCurrent(c current.Contract) Contract {
	return Contract{
		Version:    c.Version,
		State:      contractStateFromCurrent(c.State),
		ContractID: c.ContractID,
		TwinID:     c.TwinID,
		Body:       contractDataFromCurrent(c.ContractType),
	}
}

func policyFromCurrent(p current.Policy) Policy {
	return Policy{Value: p.Value, Unit: Unit(p.Unit)}
}

func pricingPolicyFromCurrent(p current.PricingPolicy) PricingPolicy {
	return PricingPolicy{
		Version:                    p.Version,
		ID:                         p.ID,
		Name:                       scale.ToString(p.Name),
		SU:                         policyFromCurrent(p.SU),
		CU:                         policyFromCurrent(p.CU),
		NU:                         policyFromCurrent(p.NU),
		IPU:                        policyFromCurrent(p.IPU),
		UniqueName:                 policyFromCurrent(p.UniqueName),
		DomainName:                 policyFromCurrent(p.DomainName),
		FoundationAccount:          AccountID(p.FoundationAccount),
		CertifiedSalesAccount:      AccountID(p.CertifiedSalesAccount),
		DiscountForDedicationNodes: p.DiscountForDedicationNodes,
	}
}

func farmingPolicyFromCurrent(p current.FarmingPolicy) FarmingPolicy {
	return FarmingPolicy{
		Version:           p.Version,
		ID:                p.ID,
		Name:              scale.ToString(p.Name),
		CU:                p.CU,
		SU:                p.SU,
		NU:                p.NU,
		IPv4:              p.IPv4,
		MinimalUptime:     p.MinimalUptime,
		PolicyCreated:     BlockNumber(p.PolicyCreated),
		PolicyEnd:         BlockNumber(p.PolicyEnd),
		Immutable:         p.Immutable,
		Default:           p.Default,
		NodeCertification: NodeCertification(p.NodeCertification),
		FarmCertification: FarmCertification(p.FarmCertification),
	}
}

func accountInfoFromCurrent(a current.AccountInfo) AccountInfo {
	return AccountInfo{
		Nonce:       a.Nonce,
		Consumers:   a.Consumers,
		Providers:   a.Providers,
		Sufficients: a.Sufficients,
		Data: AccountData{
			Free:       a.Data.Free.BigInt(),
			Reserved:   a.Data.Reserved.BigInt(),
			MiscFrozen: a.Data.MiscFrozen.BigInt(),
			FeeFrozen:  a.Data.FeeFrozen.BigInt(),
		},
	}
}

func contractResourcesFromCurrent(r current.ContractResources) ContractResources {
	return ContractResources{
		ContractID: r.ContractID,
		Used:       copyFields[Resources](r.Used),
	}
}

func contractBillFromCurrent(b current.ContractBill) ContractBill {
	return ContractBill{
		ContractID:    b.ContractID,
		Timestamp:     b.Timestamp,
		DiscountLevel: DiscountLevel(b.DiscountLevel),
		AmountBilled:  b.AmountBilled.BigInt(),
	}
}
