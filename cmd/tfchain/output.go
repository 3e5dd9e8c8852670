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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/blinklabs-io/gotfchain/cmd/common"
	"github.com/blinklabs-io/gotfchain/event"
	"github.com/blinklabs-io/gotfchain/extrinsic"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/fxamacker/cbor/v2"
)

func (c *cli) render(v any, text func(io.Writer) error) error {
	return render(c.out, c.flags.Output, v, text)
}

func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case common.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case common.OutputCBOR:
		data, err := cbor.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return text(w)
	}
}

// printer keeps the first write error so renderers can print unconditionally
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func writeTwin(w io.Writer, twin ledger.Twin) error {
	p := &printer{w: w}
	p.printf("Twin details for twin %d\n", twin.ID)
	p.printf("Account ID %s\n", twin.AccountID)
	p.printf("IP: %s\n", twin.IP)
	return p.err
}

func writeFarm(w io.Writer, farm ledger.Farm) error {
	p := &printer{w: w}
	p.printf("Farm details for farm %s (ID: %d)\n", farm.Name, farm.ID)
	p.printf("Twin ID: %d\n", farm.TwinID)
	p.printf("Certification type %s\n", farm.Certification)
	if len(farm.PublicIPs) > 0 {
		p.printf("Public IPs:\n")
		for _, ip := range farm.PublicIPs {
			p.printf("\tIPv4: %s (gw: %s)\n", ip.IP, ip.Gateway)
			p.printf("\tContract id: %d\n", ip.ContractID)
		}
	}
	p.printf("version: %d\n", farm.Version)
	return p.err
}

const (
	gigabyte = 1_000_000_000
	gibibyte = 1 << 30
	terabyte = 1_000_000_000_000
	tebibyte = 1 << 40
)

func writeNode(w io.Writer, node ledger.Node) error {
	p := &printer{w: w}
	res := node.Resources
	p.printf("Node details for node %d\n", node.ID)
	p.printf("Farm ID: %d\n", node.FarmID)
	p.printf("Twin ID: %d\n", node.TwinID)
	p.printf("Node resources:\n")
	p.printf("\tCRU: %d (logical cores)\n", res.CRU)
	p.printf(
		"\tMRU: %d (%.02f GB | %.02f GiB)\n",
		res.MRU,
		float64(res.MRU)/gigabyte,
		float64(res.MRU)/gibibyte,
	)
	p.printf(
		"\tSRU: %d (%.02f TB | %.02f TiB)\n",
		res.SRU,
		float64(res.SRU)/terabyte,
		float64(res.SRU)/tebibyte,
	)
	p.printf(
		"\tHRU: %d (%.02f TB | %.02f TiB)\n",
		res.HRU,
		float64(res.HRU)/terabyte,
		float64(res.HRU)/tebibyte,
	)
	p.printf(
		"Location: %s, %s (%s lat %s long)\n",
		node.City,
		node.Country,
		node.Location.Latitude,
		node.Location.Longitude,
	)
	created := time.Unix(int64(node.Created), 0).Local() // #nosec G115
	p.printf("Created at: %s\n", created.Format(time.RFC1123Z))
	p.printf("Farming policy: %d\n", node.FarmingPolicyID)
	if len(node.Interfaces) == 0 {
		p.printf("No known interfaces\n")
	} else {
		// Align MAC and IP addresses in a single column
		nameWidth := 0
		for _, iface := range node.Interfaces {
			nameWidth = max(nameWidth, len(iface.Name))
		}
		p.printf("Interfaces:\n")
		for _, iface := range node.Interfaces {
			p.printf(
				"\t%s: %*s\n",
				iface.Name,
				nameWidth-len(iface.Name)+len(iface.Mac),
				iface.Mac,
			)
			for _, ip := range iface.IPs {
				p.printf("\t%*s\n", len(ip)+nameWidth+2, ip)
			}
		}
	}
	if cfg := node.PublicConfig; cfg != nil {
		p.printf("Public config:\n")
		p.printf("\tIPv4: %s (gw: %s)\n", cfg.IPv4, cfg.GW4)
		p.printf("\tIPv6: %s (gw: %s)\n", cfg.IPv6, cfg.GW6)
		p.printf("\tDomain: %s\n", cfg.Domain)
	}
	p.printf("Certification type %s\n", node.Certification)
	p.printf("Secure boot enabled: %t\n", node.SecureBoot)
	p.printf("Virtualized: %t\n", node.Virtualized)
	p.printf("MOBO serial number: %s\n", node.SerialNumber)
	return p.err
}

func writeContract(w io.Writer, contract ledger.Contract) error {
	p := &printer{w: w}
	p.printf("Contract details for contract %d\n", contract.ContractID)
	p.printf("State: %s\n", contract.State)
	p.printf("Twin id: %d\n", contract.TwinID)
	switch body := contract.Body.(type) {
	case ledger.NameContract:
		p.printf("Name: %s\n", body.Name)
	case ledger.NodeContract:
		p.printf("Node id: %d\n", body.NodeID)
		p.printf("Deployment data: %s\n", scale.ToString(body.DeploymentData))
		p.printf("Deployment hash: %s\n", scale.ToString(body.DeploymentHash))
		for _, ip := range body.PublicIPsList {
			p.printf("IP: %s\n", ip.IP)
			p.printf("Gateway: %s\n", ip.Gateway)
		}
		p.printf("Number of public ips: %d\n", body.PublicIPs)
	case ledger.RentContract:
		p.printf("Rented node id: %d\n", body.NodeID)
	}
	return p.err
}

func writeBalance(w io.Writer, account ledger.AccountID, balance ledger.AccountData) error {
	free := balance.Free
	if free == nil {
		free = new(big.Int)
	}
	_, err := fmt.Fprintf(w, "Free balance for account %s: %s TFT\n", account, free)
	return err
}

func writeBlock(w io.Writer, meta *runtime.Metadata, block *ledger.Block) error {
	p := &printer{w: w}
	p.printf("Block %d\n", block.Header.Number)
	p.printf("Hash: %s\n", block.Hash)
	p.printf("Parent: %s\n", block.Header.ParentHash)
	p.printf("State root: %s\n", block.Header.StateRoot)
	p.printf("Extrinsics root: %s\n", block.Header.ExtrinsicsRoot)
	p.printf("Extrinsics:\n")
	for i, raw := range block.Extrinsics {
		hash := extrinsic.Hash(raw)
		xt, err := extrinsic.Decode(raw)
		if err != nil {
			p.printf("\t%d: %s (%v)\n", i, hash, err)
			continue
		}
		name := "unknown call"
		if call, err := xt.DecodeCall(meta); err == nil {
			name = call.Module + "." + call.Function
		}
		if xt.Signed {
			p.printf("\t%d: %s %s signed by %s (nonce %d)\n", i, hash, name, xt.Signer, xt.Nonce)
		} else {
			p.printf("\t%d: %s %s\n", i, hash, name)
		}
	}
	return p.err
}

func writeEvents(w io.Writer, events []event.Event) error {
	p := &printer{w: w}
	for _, evt := range events {
		h := evt.EventHeader()
		p.printf("%s\t%s.%s\n", h.Phase, h.Pallet, h.Name)
		if u, ok := evt.(event.Unrecognized); ok && u.Err != nil {
			p.printf("\tundecoded: %v\n", u.Err)
		}
	}
	return p.err
}
