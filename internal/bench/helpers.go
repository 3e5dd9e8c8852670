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

// Package bench provides benchmark fixtures for the decode and signing paths.
package bench

import (
	"bytes"

	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/ledger/current"
	"github.com/blinklabs-io/gotfchain/scale"
)

// farmDeletedRecord is a FarmDeleted(3) record applied by extrinsic 1, without topics
const farmDeletedRecord = "00 01000000 0b 02 03000000 00"

// EventLogFixture returns an encoded System.Events value holding count
// FarmDeleted records
func EventLogFixture(count int) []byte {
	record := test.DecodeHexString(farmDeletedRecord)
	var buf bytes.Buffer
	buf.Write(scale.EncodeCompact(uint64(count))) // #nosec G115
	for range count {
		buf.Write(record)
	}
	return buf.Bytes()
}

// NodeContractFixture returns an encoded current layout node contract with
// publicIPs addresses attached
func NodeContractFixture(publicIPs int) []byte {
	body := current.NodeContract{
		NodeID:         12,
		DeploymentData: bytes.Repeat([]byte("d"), 256),
		DeploymentHash: bytes.Repeat([]byte("h"), 32),
		PublicIPs:      uint32(publicIPs), // #nosec G115
	}
	for range publicIPs {
		body.PublicIPsList = append(body.PublicIPsList, current.PublicIP{
			IP:      []byte("185.206.122.33/24"),
			Gateway: []byte("185.206.122.1"),
		})
	}
	return scale.MustEncode(current.Contract{
		Version:      4,
		ContractID:   1,
		TwinID:       2,
		ContractType: current.ContractData{IsNodeContract: true, AsNodeContract: body},
	})
}
