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
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/blinklabs-io/gotfchain/cmd/common"
	"github.com/blinklabs-io/gotfchain/event"
	"github.com/blinklabs-io/gotfchain/extrinsic"
	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliceAccount(t *testing.T) ledger.AccountID {
	t.Helper()
	account, err := ledger.NewAccountID(
		test.DecodeHexString("d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"),
	)
	require.NoError(t, err)
	return account
}

func TestWriteTwin(t *testing.T) {
	var buf bytes.Buffer
	twin := ledger.Twin{ID: 7, AccountID: aliceAccount(t), IP: "::1"}
	require.NoError(t, writeTwin(&buf, twin))
	assert.Equal(
		t,
		"Twin details for twin 7\n"+
			"Account ID 5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY\n"+
			"IP: ::1\n",
		buf.String(),
	)
}

func TestWriteFarm(t *testing.T) {
	var buf bytes.Buffer
	farm := ledger.Farm{
		Version:       4,
		ID:            1,
		Name:          "freefarm",
		TwinID:        2,
		Certification: ledger.FarmCertificationGold,
		PublicIPs: []ledger.PublicIP{
			{IP: "185.206.122.33/24", Gateway: "185.206.122.1", ContractID: 9},
		},
	}
	require.NoError(t, writeFarm(&buf, farm))
	assert.Equal(
		t,
		"Farm details for farm freefarm (ID: 1)\n"+
			"Twin ID: 2\n"+
			"Certification type Gold\n"+
			"Public IPs:\n"+
			"\tIPv4: 185.206.122.33/24 (gw: 185.206.122.1)\n"+
			"\tContract id: 9\n"+
			"version: 4\n",
		buf.String(),
	)
}

func TestWriteNodeAlignsInterfaces(t *testing.T) {
	var buf bytes.Buffer
	node := ledger.Node{
		ID:        3,
		FarmID:    1,
		TwinID:    8,
		Resources: ledger.Resources{CRU: 4, MRU: 1 << 30},
		Country:   "Belgium",
		City:      "Lochristi",
		Location:  ledger.Location{Latitude: "51.1", Longitude: "3.8"},
		Interfaces: []ledger.Interface{
			{Name: "zos", Mac: "aa:bb", IPs: []string{"10.0.0.2"}},
			{Name: "eth0", Mac: "cc:dd"},
		},
	}
	require.NoError(t, writeNode(&buf, node))
	out := buf.String()
	assert.Contains(t, out, "\tCRU: 4 (logical cores)\n")
	assert.Contains(t, out, "\tMRU: 1073741824 (1.07 GB | 1.00 GiB)\n")
	assert.Contains(t, out, "Location: Lochristi, Belgium (51.1 lat 3.8 long)\n")
	assert.Contains(t, out, "\tzos:  aa:bb\n")
	assert.Contains(t, out, "\teth0: cc:dd\n")
	assert.Contains(t, out, "\t      10.0.0.2\n")
	assert.NotContains(t, out, "Public config")
	assert.True(t, strings.HasSuffix(out, "MOBO serial number: \n"))
}

func TestWriteContract(t *testing.T) {
	testDefs := []struct {
		name     string
		contract ledger.Contract
		expected string
	}{
		{
			name: "name",
			contract: ledger.Contract{
				ContractID: 5,
				TwinID:     2,
				Body:       ledger.NameContract{Name: "gateway"},
			},
			expected: "Contract details for contract 5\nState: Created\nTwin id: 2\nName: gateway\n",
		},
		{
			name: "rent in grace period",
			contract: ledger.Contract{
				ContractID: 6,
				TwinID:     2,
				State: ledger.ContractState{
					Type:             ledger.ContractStateGracePeriod,
					GracePeriodBlock: 1200,
				},
				Body: ledger.RentContract{NodeID: 11},
			},
			expected: "Contract details for contract 6\n" +
				"State: In grace period until block 1200\n" +
				"Twin id: 2\n" +
				"Rented node id: 11\n",
		},
		{
			name: "node",
			contract: ledger.Contract{
				ContractID: 7,
				TwinID:     3,
				State: ledger.ContractState{
					Type:  ledger.ContractStateDeleted,
					Cause: ledger.CauseOutOfFunds,
				},
				Body: ledger.NodeContract{
					NodeID:         4,
					DeploymentData: []byte("data"),
					DeploymentHash: []byte("hash"),
					PublicIPs:      1,
					PublicIPsList:  []ledger.PublicIP{{IP: "1.2.3.4/24", Gateway: "1.2.3.1"}},
				},
			},
			expected: "Contract details for contract 7\n" +
				"State: Out of funds\n" +
				"Twin id: 3\n" +
				"Node id: 4\n" +
				"Deployment data: data\n" +
				"Deployment hash: hash\n" +
				"IP: 1.2.3.4/24\n" +
				"Gateway: 1.2.3.1\n" +
				"Number of public ips: 1\n",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeContract(&buf, testDef.contract))
			assert.Equal(t, testDef.expected, buf.String())
		})
	}
}

func TestWriteBalance(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(
		t,
		writeBalance(&buf, aliceAccount(t), ledger.AccountData{Free: big.NewInt(1500)}),
	)
	assert.Equal(
		t,
		"Free balance for account 5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY: 1500 TFT\n",
		buf.String(),
	)
	buf.Reset()
	require.NoError(t, writeBalance(&buf, aliceAccount(t), ledger.AccountData{}))
	assert.Contains(t, buf.String(), ": 0 TFT")
}

func TestWriteBlock(t *testing.T) {
	raw := test.DecodeHexString("1004000100")
	block := &ledger.Block{
		Hash:       ledger.Hash{0x01},
		Header:     ledger.Header{Number: 42},
		Extrinsics: [][]byte{raw, {0x04, 0x07}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeBlock(&buf, test.Metadata(), block))
	out := buf.String()
	assert.Contains(t, out, "Block 42\n")
	assert.Contains(t, out, "\t0: "+extrinsic.Hash(raw).String()+" System.remark\n")
	assert.Contains(t, out, "\t1: ")
}

func TestWriteEvents(t *testing.T) {
	events := []event.Event{
		event.FarmDeleted{
			Header: event.Header{
				Phase:  event.Phase{Type: event.PhaseApplyExtrinsic, ExtrinsicIndex: 1},
				Pallet: "TfgridModule",
				Name:   "FarmDeleted",
			},
			FarmID: 3,
		},
		event.Unrecognized{
			Header: event.Header{
				Phase:  event.Phase{Type: event.PhaseFinalization},
				Pallet: "TfgridModule",
				Name:   "FarmStored",
			},
			Err: scale.NewDecodeError("FarmStored", scale.ErrUnexpectedEnd),
		},
	}
	var buf bytes.Buffer
	require.NoError(t, writeEvents(&buf, events))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ApplyExtrinsic(1)\tTfgridModule.FarmDeleted", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "TfgridModule.FarmStored"))
	assert.Contains(t, lines[2], "undecoded: decode FarmStored")
}

func TestRenderFormats(t *testing.T) {
	twin := ledger.Twin{ID: 7, AccountID: aliceAccount(t), IP: "::1"}
	text := func(w io.Writer) error { return writeTwin(w, twin) }

	var buf bytes.Buffer
	require.NoError(t, render(&buf, common.OutputJSON, twin, text))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", decoded["AccountID"])

	buf.Reset()
	require.NoError(t, render(&buf, common.OutputCBOR, twin, text))
	var fromCbor struct {
		ID uint32
		IP string
	}
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &fromCbor))
	assert.Equal(t, uint32(7), fromCbor.ID)
	assert.Equal(t, "::1", fromCbor.IP)

	buf.Reset()
	require.NoError(t, render(&buf, common.OutputText, twin, text))
	assert.True(t, strings.HasPrefix(buf.String(), "Twin details for twin 7"))
}
