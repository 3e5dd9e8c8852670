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

package runtime_test

import (
	"testing"

	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/ledger/current"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallLookup(t *testing.T) {
	meta := test.Metadata()
	idx, call, err := meta.Call("TfgridModule", "create_twin")
	require.NoError(t, err)
	assert.Equal(t, runtime.CallIndex{Pallet: test.PalletTfgridModule, Call: 5}, idx)
	assert.Len(t, call.Fields, 1)

	pallet, byIndex, err := meta.CallByIndex(idx)
	require.NoError(t, err)
	assert.Equal(t, "TfgridModule", pallet.Name)
	assert.Equal(t, "create_twin", byIndex.Name)

	_, _, err = meta.Call("TfgridModule", "missing")
	assert.ErrorIs(t, err, runtime.ErrCallNotFound)
	_, _, err = meta.Call("Missing", "create_twin")
	assert.ErrorIs(t, err, runtime.ErrPalletNotFound)
}

func TestEventLookup(t *testing.T) {
	meta := test.Metadata()
	pallet, event, err := meta.Event(test.PalletSmartContractModule, 10)
	require.NoError(t, err)
	assert.Equal(t, "SmartContractModule", pallet.Name)
	assert.Equal(t, "ContractGracePeriodStarted", event.Name)
	_, _, err = meta.Event(test.PalletSmartContractModule, 99)
	assert.ErrorIs(t, err, runtime.ErrEventNotFound)
	_, _, err = meta.Event(99, 0)
	assert.ErrorIs(t, err, runtime.ErrPalletNotFound)
}

func TestSkipFarm(t *testing.T) {
	meta := test.Metadata()
	farm, err := scale.Encode(current.Farm{
		Version: 4,
		ID:      1,
		Name:    []byte("farm"),
		PublicIPs: []current.PublicIP{
			{IP: []byte("1.1.1.1/32"), Gateway: []byte("1.1.1.1"), ContractID: 3},
		},
		FarmingPolicyLimits: scale.Some(current.FarmingPolicyLimit{
			CU: scale.Some(uint64(1)),
		}),
	})
	require.NoError(t, err)
	trailer := []byte{0xde, 0xad}
	r := scale.NewReader(append(farm, trailer...))
	require.NoError(t, meta.Skip(r, test.TypeFarm))
	assert.Equal(t, len(farm), r.Position())
	assert.Equal(t, len(trailer), r.Remaining())
}

func TestSkipFields(t *testing.T) {
	meta := test.Metadata()
	_, event, err := meta.Event(test.PalletSmartContractModule, 2)
	require.NoError(t, err)
	data := test.DecodeHexString(
		"0700000000000000" + "0b000000" + "04000000",
	)
	r := scale.NewReader(data)
	fields, err := meta.SkipFields(r, event.Fields)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Len(t, fields[0], 8)
	assert.Equal(t, []byte{0x0b, 0, 0, 0}, fields[1])
	assert.True(t, r.EOF())

	_, err = meta.SkipFields(scale.NewReader(data[:10]), event.Fields)
	assert.ErrorIs(t, err, scale.ErrUnexpectedEnd)
}

func TestSkipPrimitivesAndCompact(t *testing.T) {
	meta := test.Metadata()
	testDefs := []struct {
		name   string
		typeID runtime.TypeID
		hex    string
	}{
		{"str", test.TypeStr, "0c616263"},
		{"compact", test.TypeCompactU32, "02000100"},
		{"u128", test.TypeU128, "01000000000000000000000000000000"},
		{"dispatch error module", test.TypeDispatchError, "03" + "0b" + "01000000"},
		{"dispatch error bad origin", test.TypeDispatchError, "02"},
		{"option none", test.TypeOptionU64, "00"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			r := scale.NewReader(test.DecodeHexString(testDef.hex))
			require.NoError(t, meta.Skip(r, testDef.typeID))
			assert.True(t, r.EOF())
		})
	}
}

func TestSkipErrors(t *testing.T) {
	meta := test.Metadata()
	err := meta.Skip(scale.NewReader([]byte{0x09}), test.TypeDispatchError)
	assert.Error(t, err)
	err = meta.Skip(scale.NewReader(nil), 9999)
	assert.ErrorIs(t, err, runtime.ErrTypeNotFound)

	// A self-referencing type never terminates on its own
	meta.Types[500] = runtime.Type{
		ID:     500,
		Kind:   runtime.KindComposite,
		Fields: []runtime.Field{{Name: "inner", Type: 500}},
	}
	err = meta.Skip(scale.NewReader(nil), 500)
	assert.ErrorIs(t, err, runtime.ErrTypeDepth)
}

func TestSkipBitSequence(t *testing.T) {
	meta := test.Metadata()
	meta.Types[600] = runtime.Type{ID: 600, Kind: runtime.KindBitSequence, Elem: test.TypeU8}
	meta.Types[601] = runtime.Type{ID: 601, Kind: runtime.KindBitSequence, Elem: test.TypeU32}
	testDefs := []struct {
		name   string
		typeID runtime.TypeID
		hex    string
		err    error
	}{
		{"u8 store", 600, "28" + "ff03", nil},
		{"u32 store", 601, "84" + "ffffffff" + "01000000", nil},
		{"short input", 601, "24" + "ffffff", scale.ErrUnexpectedEnd},
		// 2^64-1 bits must not wrap around to a small word count
		{"huge length", 601, "13ffffffffffffffff" + "00", scale.ErrUnexpectedEnd},
		{"huge length u8 store", 600, "13ffffffffffffffff" + "00", scale.ErrUnexpectedEnd},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			r := scale.NewReader(test.DecodeHexString(testDef.hex))
			err := meta.Skip(r, testDef.typeID)
			if testDef.err != nil {
				assert.ErrorIs(t, err, testDef.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.EOF())
		})
	}
}
