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

package substrate

import (
	"errors"
	"strings"
	"testing"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func lookupID(id uint64) types.Si1LookupTypeID {
	return types.Si1LookupTypeID{UCompact: types.NewUCompactFromUInt(id)}
}

func TestConvertMetadata(t *testing.T) {
	meta := &types.Metadata{Version: 14}
	meta.AsMetadataV14.Lookup.Types = []types.PortableTypeV14{
		{
			ID: lookupID(0),
			Type: types.Si1Type{
				Def: types.Si1TypeDef{
					IsPrimitive: true,
					Primitive:   types.Si1TypeDefPrimitive{Si0TypeDefPrimitive: types.IsU32},
				},
			},
		},
		{
			ID: lookupID(1),
			Type: types.Si1Type{
				Path: types.Si1Path{"pallet_tfgrid", "pallet", "Event"},
				Def: types.Si1TypeDef{
					IsVariant: true,
					Variant: types.Si1TypeDefVariant{
						Variants: []types.Si1Variant{
							{
								Name:  "FarmDeleted",
								Index: 2,
								Fields: []types.Si1Field{
									{Type: lookupID(0), HasTypeName: true, TypeName: "u32"},
								},
							},
						},
					},
				},
			},
		},
		{
			ID: lookupID(2),
			Type: types.Si1Type{
				Def: types.Si1TypeDef{
					IsSequence: true,
					Sequence:   types.Si1TypeDefSequence{Type: lookupID(0)},
				},
			},
		},
		{
			ID: lookupID(3),
			Type: types.Si1Type{
				Def: types.Si1TypeDef{
					IsCompact: true,
					Compact:   types.Si1TypeDefCompact{Type: lookupID(0)},
				},
			},
		},
	}
	meta.AsMetadataV14.Pallets = []types.PalletMetadataV14{
		{
			Name:      "TfgridModule",
			Index:     11,
			HasEvents: true,
			Events:    types.EventMetadataV14{Type: lookupID(1)},
		},
	}

	converted, err := ConvertMetadata(meta)
	require.NoError(t, err)
	require.Len(t, converted.Types, 4)

	pallet, variant, err := converted.Event(11, 2)
	require.NoError(t, err)
	assert.Equal(t, "TfgridModule", pallet.Name)
	assert.Equal(t, "FarmDeleted", variant.Name)
	require.Len(t, variant.Fields, 1)
	assert.Equal(t, runtime.TypeID(0), variant.Fields[0].Type)
	assert.Equal(t, "u32", variant.Fields[0].TypeName)

	u32, err := converted.Type(0)
	require.NoError(t, err)
	assert.Equal(t, runtime.KindPrimitive, u32.Kind)
	assert.Equal(t, runtime.PrimitiveU32, u32.Primitive)

	event, err := converted.Type(1)
	require.NoError(t, err)
	assert.Equal(t, "Event", event.Name())

	seq, err := converted.Type(2)
	require.NoError(t, err)
	assert.Equal(t, runtime.KindSequence, seq.Kind)

	compact, err := converted.Type(3)
	require.NoError(t, err)
	assert.Equal(t, runtime.KindCompact, compact.Kind)
}

func TestConvertMetadataRejectsOtherVersions(t *testing.T) {
	for _, version := range []uint8{12, 13, 15} {
		_, err := ConvertMetadata(&types.Metadata{Version: version})
		assert.ErrorIs(t, err, ErrUnsupportedMetadata, "version %d", version)
	}
}

func TestConvertBlock(t *testing.T) {
	res := &rpcBlock{}
	res.Block.Header.ParentHash = "0x11" + strings.Repeat("00", 31)
	res.Block.Header.Number = "0x1a"
	res.Block.Header.StateRoot = "0x22" + strings.Repeat("00", 31)
	res.Block.Header.ExtrinsicsRoot = "0x33" + strings.Repeat("00", 31)
	res.Block.Header.Digest.Logs = []string{"0x0601"}
	res.Block.Extrinsics = []string{"0x280403000b", "0x1004000100"}

	hash := ledger.Hash{0x44}
	block, err := convertBlock(hash, res)
	require.NoError(t, err)
	assert.Equal(t, hash, block.Hash)
	assert.Equal(t, ledger.BlockNumber(26), block.Header.Number)
	assert.Equal(t, byte(0x11), block.Header.ParentHash[0])
	assert.Equal(t, byte(0x33), block.Header.ExtrinsicsRoot[0])
	assert.Equal(t, [][]byte{{0x06, 0x01}}, block.Header.Digest)
	require.Len(t, block.Extrinsics, 2)
	assert.Equal(t, []byte{0x10, 0x04, 0x00, 0x01, 0x00}, block.Extrinsics[1])

	res.Block.Header.Number = "zz"
	_, err = convertBlock(hash, res)
	assert.Error(t, err)
}

func TestConvertStatus(t *testing.T) {
	inBlock := types.ExtrinsicStatus{IsInBlock: true, AsInBlock: types.Hash{0x01}}
	assert.Equal(
		t,
		tfchain.TxUpdate{Status: tfchain.TxStatusInBlock, BlockHash: ledger.Hash{0x01}},
		convertStatus(inBlock),
	)
	assert.Equal(t, tfchain.TxStatusReady, convertStatus(types.ExtrinsicStatus{IsReady: true}).Status)
	assert.Equal(t, tfchain.TxStatusInvalid, convertStatus(types.ExtrinsicStatus{IsInvalid: true}).Status)
	assert.Equal(t, tfchain.TxStatusDropped, convertStatus(types.ExtrinsicStatus{IsDropped: true}).Status)
	assert.Equal(
		t,
		tfchain.TxStatusFinalized,
		convertStatus(types.ExtrinsicStatus{IsFinalized: true}).Status,
	)
	assert.Equal(t, tfchain.TxStatusUnknown, convertStatus(types.ExtrinsicStatus{}).Status)
}

type fakeSubscription struct {
	errs         chan error
	unsubscribed chan struct{}
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{
		errs:         make(chan error, 1),
		unsubscribed: make(chan struct{}),
	}
}

func (s *fakeSubscription) Err() <-chan error {
	return s.errs
}

func (s *fakeSubscription) Unsubscribe() {
	close(s.unsubscribed)
}

func TestWatcherForwardsStatuses(t *testing.T) {
	defer goleak.VerifyNone(t)
	sub := newFakeSubscription()
	statuses := make(chan types.ExtrinsicStatus)
	w := newWatcher(sub, statuses)
	go func() {
		statuses <- types.ExtrinsicStatus{IsReady: true}
	}()
	update := <-w.Updates()
	assert.Equal(t, tfchain.TxStatusReady, update.Status)
	w.Close()
	w.Close()
	<-sub.unsubscribed
}

func TestWatcherReportsSubscriptionError(t *testing.T) {
	defer goleak.VerifyNone(t)
	sub := newFakeSubscription()
	w := newWatcher(sub, make(chan types.ExtrinsicStatus))
	boom := errors.New("websocket closed")
	sub.errs <- boom
	err := <-w.Err()
	assert.ErrorIs(t, err, boom)
	w.Close()
}

func TestWatcherSubscriptionEnd(t *testing.T) {
	defer goleak.VerifyNone(t)
	sub := newFakeSubscription()
	w := newWatcher(sub, make(chan types.ExtrinsicStatus))
	close(sub.errs)
	_, ok := <-w.Updates()
	assert.False(t, ok)
	w.Close()
}
