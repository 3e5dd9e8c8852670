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

package tfchain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/extrinsic"
	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/internal/test/mockconn"
	"github.com/blinklabs-io/gotfchain/keys"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/ledger/current"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/blinklabs-io/gotfchain/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const ed25519Seed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"

var (
	genesisHash  = ledger.Hash{0x0e}
	inBlockHash  = ledger.Hash{0xb1}
	finalizedRef = ledger.Hash{0xf1}
)

func newSubmitClient(t *testing.T, watches ...mockconn.Watch) (*tfchain.Client, *mockconn.Connection, keys.Signer) {
	t.Helper()
	signer, err := keys.NewEd25519(test.DecodeHexString(ed25519Seed))
	require.NoError(t, err)
	client, conn := newTestClient(t, tfchain.WithSigner(signer))
	conn.SetRuntimeVersion(tfchain.RuntimeVersion{SpecName: "substrate-threefold", SpecVersion: 140, TransactionVersion: 2})
	conn.AddBlock(&ledger.Block{Hash: genesisHash})
	for _, watch := range watches {
		conn.AddWatch(watch)
	}
	return client, conn, signer
}

func updates(statuses ...tfchain.TxStatus) []tfchain.TxUpdate {
	ret := make([]tfchain.TxUpdate, 0, len(statuses))
	for _, status := range statuses {
		update := tfchain.TxUpdate{Status: status}
		switch status {
		case tfchain.TxStatusInBlock:
			update.BlockHash = inBlockHash
		case tfchain.TxStatusFinalized:
			update.BlockHash = finalizedRef
		}
		ret = append(ret, update)
	}
	return ret
}

func TestSubmitInBlock(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, conn, signer := newSubmitClient(
		t,
		mockconn.Watch{
			Updates: updates(tfchain.TxStatusReady, tfchain.TxStatusInBlock),
			Hold:    true,
		},
	)
	conn.SetStorage(
		mustKey(t, storage.ItemSystemAccount, signer.AccountID()),
		scale.MustEncode(current.AccountInfo{Nonce: 3, Providers: 1}),
	)
	call := extrinsic.NewCall("TfgridModule", "create_farm", []byte("farm"))
	hash, err := client.Submit(context.Background(), call, tfchain.TxStatusInBlock)
	require.NoError(t, err)
	require.NotNil(t, hash)
	assert.Equal(t, inBlockHash, *hash)

	submitted := conn.Submitted()
	require.Len(t, submitted, 1)
	xt, err := extrinsic.Decode(submitted[0])
	require.NoError(t, err)
	assert.True(t, xt.Signed)
	assert.Equal(t, signer.AccountID(), xt.Signer)
	assert.Equal(t, uint64(3), xt.Nonce)

	callData, err := extrinsic.EncodeCall(test.Metadata(), call)
	require.NoError(t, err)
	assert.Equal(t, callData, xt.Call)
	payload, err := extrinsic.SigningPayload(callData, extrinsic.Options{
		SpecVersion:        140,
		TransactionVersion: 2,
		GenesisHash:        genesisHash,
		Nonce:              3,
	})
	require.NoError(t, err)
	assert.NoError(t, keys.VerifyEd25519(signer.AccountID(), payload, xt.Signature))
}

func TestSubmitNewAccountUsesNonceZero(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, conn, _ := newSubmitClient(t, mockconn.Watch{Updates: updates(tfchain.TxStatusReady), Hold: true})
	_, err := client.Submit(
		context.Background(),
		extrinsic.NewCall("System", "remark", []byte("hi")),
		tfchain.TxStatusReady,
	)
	require.NoError(t, err)
	xt, err := extrinsic.Decode(conn.Submitted()[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(0), xt.Nonce)
}

func TestSubmitAfterRuntimeUpgrade(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, conn, _ := newSubmitClient(
		t,
		mockconn.Watch{Updates: updates(tfchain.TxStatusReady), Hold: true},
		mockconn.Watch{Updates: updates(tfchain.TxStatusReady), Hold: true},
	)
	call := extrinsic.NewCall("TfgridModule", "create_twin", []byte("10.0.0.1"))
	_, err := client.Submit(context.Background(), call, tfchain.TxStatusReady)
	require.NoError(t, err)

	conn.SetMetadata(upgradedMetadata())
	_, err = client.Submit(context.Background(), call, tfchain.TxStatusReady)
	require.NoError(t, err)

	submitted := conn.Submitted()
	require.Len(t, submitted, 2)
	for idx, pallet := range []byte{test.PalletTfgridModule, 13} {
		xt, err := extrinsic.Decode(submitted[idx])
		require.NoError(t, err)
		require.NotEmpty(t, xt.Call)
		assert.Equal(t, pallet, xt.Call[0])
	}
}

func TestCreateTwin(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, conn, _ := newSubmitClient(t, mockconn.Watch{Updates: updates(tfchain.TxStatusReady), Hold: true})
	require.NoError(t, client.CreateTwin(context.Background(), "10.0.0.1"))
	xt, err := extrinsic.Decode(conn.Submitted()[0])
	require.NoError(t, err)
	call, err := xt.DecodeCall(test.Metadata())
	require.NoError(t, err)
	assert.Equal(t, "create_twin", call.Function)
	assert.Equal(t, scale.MustEncode([]byte("10.0.0.1")), call.Args[0])
}

func TestCreateFarm(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, _, _ := newSubmitClient(
		t,
		mockconn.Watch{
			Updates: updates(
				tfchain.TxStatusFuture,
				tfchain.TxStatusReady,
				tfchain.TxStatusBroadcast,
				tfchain.TxStatusInBlock,
			),
		},
	)
	hash, err := client.CreateFarm(context.Background(), "freefarm")
	require.NoError(t, err)
	require.NotNil(t, hash)
	assert.Equal(t, inBlockHash, *hash)
}

func TestSubmitFinalized(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, _, _ := newSubmitClient(
		t,
		mockconn.Watch{
			Updates: updates(
				tfchain.TxStatusReady,
				tfchain.TxStatusInBlock,
				tfchain.TxStatusFinalized,
			),
		},
	)
	hash, err := client.Submit(
		context.Background(),
		extrinsic.NewCall("SmartContractModule", "cancel_contract", uint64(9)),
		tfchain.TxStatusFinalized,
	)
	require.NoError(t, err)
	require.NotNil(t, hash)
	assert.Equal(t, finalizedRef, *hash)
}

func TestSubmitFailures(t *testing.T) {
	testDefs := []struct {
		name     string
		watch    mockconn.Watch
		waitFor  tfchain.TxStatus
		expected tfchain.TxStatus
	}{
		{
			name:     "invalid",
			watch:    mockconn.Watch{Updates: updates(tfchain.TxStatusInvalid)},
			waitFor:  tfchain.TxStatusReady,
			expected: tfchain.TxStatusInvalid,
		},
		{
			name:     "dropped after ready",
			watch:    mockconn.Watch{Updates: updates(tfchain.TxStatusReady, tfchain.TxStatusDropped), Hold: true},
			waitFor:  tfchain.TxStatusInBlock,
			expected: tfchain.TxStatusDropped,
		},
		{
			name:     "usurped",
			watch:    mockconn.Watch{Updates: updates(tfchain.TxStatusUsurped)},
			waitFor:  tfchain.TxStatusInBlock,
			expected: tfchain.TxStatusUsurped,
		},
		{
			name: "finality timeout",
			watch: mockconn.Watch{
				Updates: updates(tfchain.TxStatusInBlock, tfchain.TxStatusFinalityTimeout),
			},
			waitFor:  tfchain.TxStatusFinalized,
			expected: tfchain.TxStatusFinalityTimeout,
		},
		{
			name:     "subscription ended",
			watch:    mockconn.Watch{Updates: updates(tfchain.TxStatusReady)},
			waitFor:  tfchain.TxStatusInBlock,
			expected: tfchain.TxStatusReady,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)
			client, _, _ := newSubmitClient(t, testDef.watch)
			hash, err := client.Submit(
				context.Background(),
				extrinsic.NewCall("TfgridModule", "create_farm", []byte("farm")),
				testDef.waitFor,
			)
			assert.Nil(t, hash)
			var subErr *tfchain.SubmissionError
			require.ErrorAs(t, err, &subErr)
			assert.Equal(t, testDef.expected, subErr.Status)
		})
	}
}

func TestSubmitWatchError(t *testing.T) {
	defer goleak.VerifyNone(t)
	boom := errors.New("subscription lost")
	client, _, _ := newSubmitClient(t, mockconn.Watch{Updates: updates(tfchain.TxStatusReady), Err: boom})
	_, err := client.CreateFarm(context.Background(), "farm")
	var transportErr *tfchain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, boom)
}

func TestSubmitContextDeadline(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, _, _ := newSubmitClient(t, mockconn.Watch{Updates: updates(tfchain.TxStatusReady), Hold: true})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.CreateFarm(ctx, "farm")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitPreconditions(t *testing.T) {
	client, conn := newTestClient(t)
	call := extrinsic.NewCall("TfgridModule", "create_farm", []byte("farm"))
	_, err := client.Submit(context.Background(), call, tfchain.TxStatusInBlock)
	assert.ErrorIs(t, err, tfchain.ErrNoSigner)

	signed, _, _ := newSubmitClient(t)
	_, err = signed.Submit(context.Background(), call, tfchain.TxStatusBroadcast)
	assert.ErrorIs(t, err, tfchain.ErrInvalidTxStatus)
	_, err = signed.Submit(context.Background(), call, tfchain.TxStatusInvalid)
	assert.ErrorIs(t, err, tfchain.ErrInvalidTxStatus)
	_, err = signed.Submit(
		context.Background(),
		extrinsic.NewCall("TfgridModule", "delete_farm", uint32(1)),
		tfchain.TxStatusInBlock,
	)
	assert.ErrorIs(t, err, runtime.ErrCallNotFound)
	assert.Empty(t, conn.Submitted())
}

type failingSigner struct {
	keys.Signer
}

func (failingSigner) Sign([]byte) ([]byte, error) {
	return nil, errors.New("hardware wallet unplugged")
}

func TestSubmitSignerFailure(t *testing.T) {
	signer, err := keys.NewEd25519(test.DecodeHexString(ed25519Seed))
	require.NoError(t, err)
	client, conn := newTestClient(t, tfchain.WithSigner(failingSigner{Signer: signer}))
	conn.AddBlock(&ledger.Block{Hash: genesisHash})
	_, err = client.CreateFarm(context.Background(), "farm")
	var subErr *tfchain.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "signing failed", subErr.Reason)
	assert.Empty(t, conn.Submitted())
}
