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

package extrinsic_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/gotfchain/extrinsic"
	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/keys"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

const (
	alicePubKey = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	ed25519Seed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
)

func TestEncodeCall(t *testing.T) {
	meta := test.Metadata()
	data, err := extrinsic.EncodeCall(meta, extrinsic.NewCall("TfgridModule", "create_twin", []byte("1.1")))
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("0b05"+"0c312e31"), data)

	data, err = extrinsic.EncodeCall(
		meta,
		extrinsic.NewCall(
			"Balances",
			"transfer",
			ledger.AccountID(test.DecodeHexString(alicePubKey)),
			scale.Compact(64),
		),
	)
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("0500"+alicePubKey+"0101"), data)
}

func TestEncodeCallErrors(t *testing.T) {
	meta := test.Metadata()
	_, err := extrinsic.EncodeCall(meta, extrinsic.NewCall("TfgridModule", "create_twin"))
	assert.ErrorIs(t, err, extrinsic.ErrArgCount)
	_, err = extrinsic.EncodeCall(meta, extrinsic.NewCall("TfgridModule", "create_twin", []byte("a"), []byte("b")))
	assert.ErrorIs(t, err, extrinsic.ErrArgCount)
	_, err = extrinsic.EncodeCall(meta, extrinsic.NewCall("TfgridModule", "delete_everything"))
	assert.ErrorIs(t, err, runtime.ErrCallNotFound)
	_, err = extrinsic.EncodeCall(meta, extrinsic.NewCall("Nope", "remark", []byte{}))
	assert.ErrorIs(t, err, runtime.ErrPalletNotFound)
}

func TestDecodeCallRoundTrip(t *testing.T) {
	meta := test.Metadata()
	call := extrinsic.NewCall("TfgridModule", "create_farm", []byte("freefarm"))
	data, err := extrinsic.EncodeCall(meta, call)
	require.NoError(t, err)
	decoded, err := extrinsic.DecodeCall(meta, data)
	require.NoError(t, err)
	assert.Equal(t, "TfgridModule", decoded.Module)
	assert.Equal(t, "create_farm", decoded.Function)
	require.Len(t, decoded.Args, 1)
	assert.Equal(t, scale.MustEncode([]byte("freefarm")), decoded.Args[0])

	var name []byte
	require.NoError(t, scale.Decode(decoded.Args[0], &name))
	assert.Equal(t, "freefarm", string(name))
}

func TestDecodeCallErrors(t *testing.T) {
	meta := test.Metadata()
	var decErr *scale.DecodeError
	_, err := extrinsic.DecodeCall(meta, test.DecodeHexString("0c01"+"0300000000000000"+"00"))
	assert.ErrorAs(t, err, &decErr)
	assert.ErrorIs(t, err, scale.ErrTrailingData)
	_, err = extrinsic.DecodeCall(meta, test.DecodeHexString("0c01"+"0300"))
	assert.ErrorIs(t, err, scale.ErrUnexpectedEnd)
	_, err = extrinsic.DecodeCall(meta, test.DecodeHexString("0c09"))
	assert.ErrorIs(t, err, runtime.ErrCallNotFound)
	_, err = extrinsic.DecodeCall(meta, []byte{0x0c})
	assert.ErrorAs(t, err, &decErr)
}

func testOptions() extrinsic.Options {
	var genesis ledger.Hash
	genesis[0] = 0xab
	return extrinsic.Options{
		SpecVersion:        140,
		TransactionVersion: 2,
		GenesisHash:        genesis,
		Nonce:              5,
		Tip:                0,
	}
}

func TestSigningPayload(t *testing.T) {
	opts := testOptions()
	call := test.DecodeHexString("0b05" + "0c312e31")
	payload, err := extrinsic.SigningPayload(call, opts)
	require.NoError(t, err)
	expected := bytes.Join(
		[][]byte{
			call,
			{0x00}, // immortal era
			{0x14}, // nonce 5
			{0x00}, // tip
			{0x8c, 0x00, 0x00, 0x00},
			{0x02, 0x00, 0x00, 0x00},
			opts.GenesisHash[:],
			opts.GenesisHash[:],
		},
		nil,
	)
	assert.Equal(t, expected, payload)

	long := make([]byte, 300)
	payload, err = extrinsic.SigningPayload(long, opts)
	require.NoError(t, err)
	assert.Len(t, payload, 32)
}

func TestSignAndDecode(t *testing.T) {
	signer, err := keys.NewEd25519(test.DecodeHexString(ed25519Seed))
	require.NoError(t, err)
	opts := testOptions()
	call := test.DecodeHexString("0b05" + "0c312e31")
	xt, err := extrinsic.Sign(signer, call, opts)
	require.NoError(t, err)

	payload, err := extrinsic.SigningPayload(call, opts)
	require.NoError(t, err)
	require.NoError(t, keys.VerifyEd25519(signer.AccountID(), payload, xt.Signature))

	encoded := xt.Encode()
	// length prefix, version, address type
	assert.Equal(t, byte(0x84), encoded[2])
	assert.Equal(t, byte(0x00), encoded[3])
	assert.Equal(t, signer.AccountID().Bytes(), encoded[4:36])
	assert.Equal(t, byte(keys.SchemeEd25519), encoded[36])

	decoded, err := extrinsic.Decode(encoded)
	require.NoError(t, err)
	assert.True(t, decoded.Signed)
	assert.Equal(t, signer.AccountID(), decoded.Signer)
	assert.Equal(t, keys.SchemeEd25519, decoded.Scheme)
	assert.Equal(t, xt.Signature, decoded.Signature)
	assert.Equal(t, []byte{0x00}, decoded.Era)
	assert.Equal(t, uint64(5), decoded.Nonce)
	assert.Equal(t, call, decoded.Call)

	sum := blake2b.Sum256(encoded)
	assert.Equal(t, ledger.Hash(sum), xt.Hash())

	decodedCall, err := decoded.DecodeCall(test.Metadata())
	require.NoError(t, err)
	assert.Equal(t, "create_twin", decodedCall.Function)
}

func TestSignSr25519(t *testing.T) {
	signer, err := keys.NewSr25519(keys.DevSeed)
	require.NoError(t, err)
	opts := testOptions()
	call := test.DecodeHexString("0b00" + "0c616263")
	xt, err := extrinsic.Sign(signer, call, opts)
	require.NoError(t, err)
	assert.Equal(t, keys.SchemeSr25519, xt.Scheme)
	payload, err := extrinsic.SigningPayload(call, opts)
	require.NoError(t, err)
	ok, err := signer.Verify(payload, xt.Signature)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDecodeUnsigned(t *testing.T) {
	xt := extrinsic.Extrinsic{Call: test.DecodeHexString("0001" + "00")}
	encoded := xt.Encode()
	assert.Equal(t, test.DecodeHexString("10"+"04"+"0001"+"00"), encoded)
	decoded, err := extrinsic.Decode(encoded)
	require.NoError(t, err)
	assert.False(t, decoded.Signed)
	assert.Equal(t, xt.Call, decoded.Call)
}

func TestDecodeExtrinsicErrors(t *testing.T) {
	_, err := extrinsic.Decode(test.DecodeHexString("08" + "05" + "00"))
	assert.ErrorIs(t, err, extrinsic.ErrUnsupportedVersion)
	_, err = extrinsic.Decode(test.DecodeHexString("0c" + "04" + "00"))
	assert.Error(t, err)
	_, err = extrinsic.Decode(test.DecodeHexString("08" + "84" + "ff"))
	assert.ErrorIs(t, err, extrinsic.ErrUnsupportedAddress)
}
