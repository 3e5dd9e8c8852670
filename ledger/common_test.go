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

package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/gotfchain/internal/test"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

func TestAccountIDSS58RoundTrip(t *testing.T) {
	account, err := ledger.NewAccountID(test.DecodeHexString(alicePubKey))
	require.NoError(t, err)
	assert.Equal(t, aliceAddress, account.String())
	parsed, err := ledger.ParseAccountID(aliceAddress)
	require.NoError(t, err)
	assert.Equal(t, account, parsed)
	fromHex, err := ledger.ParseAccountID("0x" + alicePubKey)
	require.NoError(t, err)
	assert.Equal(t, account, fromHex)
}

func TestParseAccountIDErrors(t *testing.T) {
	// Last character changed, which breaks the checksum
	_, err := ledger.ParseAccountID("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ")
	assert.ErrorIs(t, err, ledger.ErrInvalidAddress)
	_, err = ledger.ParseAccountID("not-an-address")
	assert.ErrorIs(t, err, ledger.ErrInvalidAddress)
	_, err = ledger.ParseAccountID("0x1234")
	assert.ErrorIs(t, err, ledger.ErrInvalidAddress)
}

func TestAccountIDJSON(t *testing.T) {
	account, err := ledger.ParseAccountID(aliceAddress)
	require.NoError(t, err)
	data, err := json.Marshal(struct{ Account ledger.AccountID }{account})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Account":"`+aliceAddress+`"}`, string(data))
	var decoded struct{ Account ledger.AccountID }
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, account, decoded.Account)
}

func TestParseHash(t *testing.T) {
	hashHex := "0x" + alicePubKey
	hash, err := ledger.ParseHash(hashHex)
	require.NoError(t, err)
	assert.Equal(t, hashHex, hash.String())
	noPrefix, err := ledger.ParseHash(alicePubKey)
	require.NoError(t, err)
	assert.Equal(t, hash, noPrefix)
	assert.False(t, hash.IsZero())
	assert.True(t, ledger.Hash{}.IsZero())
	_, err = ledger.ParseHash("0xabcd")
	assert.Error(t, err)
	_, err = ledger.ParseHash("zz")
	assert.Error(t, err)
}
