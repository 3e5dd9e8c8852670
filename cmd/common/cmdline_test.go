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

package common_test

import (
	"os"
	"path/filepath"
	"testing"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/cmd/common"
	"github.com/blinklabs-io/gotfchain/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint(t *testing.T) {
	f := common.NewGlobalFlags()
	url, network, err := f.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, common.DefaultWebsocket, url)
	assert.Equal(t, tfchain.NetworkInvalid, network)

	f.Network = "testnet"
	url, network, err = f.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, tfchain.NetworkTestnet.URL, url)
	assert.Equal(t, tfchain.NetworkTestnet, network)

	f.Websocket = tfchain.NetworkLocal.URL
	url, network, err = f.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, tfchain.NetworkLocal.URL, url)
	assert.Equal(t, tfchain.NetworkLocal, network)

	f.Websocket = ""
	f.Network = "nope"
	_, _, err = f.Endpoint()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	f := common.NewGlobalFlags()
	require.NoError(t, f.Validate())

	f.Output = "yaml"
	assert.ErrorContains(t, f.Validate(), "unknown output format")

	f = common.NewGlobalFlags()
	f.Scheme = "ecdsa"
	assert.ErrorIs(t, f.Validate(), keys.ErrUnknownScheme)

	f = common.NewGlobalFlags()
	f.Network = "nope"
	assert.ErrorIs(t, f.Validate(), tfchain.ErrUnknownNetwork)
}

func TestNetworksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.json")
	require.NoError(
		t,
		os.WriteFile(
			path,
			[]byte(`{"networks": [{"name": "private", "url": "ws://10.1.1.1:9944"}]}`),
			0o600,
		),
	)
	f := common.NewGlobalFlags()
	f.Network = "private"
	f.NetworksFile = path
	require.NoError(t, f.Validate())
	url, network, err := f.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "ws://10.1.1.1:9944", url)
	assert.Equal(t, "private", network.Name)

	f.NetworksFile = filepath.Join(t.TempDir(), "missing.json")
	assert.ErrorContains(t, f.Validate(), "load networks file")
}
