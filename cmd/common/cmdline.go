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

package common

import (
	"fmt"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/keys"
)

// DefaultWebsocket is used when neither a websocket nor a network is given
const DefaultWebsocket = "wss://tfchain.dev.grid.tf"

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCBOR = "cbor"
)

type GlobalFlags struct {
	Websocket    string
	Network      string
	// JSON file with additional named networks
	NetworksFile string
	Output       string
	Debug        bool
	Trace        bool
	Seed         string
	Scheme       string
}

func NewGlobalFlags() *GlobalFlags {
	return &GlobalFlags{
		Output: OutputText,
		Seed:   keys.DevSeed,
		Scheme: keys.SchemeSr25519.String(),
	}
}

// Validate checks the flag values that do not require a connection
func (f *GlobalFlags) Validate() error {
	switch f.Output {
	case OutputText, OutputJSON, OutputCBOR:
	default:
		return fmt.Errorf("unknown output format: %s", f.Output)
	}
	if _, err := keys.ParseScheme(f.Scheme); err != nil {
		return err
	}
	if f.Network != "" {
		if _, err := f.lookupNetwork(f.Network); err != nil {
			return err
		}
	}
	return nil
}

func (f *GlobalFlags) lookupNetwork(name string) (tfchain.Network, error) {
	var cfg *tfchain.NetworkConfig
	if f.NetworksFile != "" {
		var err error
		cfg, err = tfchain.NewNetworkConfigFromFile(f.NetworksFile)
		if err != nil {
			return tfchain.NetworkInvalid, fmt.Errorf("load networks file: %w", err)
		}
	}
	network, err := cfg.LookupNetwork(name)
	if err != nil {
		return network, fmt.Errorf("invalid network specified: %w", err)
	}
	return network, nil
}

// Endpoint returns the websocket URL to dial. An explicit websocket wins over a
// named network
func (f *GlobalFlags) Endpoint() (string, tfchain.Network, error) {
	if f.Websocket != "" {
		return f.Websocket, tfchain.NetworkByURL(f.Websocket), nil
	}
	if f.Network != "" {
		network, err := f.lookupNetwork(f.Network)
		if err != nil {
			return "", network, err
		}
		return network.URL, network, nil
	}
	return DefaultWebsocket, tfchain.NetworkByURL(DefaultWebsocket), nil
}
