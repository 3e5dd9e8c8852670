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

package tfchain

// Network definitions
var (
	NetworkMainnet = Network{
		Name: "mainnet",
		URL:  "wss://tfchain.grid.tf/ws",
	}
	NetworkTestnet = Network{
		Name: "testnet",
		URL:  "wss://tfchain.test.grid.tf/ws",
	}
	NetworkQanet = Network{
		Name: "qanet",
		URL:  "wss://tfchain.qa.grid.tf/ws",
	}
	NetworkDevnet = Network{
		Name: "devnet",
		URL:  "wss://tfchain.dev.grid.tf/ws",
	}
	NetworkLocal = Network{
		Name: "local",
		URL:  "ws://127.0.0.1:9944",
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkQanet,
	NetworkDevnet,
	NetworkLocal,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByURL returns a predefined network by websocket URL
func NetworkByURL(url string) Network {
	for _, network := range networks {
		if network.URL == url {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a TFChain deployment
type Network struct {
	Name string
	URL  string // websocket endpoint of a public node
}

func (n Network) String() string {
	return n.Name
}
