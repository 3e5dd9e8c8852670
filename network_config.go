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

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// NetworkConfig describes deployments beyond the predefined networks, such as a
// private grid or a local development chain
type NetworkConfig struct {
	Networks []NetworkConfigEntry `json:"networks"`
}

type NetworkConfigEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func NewNetworkConfigFromFile(path string) (*NetworkConfig, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dataFile.Close()
	return NewNetworkConfigFromReader(dataFile)
}

func NewNetworkConfigFromReader(r io.Reader) (*NetworkConfig, error) {
	c := &NetworkConfig{}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	for idx, entry := range c.Networks {
		if entry.Name == "" {
			return nil, fmt.Errorf("network %d: missing name", idx)
		}
		if !strings.HasPrefix(entry.URL, "ws://") &&
			!strings.HasPrefix(entry.URL, "wss://") {
			return nil, fmt.Errorf(
				"network %s: websocket URL required, got %q",
				entry.Name,
				entry.URL,
			)
		}
	}
	return c, nil
}

// NetworkByName returns a configured network by name, falling back to the
// predefined networks. Configured entries take precedence
func (c *NetworkConfig) NetworkByName(name string) Network {
	if c != nil {
		for _, entry := range c.Networks {
			if entry.Name == name {
				return Network{Name: entry.Name, URL: entry.URL}
			}
		}
	}
	return NetworkByName(name)
}

// ErrUnknownNetwork is returned by LookupNetwork when no network matches
var ErrUnknownNetwork = errors.New("unknown network")

// LookupNetwork is NetworkByName with an error for unknown names
func (c *NetworkConfig) LookupNetwork(name string) (Network, error) {
	network := c.NetworkByName(name)
	if network == NetworkInvalid {
		return network, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}
	return network, nil
}
