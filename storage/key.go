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

package storage

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotfchain/scale"
)

var (
	ErrUnknownItem = errors.New("unknown storage item")
	ErrKeyCount    = errors.New("wrong number of storage keys")
)

// Key is a fully resolved storage key
type Key []byte

func (k Key) Hex() string {
	return "0x" + hex.EncodeToString(k)
}

func (k Key) String() string {
	return k.Hex()
}

// Raw is a map key that is already SCALE encoded and is hashed as is
type Raw []byte

// Resolve builds the storage key for a registered item. Each key is SCALE encoded
// and hashed with the hasher the item declares for its position
func Resolve(module string, item string, keys ...any) (Key, error) {
	storageItem, ok := Lookup(module, item)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownItem, module, item)
	}
	return storageItem.Key(keys...)
}

// Key builds the storage key for the item from its map keys
func (i Item) Key(keys ...any) (Key, error) {
	if len(keys) != len(i.Hashers) {
		return nil, fmt.Errorf(
			"%w: %s.%s takes %d, got %d",
			ErrKeyCount,
			i.Module,
			i.Name,
			len(i.Hashers),
			len(keys),
		)
	}
	ret := Prefix(i.Module, i.Name)
	for idx, key := range keys {
		var encoded []byte
		if raw, ok := key.(Raw); ok {
			encoded = raw
		} else {
			var err error
			encoded, err = scale.Encode(key)
			if err != nil {
				return nil, fmt.Errorf("storage key %s.%s: %w", i.Module, i.Name, err)
			}
		}
		hashed, err := i.Hashers[idx].Hash(encoded)
		if err != nil {
			return nil, err
		}
		ret = append(ret, hashed...)
	}
	return ret, nil
}

// Prefix returns twox128(module) ++ twox128(item)
func Prefix(module string, item string) Key {
	ret := make(Key, 0, 32)
	ret = append(ret, Twox128([]byte(module))...)
	ret = append(ret, Twox128([]byte(item))...)
	return ret
}
