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

// Package mockconn provides an in-memory tfchain.Conn for tests
package mockconn

import (
	"context"
	"errors"
	"sync"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/storage"
)

// Operation names accepted by FailWith
const (
	OpGetStorage     = "GetStorage"
	OpBlockHash      = "BlockHash"
	OpBlock          = "Block"
	OpMetadata       = "Metadata"
	OpRuntimeVersion = "RuntimeVersion"
	OpSubmitAndWatch = "SubmitAndWatch"
)

var ErrClosed = errors.New("connection closed")

// Connection mocks a node connection. State is scripted up front with the setter
// methods, and each submission plays back the next Watch entry
type Connection struct {
	mu          sync.Mutex
	metadata    *runtime.Metadata
	metadataAt  map[ledger.Hash]*runtime.Metadata
	version     tfchain.RuntimeVersion
	latest      map[string][]byte
	historical  map[ledger.Hash]map[string][]byte
	blocks      map[ledger.Hash]*ledger.Block
	hashes      map[ledger.BlockNumber]ledger.Hash
	failures    map[string]error
	watches     []Watch
	submissions [][]byte
	closed      bool
}

// Watch is the scripted reply to one submission
type Watch struct {
	Updates []tfchain.TxUpdate
	// Delivered on the error channel after the updates
	Err error
	// Keep the subscription open after the updates until the watcher is closed
	Hold bool
}

// NewConnection returns a Connection using the given metadata
func NewConnection(metadata *runtime.Metadata) *Connection {
	return &Connection{
		metadata:   metadata,
		metadataAt: make(map[ledger.Hash]*runtime.Metadata),
		latest:     make(map[string][]byte),
		historical: make(map[ledger.Hash]map[string][]byte),
		blocks:     make(map[ledger.Hash]*ledger.Block),
		hashes:     make(map[ledger.BlockNumber]ledger.Hash),
		failures:   make(map[string]error),
	}
}

// SetStorage sets the latest value of a key
func (c *Connection) SetStorage(key storage.Key, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest[string(key)] = value
}

// SetStorageAt sets the value of a key as of the given block
func (c *Connection) SetStorageAt(at ledger.Hash, key storage.Key, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.historical[at] == nil {
		c.historical[at] = make(map[string][]byte)
	}
	c.historical[at][string(key)] = value
}

// AddBlock makes a block available by hash and by height
func (c *Connection) AddBlock(block *ledger.Block) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocks[block.Hash] = block
	c.hashes[block.Header.Number] = block.Hash
}

// SetMetadata replaces the latest metadata, as a runtime upgrade would
func (c *Connection) SetMetadata(metadata *runtime.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadata = metadata
}

// SetMetadataAt sets the metadata in force at the given block. Blocks without their
// own metadata use the latest
func (c *Connection) SetMetadataAt(at ledger.Hash, metadata *runtime.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadataAt[at] = metadata
}

func (c *Connection) SetRuntimeVersion(version tfchain.RuntimeVersion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version = version
}

// AddWatch queues the reply for the next submission
func (c *Connection) AddWatch(watch Watch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watches = append(c.watches, watch)
}

// FailWith makes every call of the named operation return err
func (c *Connection) FailWith(op string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[op] = err
}

// Submitted returns the extrinsics submitted so far
func (c *Connection) Submitted() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := make([][]byte, len(c.submissions))
	copy(ret, c.submissions)
	return ret
}

func (c *Connection) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return ErrClosed
	}
	return c.failures[op]
}

func (c *Connection) GetStorage(ctx context.Context, key storage.Key, at *ledger.Hash) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.check(ctx, OpGetStorage); err != nil {
		return nil, err
	}
	values := c.latest
	if at != nil {
		values = c.historical[*at]
	}
	value, ok := values[string(key)]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, value...), nil
}

func (c *Connection) BlockHash(ctx context.Context, height ledger.BlockNumber) (ledger.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.check(ctx, OpBlockHash); err != nil {
		return ledger.Hash{}, err
	}
	return c.hashes[height], nil
}

func (c *Connection) Block(ctx context.Context, hash ledger.Hash) (*ledger.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.check(ctx, OpBlock); err != nil {
		return nil, err
	}
	return c.blocks[hash], nil
}

func (c *Connection) Metadata(ctx context.Context, at *ledger.Hash) (*runtime.Metadata, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.check(ctx, OpMetadata); err != nil {
		return nil, err
	}
	if at != nil {
		if meta, ok := c.metadataAt[*at]; ok {
			return meta, nil
		}
	}
	if c.metadata == nil {
		return nil, errors.New("no metadata configured")
	}
	return c.metadata, nil
}

func (c *Connection) RuntimeVersion(ctx context.Context) (tfchain.RuntimeVersion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.check(ctx, OpRuntimeVersion); err != nil {
		return tfchain.RuntimeVersion{}, err
	}
	return c.version, nil
}

func (c *Connection) SubmitAndWatch(ctx context.Context, xt []byte) (tfchain.TxWatcher, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.check(ctx, OpSubmitAndWatch); err != nil {
		return nil, err
	}
	if len(c.watches) == 0 {
		return nil, errors.New("unexpected submission")
	}
	watch := c.watches[0]
	c.watches = c.watches[1:]
	c.submissions = append(c.submissions, append([]byte{}, xt...))
	return newWatcher(watch), nil
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

var _ tfchain.Conn = (*Connection)(nil)
