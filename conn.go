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
	"context"

	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/storage"
)

// Conn is the transport to a node. Implementations must be safe for concurrent use
type Conn interface {
	// GetStorage returns the raw value stored under key at the given block, or at the
	// best block when at is nil. An absent value is returned as a nil slice
	GetStorage(ctx context.Context, key storage.Key, at *ledger.Hash) ([]byte, error)
	// BlockHash returns the hash of the block at height, or the zero hash when there
	// is no such block
	BlockHash(ctx context.Context, height ledger.BlockNumber) (ledger.Hash, error)
	// Block returns the block with the given hash, or nil when it is unknown
	Block(ctx context.Context, hash ledger.Hash) (*ledger.Block, error)
	// Metadata returns the runtime metadata in force at the given block, or at the
	// best block when at is nil
	Metadata(ctx context.Context, at *ledger.Hash) (*runtime.Metadata, error)
	RuntimeVersion(ctx context.Context) (RuntimeVersion, error)
	// SubmitAndWatch submits an encoded extrinsic and follows its status
	SubmitAndWatch(ctx context.Context, xt []byte) (TxWatcher, error)
	Close() error
}

type RuntimeVersion struct {
	SpecName           string
	SpecVersion        uint32
	TransactionVersion uint32
}

// TxWatcher delivers status updates for a submitted extrinsic. Updates is closed when
// the subscription ends
type TxWatcher interface {
	Updates() <-chan TxUpdate
	Err() <-chan error
	Close()
}

type TxUpdate struct {
	Status TxStatus
	// Set for TxStatusInBlock, TxStatusRetracted, TxStatusFinalized and
	// TxStatusFinalityTimeout
	BlockHash ledger.Hash
}
