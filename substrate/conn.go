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

package substrate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/storage"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// Conn is a tfchain.Conn over the JSON-RPC websocket API of a node.
//
// Runtime metadata is memoized by runtime spec version, so a runtime upgrade is
// picked up on the next call. Requests are bound to ctx through the websocket
// client's CallContext: a cancelled call returns as soon as ctx ends, even when the
// node has not answered yet. A client without CallContext only checks ctx before
// sending the request
type Conn struct {
	api      *gsrpc.SubstrateAPI
	mu       sync.Mutex
	metadata map[uint32]*runtime.Metadata
}

type contextCaller interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

// Dial connects to the node at url
func Dial(ctx context.Context, url string) (*Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	api, err := gsrpc.NewSubstrateAPI(url)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}
	return &Conn{
		api:      api,
		metadata: make(map[uint32]*runtime.Metadata),
	}, nil
}

func (c *Conn) call(ctx context.Context, result any, method string, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if caller, ok := c.api.Client.(contextCaller); ok {
		return caller.CallContext(ctx, result, method, args...)
	}
	return c.api.Client.Call(result, method, args...)
}

// blockArgs returns the optional block hash parameter of the state RPCs
func blockArgs(at *ledger.Hash, args ...any) []any {
	if at != nil {
		args = append(args, at.String())
	}
	return args
}

func (c *Conn) GetStorage(ctx context.Context, key storage.Key, at *ledger.Hash) ([]byte, error) {
	var res *string
	if err := c.call(ctx, &res, "state_getStorage", blockArgs(at, key.Hex())...); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return codec.HexDecodeString(*res)
}

func (c *Conn) BlockHash(ctx context.Context, height ledger.BlockNumber) (ledger.Hash, error) {
	var res *string
	if err := c.call(ctx, &res, "chain_getBlockHash", uint64(height)); err != nil {
		return ledger.Hash{}, err
	}
	if res == nil {
		return ledger.Hash{}, nil
	}
	return ledger.ParseHash(*res)
}

type rpcBlock struct {
	Block struct {
		Header struct {
			ParentHash     string `json:"parentHash"`
			Number         string `json:"number"`
			StateRoot      string `json:"stateRoot"`
			ExtrinsicsRoot string `json:"extrinsicsRoot"`
			Digest         struct {
				Logs []string `json:"logs"`
			} `json:"digest"`
		} `json:"header"`
		Extrinsics []string `json:"extrinsics"`
	} `json:"block"`
}

func (c *Conn) Block(ctx context.Context, hash ledger.Hash) (*ledger.Block, error) {
	var res *rpcBlock
	if err := c.call(ctx, &res, "chain_getBlock", hash.String()); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return convertBlock(hash, res)
}

func convertBlock(hash ledger.Hash, res *rpcBlock) (*ledger.Block, error) {
	header := res.Block.Header
	number, err := strconv.ParseUint(strings.TrimPrefix(header.Number, "0x"), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("parse block number %q: %w", header.Number, err)
	}
	ret := &ledger.Block{
		Hash: hash,
		Header: ledger.Header{
			Number: ledger.BlockNumber(number),
		},
	}
	if ret.Header.ParentHash, err = ledger.ParseHash(header.ParentHash); err != nil {
		return nil, err
	}
	if ret.Header.StateRoot, err = ledger.ParseHash(header.StateRoot); err != nil {
		return nil, err
	}
	if ret.Header.ExtrinsicsRoot, err = ledger.ParseHash(header.ExtrinsicsRoot); err != nil {
		return nil, err
	}
	if ret.Header.Digest, err = decodeHexList(header.Digest.Logs); err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}
	if ret.Extrinsics, err = decodeHexList(res.Block.Extrinsics); err != nil {
		return nil, fmt.Errorf("extrinsics: %w", err)
	}
	return ret, nil
}

func decodeHexList(items []string) ([][]byte, error) {
	ret := make([][]byte, 0, len(items))
	for _, item := range items {
		data, err := codec.HexDecodeString(item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, data)
	}
	return ret, nil
}

// Metadata returns the metadata in force at the given block. A nil at resolves the
// best block first, so the runtime version and the metadata always describe the
// same block
func (c *Conn) Metadata(ctx context.Context, at *ledger.Hash) (*runtime.Metadata, error) {
	if at == nil {
		var head string
		if err := c.call(ctx, &head, "chain_getBlockHash"); err != nil {
			return nil, err
		}
		hash, err := ledger.ParseHash(head)
		if err != nil {
			return nil, err
		}
		at = &hash
	}
	version, err := c.runtimeVersion(ctx, at)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	meta, ok := c.metadata[version.SpecVersion]
	c.mu.Unlock()
	if ok {
		return meta, nil
	}
	var res string
	if err := c.call(ctx, &res, "state_getMetadata", blockArgs(at)...); err != nil {
		return nil, err
	}
	var raw types.Metadata
	if err := codec.DecodeFromHex(res, &raw); err != nil {
		return nil, fmt.Errorf("decode metadata at %s: %w", at, err)
	}
	meta, err = ConvertMetadata(&raw)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.metadata[version.SpecVersion] = meta
	c.mu.Unlock()
	return meta, nil
}

type rpcRuntimeVersion struct {
	SpecName           string `json:"specName"`
	SpecVersion        uint32 `json:"specVersion"`
	TransactionVersion uint32 `json:"transactionVersion"`
}

func (c *Conn) runtimeVersion(ctx context.Context, at *ledger.Hash) (tfchain.RuntimeVersion, error) {
	var res rpcRuntimeVersion
	if err := c.call(ctx, &res, "state_getRuntimeVersion", blockArgs(at)...); err != nil {
		return tfchain.RuntimeVersion{}, err
	}
	return tfchain.RuntimeVersion(res), nil
}

func (c *Conn) RuntimeVersion(ctx context.Context) (tfchain.RuntimeVersion, error) {
	return c.runtimeVersion(ctx, nil)
}

func (c *Conn) SubmitAndWatch(ctx context.Context, xt []byte) (tfchain.TxWatcher, error) {
	statuses := make(chan types.ExtrinsicStatus)
	sub, err := c.api.Client.Subscribe(
		ctx,
		"author",
		"submitAndWatchExtrinsic",
		"unwatchExtrinsic",
		"extrinsicUpdate",
		statuses,
		codec.HexEncodeToString(xt),
	)
	if err != nil {
		return nil, err
	}
	return newWatcher(sub, statuses), nil
}

func (c *Conn) Close() error {
	c.api.Client.Close()
	return nil
}

var _ tfchain.Conn = (*Conn)(nil)
