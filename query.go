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

	"github.com/blinklabs-io/gotfchain/event"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/blinklabs-io/gotfchain/storage"
	"go.opentelemetry.io/otel/attribute"
)

// GetTwin returns the twin with the given ID. An unknown twin is returned as the zero
// value
func (c *Client) GetTwin(ctx context.Context, id uint32) (ledger.Twin, error) {
	return getValue(ctx, c, "GetTwin", storage.ItemTwins, ledger.DecodeTwin, id)
}

// GetTwinIDByAccount returns the ID of the twin owned by account, or 0
func (c *Client) GetTwinIDByAccount(ctx context.Context, account ledger.AccountID) (uint32, error) {
	return getValue(ctx, c, "GetTwinIDByAccount", storage.ItemTwinIdByAccountID, decodeID[uint32], account)
}

// GetFarm returns the farm with the given ID. An unknown farm is returned as the zero
// value
func (c *Client) GetFarm(ctx context.Context, id uint32) (ledger.Farm, error) {
	return getValue(ctx, c, "GetFarm", storage.ItemFarms, ledger.DecodeFarm, id)
}

// GetFarmIDByName returns the ID of the farm with the given name, or 0
func (c *Client) GetFarmIDByName(ctx context.Context, name string) (uint32, error) {
	return getValue(ctx, c, "GetFarmIDByName", storage.ItemFarmIdByName, decodeID[uint32], []byte(name))
}

// GetNode returns the node with the given ID. An unknown node is returned as the zero
// value
func (c *Client) GetNode(ctx context.Context, id uint32) (ledger.Node, error) {
	return getValue(ctx, c, "GetNode", storage.ItemNodes, ledger.DecodeNode, id)
}

// GetContract returns the contract with the given ID. An unknown contract is returned
// as the zero value, whose Body is nil
func (c *Client) GetContract(ctx context.Context, id uint64) (ledger.Contract, error) {
	return getValue(ctx, c, "GetContract", storage.ItemContracts, ledger.DecodeContract, id)
}

func (c *Client) GetNodeContractResources(ctx context.Context, contractID uint64) (ledger.ContractResources, error) {
	return getValue(
		ctx,
		c,
		"GetNodeContractResources",
		storage.ItemNodeContractResources,
		ledger.DecodeContractResources,
		contractID,
	)
}

func (c *Client) GetPricingPolicy(ctx context.Context, id uint32) (ledger.PricingPolicy, error) {
	return getValue(ctx, c, "GetPricingPolicy", storage.ItemPricingPolicies, ledger.DecodePricingPolicy, id)
}

func (c *Client) GetFarmingPolicy(ctx context.Context, id uint32) (ledger.FarmingPolicy, error) {
	return getValue(ctx, c, "GetFarmingPolicy", storage.ItemFarmingPoliciesMap, ledger.DecodeFarmingPolicy, id)
}

func (c *Client) GetEntity(ctx context.Context, id uint32) (ledger.Entity, error) {
	return getValue(ctx, c, "GetEntity", storage.ItemEntities, ledger.DecodeEntity, id)
}

// GetAccountInfo returns the nonce, reference counts and balances of an account.
// ErrAccountNotFound is returned for an account that does not exist
func (c *Client) GetAccountInfo(ctx context.Context, account ledger.AccountID) (ledger.AccountInfo, error) {
	return getValue(
		ctx,
		c,
		"GetAccountInfo",
		storage.ItemSystemAccount,
		func(data []byte) (ledger.AccountInfo, error) {
			if data == nil {
				return ledger.AccountInfo{}, ErrAccountNotFound
			}
			return ledger.DecodeAccountInfo(data)
		},
		account,
	)
}

// GetAccountBalance returns the balances of an account. ErrAccountNotFound is
// returned for an account that does not exist
func (c *Client) GetAccountBalance(ctx context.Context, account ledger.AccountID) (ledger.AccountData, error) {
	info, err := c.GetAccountInfo(ctx, account)
	if err != nil {
		return ledger.AccountData{}, err
	}
	return info.Data, nil
}

// GetBlockNumber returns the number of the block state is read at
func (c *Client) GetBlockNumber(ctx context.Context) (ledger.BlockNumber, error) {
	return getValue(
		ctx,
		c,
		"GetBlockNumber",
		storage.ItemSystemNumber,
		func(data []byte) (ledger.BlockNumber, error) {
			var ret ledger.BlockNumber
			err := scale.DecodeStrict(data, &ret)
			return ret, err
		},
	)
}

// GetBlockHash returns the hash of the block at height. ErrBlockNotFound is returned
// when the chain has no such block
func (c *Client) GetBlockHash(ctx context.Context, height ledger.BlockNumber) (ret ledger.Hash, err error) {
	ctx, op := c.begin(ctx, "GetBlockHash", attribute.Int64("tfchain.height", int64(height)))
	defer func() { op.end(err) }()
	hash, err := c.conn.BlockHash(ctx, height)
	if err != nil {
		return ret, transportError("get block hash", err)
	}
	if hash.IsZero() {
		return ret, ErrBlockNotFound
	}
	return hash, nil
}

// GetBlock returns the block with the given hash. ErrBlockNotFound is returned for an
// unknown block
func (c *Client) GetBlock(ctx context.Context, hash ledger.Hash) (ret *ledger.Block, err error) {
	ctx, op := c.begin(ctx, "GetBlock", attribute.String("tfchain.block", hash.String()))
	defer func() { op.end(err) }()
	block, err := c.conn.Block(ctx, hash)
	if err != nil {
		return nil, transportError("get block", err)
	}
	if block == nil {
		return nil, ErrBlockNotFound
	}
	return block, nil
}

// GetBlockEvents returns the events of the given block, or of the block state is read
// at when hash is nil. ErrEventsNotFound is returned when the block has no event log.
//
// Events that cannot be decoded are returned as event.Unrecognized. When the log
// cannot be fully framed the events decoded so far are returned with the error
func (c *Client) GetBlockEvents(ctx context.Context, hash *ledger.Hash) (ret []event.Event, err error) {
	ctx, op := c.begin(ctx, "GetBlockEvents")
	defer func() { op.end(err) }()
	at := c.at
	if hash != nil {
		at = hash
	}
	key, err := storage.ItemSystemEvents.Key()
	if err != nil {
		return nil, err
	}
	data, err := c.conn.GetStorage(ctx, key, at)
	if err != nil {
		return nil, transportError("get storage System.Events", err)
	}
	if data == nil {
		return nil, ErrEventsNotFound
	}
	meta, err := c.conn.Metadata(ctx, at)
	if err != nil {
		return nil, transportError("get metadata", err)
	}
	events, err := event.Decode(meta, data)
	for _, evt := range events {
		if unknown, ok := evt.(event.Unrecognized); ok && unknown.Err != nil {
			c.metrics.decodeFailures.WithLabelValues("GetBlockEvents", "event").Inc()
			c.logger.Debug(
				"undecodable event",
				"pallet", unknown.Pallet,
				"event", unknown.Name,
				"error", unknown.Err,
			)
		}
	}
	return events, err
}

func getValue[T any](
	ctx context.Context,
	c *Client,
	name string,
	item storage.Item,
	decode func([]byte) (T, error),
	keys ...any,
) (ret T, err error) {
	ctx, op := c.begin(ctx, name)
	defer func() { op.end(err) }()
	key, err := item.Key(keys...)
	if err != nil {
		return ret, err
	}
	data, err := c.conn.GetStorage(ctx, key, c.at)
	if err != nil {
		return ret, transportError("get storage "+item.Module+"."+item.Name, err)
	}
	return decode(data)
}

func decodeID[T uint32 | uint64](data []byte) (T, error) {
	var ret T
	err := scale.DecodeOrDefault(data, &ret)
	return ret, err
}
