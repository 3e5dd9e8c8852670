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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotfchain/extrinsic"
	"github.com/blinklabs-io/gotfchain/ledger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TxStatus is the status of a submitted transaction as reported by the node
type TxStatus uint8

const (
	TxStatusUnknown TxStatus = iota
	TxStatusFuture
	TxStatusReady
	TxStatusBroadcast
	TxStatusInBlock
	TxStatusRetracted
	TxStatusFinalityTimeout
	TxStatusFinalized
	TxStatusUsurped
	TxStatusDropped
	TxStatusInvalid
)

var ErrInvalidTxStatus = errors.New("transactions can only be awaited until Ready, InBlock or Finalized")

var txStatusNames = map[TxStatus]string{
	TxStatusUnknown:         "Unknown",
	TxStatusFuture:          "Future",
	TxStatusReady:           "Ready",
	TxStatusBroadcast:       "Broadcast",
	TxStatusInBlock:         "InBlock",
	TxStatusRetracted:       "Retracted",
	TxStatusFinalityTimeout: "FinalityTimeout",
	TxStatusFinalized:       "Finalized",
	TxStatusUsurped:         "Usurped",
	TxStatusDropped:         "Dropped",
	TxStatusInvalid:         "Invalid",
}

func (s TxStatus) String() string {
	if name, ok := txStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TxStatus(%d)", uint8(s))
}

// progress orders the statuses a transaction passes through on success. Statuses
// that do not advance a transaction return 0
func (s TxStatus) progress() int {
	switch s {
	case TxStatusReady, TxStatusBroadcast:
		return 1
	case TxStatusInBlock:
		return 2
	case TxStatusFinalized:
		return 3
	default:
		return 0
	}
}

// failed reports statuses after which the transaction will not be included
func (s TxStatus) failed() bool {
	switch s {
	case TxStatusFinalityTimeout, TxStatusUsurped, TxStatusDropped, TxStatusInvalid:
		return true
	default:
		return false
	}
}

// Submit signs and submits a call, then waits until the transaction reaches the
// requested status, which must be TxStatusReady, TxStatusInBlock or TxStatusFinalized.
// The hash of the including block is returned for InBlock and Finalized. Ready
// returns a nil hash.
//
// Submit blocks until the status is reached, the transaction fails, or ctx is done.
// There is no timeout and no retry
func (c *Client) Submit(ctx context.Context, call extrinsic.Call, status TxStatus) (ret *ledger.Hash, err error) {
	if status.progress() == 0 || status == TxStatusBroadcast {
		return nil, ErrInvalidTxStatus
	}
	ctx, span := c.tracer.Start(ctx, "tfchain.Submit")
	span.SetAttributes(
		attribute.String("tfchain.call", call.String()),
		attribute.String("tfchain.wait_for", status.String()),
	)
	defer func() {
		result := resultOK
		if err != nil {
			result = resultError
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		c.metrics.submissions.WithLabelValues(call.String(), result).Inc()
		span.End()
	}()
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	meta, err := c.conn.Metadata(ctx, nil)
	if err != nil {
		return nil, transportError("get metadata", err)
	}
	callData, err := extrinsic.EncodeCall(meta, call)
	if err != nil {
		return nil, err
	}
	opts, err := c.signingOptions(ctx)
	if err != nil {
		return nil, err
	}
	xt, err := extrinsic.Sign(c.signer, callData, opts)
	if err != nil {
		return nil, &SubmissionError{
			Reason: "signing failed",
			Err:    err,
		}
	}
	encoded := xt.Encode()
	txHash := extrinsic.Hash(encoded)
	logger := c.logger.With(
		"call", call.String(),
		"tx", txHash.String(),
		"nonce", opts.Nonce,
	)
	logger.Debug("submitting transaction", "wait_for", status.String())
	watcher, err := c.conn.SubmitAndWatch(ctx, encoded)
	if err != nil {
		return nil, transportError("submit extrinsic", err)
	}
	defer watcher.Close()
	last := TxStatusUnknown
	errCh := watcher.Err()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			return nil, transportError("watch extrinsic", err)
		case update, ok := <-watcher.Updates():
			if !ok {
				return nil, &SubmissionError{
					Status: last,
					Reason: "status subscription ended",
				}
			}
			last = update.Status
			logger.Debug("transaction status", "status", update.Status.String())
			if update.Status.failed() {
				return nil, &SubmissionError{
					Status: update.Status,
					Reason: "transaction " + update.Status.String(),
				}
			}
			if update.Status.progress() < status.progress() {
				continue
			}
			if status == TxStatusReady {
				return nil, nil
			}
			hash := update.BlockHash
			return &hash, nil
		}
	}
}

// signingOptions gathers the chain state the signature commits to
func (c *Client) signingOptions(ctx context.Context) (extrinsic.Options, error) {
	version, err := c.conn.RuntimeVersion(ctx)
	if err != nil {
		return extrinsic.Options{}, transportError("get runtime version", err)
	}
	genesis, err := c.conn.BlockHash(ctx, 0)
	if err != nil {
		return extrinsic.Options{}, transportError("get genesis hash", err)
	}
	// Submission always uses the latest state for the nonce
	latest := *c
	latest.at = nil
	info, err := latest.GetAccountInfo(ctx, c.signer.AccountID())
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return extrinsic.Options{}, err
	}
	return extrinsic.Options{
		SpecVersion:        version.SpecVersion,
		TransactionVersion: version.TransactionVersion,
		GenesisHash:        genesis,
		Nonce:              uint64(info.Nonce),
	}, nil
}

// CreateTwin registers a twin for the signer with the given IP address. It returns
// once the transaction is in the pool
func (c *Client) CreateTwin(ctx context.Context, ip string) error {
	_, err := c.Submit(
		ctx,
		extrinsic.NewCall("TfgridModule", "create_twin", []byte(ip)),
		TxStatusReady,
	)
	return err
}

// CreateFarm creates a farm owned by the signer's twin and returns the hash of the
// block that included it
func (c *Client) CreateFarm(ctx context.Context, name string) (*ledger.Hash, error) {
	return c.Submit(
		ctx,
		extrinsic.NewCall("TfgridModule", "create_farm", []byte(name)),
		TxStatusInBlock,
	)
}
