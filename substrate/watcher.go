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
	"sync"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

type subscription interface {
	Err() <-chan error
	Unsubscribe()
}

type watcher struct {
	sub       subscription
	statuses  <-chan types.ExtrinsicStatus
	updates   chan tfchain.TxUpdate
	errs      chan error
	doneChan  chan struct{}
	waitGroup sync.WaitGroup
	onceClose sync.Once
}

func newWatcher(sub subscription, statuses <-chan types.ExtrinsicStatus) *watcher {
	w := &watcher{
		sub:      sub,
		statuses: statuses,
		updates:  make(chan tfchain.TxUpdate),
		errs:     make(chan error, 1),
		doneChan: make(chan struct{}),
	}
	w.waitGroup.Add(1)
	go w.run()
	return w
}

func (w *watcher) run() {
	defer w.waitGroup.Done()
	for {
		select {
		case <-w.doneChan:
			return
		case err, ok := <-w.sub.Err():
			if !ok || err == nil {
				close(w.updates)
				return
			}
			// Updates stays open so the error is the only outcome
			w.errs <- err
			<-w.doneChan
			return
		case status := <-w.statuses:
			select {
			case w.updates <- convertStatus(status):
			case <-w.doneChan:
				return
			}
		}
	}
}

func (w *watcher) Updates() <-chan tfchain.TxUpdate {
	return w.updates
}

func (w *watcher) Err() <-chan error {
	return w.errs
}

func (w *watcher) Close() {
	w.onceClose.Do(func() {
		close(w.doneChan)
		w.sub.Unsubscribe()
		w.waitGroup.Wait()
	})
}

func convertStatus(status types.ExtrinsicStatus) tfchain.TxUpdate {
	switch {
	case status.IsFuture:
		return tfchain.TxUpdate{Status: tfchain.TxStatusFuture}
	case status.IsReady:
		return tfchain.TxUpdate{Status: tfchain.TxStatusReady}
	case status.IsBroadcast:
		return tfchain.TxUpdate{Status: tfchain.TxStatusBroadcast}
	case status.IsInBlock:
		return tfchain.TxUpdate{Status: tfchain.TxStatusInBlock, BlockHash: ledger.Hash(status.AsInBlock)}
	case status.IsRetracted:
		return tfchain.TxUpdate{Status: tfchain.TxStatusRetracted, BlockHash: ledger.Hash(status.AsRetracted)}
	case status.IsFinalityTimeout:
		return tfchain.TxUpdate{
			Status:    tfchain.TxStatusFinalityTimeout,
			BlockHash: ledger.Hash(status.AsFinalityTimeout),
		}
	case status.IsFinalized:
		return tfchain.TxUpdate{Status: tfchain.TxStatusFinalized, BlockHash: ledger.Hash(status.AsFinalized)}
	case status.IsUsurped:
		return tfchain.TxUpdate{Status: tfchain.TxStatusUsurped}
	case status.IsDropped:
		return tfchain.TxUpdate{Status: tfchain.TxStatusDropped}
	case status.IsInvalid:
		return tfchain.TxUpdate{Status: tfchain.TxStatusInvalid}
	default:
		return tfchain.TxUpdate{Status: tfchain.TxStatusUnknown}
	}
}
