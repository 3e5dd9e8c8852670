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

package mockconn

import (
	"sync"

	tfchain "github.com/blinklabs-io/gotfchain"
)

type watcher struct {
	updates   chan tfchain.TxUpdate
	errs      chan error
	doneChan  chan struct{}
	waitGroup sync.WaitGroup
	onceClose sync.Once
}

func newWatcher(watch Watch) *watcher {
	w := &watcher{
		updates:  make(chan tfchain.TxUpdate),
		errs:     make(chan error, 1),
		doneChan: make(chan struct{}),
	}
	w.waitGroup.Add(1)
	go w.play(watch)
	return w
}

func (w *watcher) play(watch Watch) {
	defer w.waitGroup.Done()
	for _, update := range watch.Updates {
		select {
		case w.updates <- update:
		case <-w.doneChan:
			return
		}
	}
	if watch.Err != nil {
		w.errs <- watch.Err
	}
	// The updates channel stays open after an error so the error is the only outcome
	if watch.Hold || watch.Err != nil {
		<-w.doneChan
		return
	}
	close(w.updates)
}

func (w *watcher) Updates() <-chan tfchain.TxUpdate {
	return w.updates
}

func (w *watcher) Err() <-chan error {
	return w.errs
}

// Close stops playback and waits for it to finish
func (w *watcher) Close() {
	w.onceClose.Do(func() {
		close(w.doneChan)
		w.waitGroup.Wait()
	})
}
