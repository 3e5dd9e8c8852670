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
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrBlockNotFound   = errors.New("block not found")
	ErrEventsNotFound  = errors.New("events not found")
	ErrNoConn          = errors.New("no connection configured")
	ErrNoSigner        = errors.New("no signer configured")
)

// TransportError wraps a failure of the underlying connection
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SubmissionError reports a transaction that was rejected or lost before reaching the
// requested status. Status is the last status seen
type SubmissionError struct {
	Status TxStatus
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	msg := fmt.Sprintf("submission failed (%s): %s", e.Status, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func transportError(op string, err error) error {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return err
	}
	return &TransportError{Op: op, Err: err}
}
