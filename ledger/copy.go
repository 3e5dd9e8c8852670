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

package ledger

import (
	"github.com/blinklabs-io/gotfchain/scale"
	"github.com/jinzhu/copier"
)

// copyFields copies a wire struct into a domain struct with the same field names and
// types
func copyFields[T any](src any) T {
	var ret T
	// The field sets match, so the copy cannot fail
	_ = copier.CopyWithOption(&ret, src, copier.Option{DeepCopy: true})
	return ret
}

func copyEach[T any, W any](src []W) []T {
	if len(src) == 0 {
		return nil
	}
	ret := make([]T, 0, len(src))
	for _, item := range src {
		ret = append(ret, copyFields[T](item))
	}
	return ret
}

func convertEach[T any, W any](src []W, convert func(W) T) []T {
	if len(src) == 0 {
		return nil
	}
	ret := make([]T, 0, len(src))
	for _, item := range src {
		ret = append(ret, convert(item))
	}
	return ret
}

func optionPtr[T any](o scale.Option[T]) *T {
	return o.Ptr()
}
