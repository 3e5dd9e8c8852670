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

package legacy

import "github.com/blinklabs-io/gotfchain/scale"

type AccountData struct {
	Free       scale.U128
	Reserved   scale.U128
	MiscFrozen scale.U128
	FeeFrozen  scale.U128
}

// AccountInfo is the original layout with a single reference count
type AccountInfo struct {
	Nonce    uint32
	RefCount uint32
	Data     AccountData
}

// AccountInfoDualRefCount split the reference count into consumers and providers
type AccountInfoDualRefCount struct {
	Nonce     uint32
	Consumers uint32
	Providers uint32
	Data      AccountData
}
