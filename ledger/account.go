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

import "math/big"

// AccountData holds balances in the smallest unit
type AccountData struct {
	Free       *big.Int
	Reserved   *big.Int
	MiscFrozen *big.Int
	FeeFrozen  *big.Int
}

// AccountInfo is the System.Account entry. Layouts with a single reference count
// report it as Consumers and leave Providers and Sufficients at 0
type AccountInfo struct {
	Nonce       uint32
	Consumers   uint32
	Providers   uint32
	Sufficients uint32
	Data        AccountData
}
