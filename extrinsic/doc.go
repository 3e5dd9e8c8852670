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

// Package extrinsic encodes runtime calls and builds signed version 4 extrinsics.
//
// Signed extrinsics carry a MultiAddress account id, a MultiSignature, an immortal era,
// the compact nonce and the compact tip. The signing payload additionally commits to
// the runtime spec version, the transaction version and the genesis hash.
package extrinsic
