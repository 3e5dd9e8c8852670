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

// Package ledger defines the TFChain domain model and maps stored values into it.
//
// Every entity carries the Version tag of the wire schema it was read from. The
// Decode functions select the matching layout from the legacy and current packages
// and convert it, so callers only ever see the types defined here. Fields that an
// older layout lacks take the documented default noted on each field.
package ledger
