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

// Package event decodes the System.Events storage item of a block.
//
// Record boundaries are found with the runtime metadata, so an event the client has
// no Go type for is still framed and returned as Unrecognized with its raw payload.
// Recognized events carry their payload decoded into ledger types.
package event
