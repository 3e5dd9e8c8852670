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
	"errors"
	"fmt"
)

// ErrUnsupportedVersion matches any UnsupportedVersionError
var ErrUnsupportedVersion = errors.New("unsupported schema version")

// UnsupportedVersionError indicates a stored value whose version tag is unknown and
// whose bytes fit none of the known layouts. It is always returned wrapped in a
// *scale.DecodeError
type UnsupportedVersionError struct {
	Type    string
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported %s version %d", e.Type, e.Version)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}
