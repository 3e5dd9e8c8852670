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

package keys

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
)

// Scheme identifies a signature scheme. The values match the MultiSignature variant
// index used in extrinsics
type Scheme uint8

const (
	SchemeEd25519 Scheme = 0
	SchemeSr25519 Scheme = 1
)

// DevSeed is the secret URI of the well-known development account Alice
const DevSeed = "//Alice"

var (
	ErrInvalidSeed      = errors.New("invalid seed")
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrUnknownScheme    = errors.New("unknown signature scheme")
	ErrBadSignature     = errors.New("signature verification failed")
)

func (s Scheme) String() string {
	switch s {
	case SchemeEd25519:
		return "ed25519"
	case SchemeSr25519:
		return "sr25519"
	default:
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}
}

// ParseScheme accepts the names returned by Scheme.String
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "ed25519":
		return SchemeEd25519, nil
	case "sr25519":
		return SchemeSr25519, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownScheme, name)
	}
}

// Signer produces signatures for transaction payloads
type Signer interface {
	AccountID() ledger.AccountID
	Scheme() Scheme
	Sign(payload []byte) ([]byte, error)
}

// New returns a signer for the given scheme. Sr25519 accepts a secret URI, mnemonic or
// hex seed. Ed25519 accepts a 32-byte hex seed
func New(scheme Scheme, secret string) (Signer, error) {
	switch scheme {
	case SchemeSr25519:
		return NewSr25519(secret)
	case SchemeEd25519:
		seed, err := hex.DecodeString(strings.TrimPrefix(secret, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
		}
		return NewEd25519(seed)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, scheme)
	}
}

type Sr25519Signer struct {
	pair      signature.KeyringPair
	accountID ledger.AccountID
}

func NewSr25519(secret string) (*Sr25519Signer, error) {
	pair, err := signature.KeyringPairFromSecret(secret, uint8(ledger.SS58Prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	accountID, err := ledger.NewAccountID(pair.PublicKey)
	if err != nil {
		return nil, err
	}
	return &Sr25519Signer{
		pair:      pair,
		accountID: accountID,
	}, nil
}

func (s *Sr25519Signer) AccountID() ledger.AccountID {
	return s.accountID
}

func (s *Sr25519Signer) Scheme() Scheme {
	return SchemeSr25519
}

func (s *Sr25519Signer) Sign(payload []byte) ([]byte, error) {
	return signature.Sign(payload, s.pair.URI)
}

// Verify checks a signature made by this key pair
func (s *Sr25519Signer) Verify(payload []byte, sig []byte) (bool, error) {
	return signature.Verify(payload, sig, s.pair.URI)
}

type Ed25519Signer struct {
	key       ed25519.PrivateKey
	accountID ledger.AccountID
}

func NewEd25519(seed []byte) (*Ed25519Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf(
			"%w: ed25519 seed must be %d bytes, got %d",
			ErrInvalidSeed,
			ed25519.SeedSize,
			len(seed),
		)
	}
	key := ed25519.NewKeyFromSeed(seed)
	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("unexpected ed25519 public key type")
	}
	accountID, err := ledger.NewAccountID(pub)
	if err != nil {
		return nil, err
	}
	return &Ed25519Signer{
		key:       key,
		accountID: accountID,
	}, nil
}

func (s *Ed25519Signer) AccountID() ledger.AccountID {
	return s.accountID
}

func (s *Ed25519Signer) Scheme() Scheme {
	return SchemeEd25519
}

func (s *Ed25519Signer) Sign(payload []byte) ([]byte, error) {
	return ed25519.Sign(s.key, payload), nil
}

// VerifyEd25519 checks an ed25519 signature by the given account. Keys that are not
// valid curve points, or that have small order, are rejected
func VerifyEd25519(account ledger.AccountID, payload []byte, sig []byte) error {
	point, err := new(edwards25519.Point).SetBytes(account[:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	if new(edwards25519.Point).MultByCofactor(point).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return fmt.Errorf("%w: small order point", ErrInvalidPublicKey)
	}
	if !ed25519.Verify(ed25519.PublicKey(account[:]), payload, sig) {
		return ErrBadSignature
	}
	return nil
}
