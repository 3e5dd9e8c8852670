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

package extrinsic

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotfchain/keys"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
	"golang.org/x/crypto/blake2b"
)

const (
	Version = 4

	signedFlag         = 0x80
	versionMask        = 0x7f
	addressTypeID      = 0x00
	immortalEra        = 0x00
	maxPlainPayload    = 256
	signatureSize      = 64
	ecdsaSignatureSize = 65
	signatureTypeEcdsa = 2
)

var (
	ErrUnsupportedVersion = errors.New("unsupported extrinsic version")
	ErrUnsupportedAddress = errors.New("unsupported address type")
)

// Options holds the chain state a signature commits to. Transactions are immortal, so
// the genesis hash doubles as the era checkpoint
type Options struct {
	SpecVersion        uint32
	TransactionVersion uint32
	GenesisHash        ledger.Hash
	Nonce              uint64
	Tip                uint64
}

// Extrinsic is a version 4 extrinsic. Call holds the encoded call
type Extrinsic struct {
	Signed    bool
	Signer    ledger.AccountID
	Scheme    keys.Scheme
	Signature []byte
	// Raw era encoding, 0x00 for immortal
	Era   []byte
	Nonce uint64
	Tip   uint64
	Call  []byte
}

// SigningPayload returns the bytes a signer signs for the call. Payloads longer than
// 256 bytes are replaced by their blake2b-256 hash
func SigningPayload(call []byte, opts Options) ([]byte, error) {
	extra, err := scale.Encode(struct {
		SpecVersion        uint32
		TransactionVersion uint32
		GenesisHash        ledger.Hash
		BlockHash          ledger.Hash
	}{
		SpecVersion:        opts.SpecVersion,
		TransactionVersion: opts.TransactionVersion,
		GenesisHash:        opts.GenesisHash,
		BlockHash:          opts.GenesisHash,
	})
	if err != nil {
		return nil, err
	}
	ret := make([]byte, 0, len(call)+len(extra)+16)
	ret = append(ret, call...)
	ret = append(ret, immortalEra)
	ret = append(ret, scale.EncodeCompact(opts.Nonce)...)
	ret = append(ret, scale.EncodeCompact(opts.Tip)...)
	ret = append(ret, extra...)
	if len(ret) > maxPlainPayload {
		sum := blake2b.Sum256(ret)
		return sum[:], nil
	}
	return ret, nil
}

// Sign builds a signed extrinsic for the encoded call
func Sign(signer keys.Signer, call []byte, opts Options) (Extrinsic, error) {
	payload, err := SigningPayload(call, opts)
	if err != nil {
		return Extrinsic{}, err
	}
	sig, err := signer.Sign(payload)
	if err != nil {
		return Extrinsic{}, fmt.Errorf("sign %s payload: %w", signer.Scheme(), err)
	}
	return Extrinsic{
		Signed:    true,
		Signer:    signer.AccountID(),
		Scheme:    signer.Scheme(),
		Signature: sig,
		Era:       []byte{immortalEra},
		Nonce:     opts.Nonce,
		Tip:       opts.Tip,
		Call:      call,
	}, nil
}

// Encode returns the length-prefixed encoding submitted to the node
func (e Extrinsic) Encode() []byte {
	var body []byte
	if !e.Signed {
		body = append(body, Version)
	} else {
		body = append(body, Version|signedFlag, addressTypeID)
		body = append(body, e.Signer[:]...)
		body = append(body, byte(e.Scheme))
		body = append(body, e.Signature...)
		if len(e.Era) == 0 {
			body = append(body, immortalEra)
		} else {
			body = append(body, e.Era...)
		}
		body = append(body, scale.EncodeCompact(e.Nonce)...)
		body = append(body, scale.EncodeCompact(e.Tip)...)
	}
	body = append(body, e.Call...)
	ret := scale.EncodeCompact(uint64(len(body)))
	return append(ret, body...)
}

// Hash returns the transaction hash of the encoded extrinsic
func (e Extrinsic) Hash() ledger.Hash {
	return Hash(e.Encode())
}

// Hash returns the blake2b-256 hash of a length-prefixed extrinsic
func Hash(encoded []byte) ledger.Hash {
	return ledger.Hash(blake2b.Sum256(encoded))
}

// Decode parses a length-prefixed extrinsic as found in a block body
func Decode(data []byte) (Extrinsic, error) {
	r := scale.NewReader(data)
	ret, err := decode(r)
	if err != nil {
		return Extrinsic{}, scale.NewDecodeError("extrinsic", err)
	}
	return ret, nil
}

func decode(r *scale.Reader) (Extrinsic, error) {
	var ret Extrinsic
	size, err := r.ReadCompactLen(1)
	if err != nil {
		return ret, err
	}
	if size != r.Remaining() {
		return ret, fmt.Errorf(
			"length prefix %d does not match body of %d bytes",
			size,
			r.Remaining(),
		)
	}
	version, err := r.ReadByte()
	if err != nil {
		return ret, err
	}
	if version&versionMask != Version {
		return ret, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version&versionMask)
	}
	if version&signedFlag != 0 {
		if err := decodeSignature(r, &ret); err != nil {
			return ret, err
		}
	}
	ret.Call, err = r.ReadBytes(r.Remaining())
	return ret, err
}

func decodeSignature(r *scale.Reader, ret *Extrinsic) error {
	ret.Signed = true
	addrType, err := r.ReadByte()
	if err != nil {
		return err
	}
	if addrType != addressTypeID {
		return fmt.Errorf("%w: %d", ErrUnsupportedAddress, addrType)
	}
	signer, err := r.ReadBytes(ledger.AccountIDSize)
	if err != nil {
		return err
	}
	ret.Signer = ledger.AccountID(signer)
	sigType, err := r.ReadByte()
	if err != nil {
		return err
	}
	ret.Scheme = keys.Scheme(sigType)
	sigSize := signatureSize
	if sigType == signatureTypeEcdsa {
		sigSize = ecdsaSignatureSize
	}
	if ret.Signature, err = r.ReadBytes(sigSize); err != nil {
		return err
	}
	eraStart := r.Position()
	first, err := r.ReadByte()
	if err != nil {
		return err
	}
	// A mortal era takes two bytes
	if first != immortalEra {
		if err := r.Skip(1); err != nil {
			return err
		}
	}
	ret.Era = r.Slice(eraStart, r.Position())
	if ret.Nonce, err = r.ReadCompact(); err != nil {
		return err
	}
	ret.Tip, err = r.ReadCompact()
	return err
}

// DecodeCall decodes the extrinsic's call
func (e Extrinsic) DecodeCall(meta *runtime.Metadata) (DecodedCall, error) {
	return DecodeCall(meta, e.Call)
}
