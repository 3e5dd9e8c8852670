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

package event

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/blinklabs-io/gotfchain/runtime"
	"github.com/blinklabs-io/gotfchain/scale"
)

const (
	// phase byte, pallet index, event index and an empty topics vector
	minRecordSize = 4
	topicSize     = ledger.HashSize
)

var ErrUnknownPhase = errors.New("unknown event phase")

// Decode decodes the contents of the System.Events storage item into events.
//
// Events that are unknown or whose payload does not decode are returned as
// Unrecognized without affecting the rest of the batch. When a record cannot be
// framed, because the metadata does not describe it or the data is truncated, the
// events decoded so far are returned together with a *scale.DecodeError
func Decode(meta *runtime.Metadata, data []byte) ([]Event, error) {
	r := scale.NewReader(data)
	count, err := r.ReadCompactLen(minRecordSize)
	if err != nil {
		return nil, scale.NewDecodeError("event records", err)
	}
	ret := make([]Event, 0, count)
	for i := range count {
		evt, err := decodeRecord(meta, r)
		if err != nil {
			return ret, scale.NewDecodeError(
				"event records",
				fmt.Errorf("record %d: %w", i, err),
			)
		}
		ret = append(ret, evt)
	}
	if !r.EOF() {
		return ret, scale.NewDecodeError("event records", scale.ErrTrailingData)
	}
	return ret, nil
}

func decodeRecord(meta *runtime.Metadata, r *scale.Reader) (Event, error) {
	phase, err := decodePhase(r)
	if err != nil {
		return nil, err
	}
	palletIdx, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	eventIdx, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	pallet, variant, err := meta.Event(palletIdx, eventIdx)
	if err != nil {
		return nil, err
	}
	start := r.Position()
	fields, err := meta.SkipFields(r, variant.Fields)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", pallet.Name, variant.Name, err)
	}
	raw := r.Slice(start, r.Position())
	topicCount, err := r.ReadCompactLen(topicSize)
	if err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}
	var topics []ledger.Hash
	for range topicCount {
		buf, err := r.ReadBytes(topicSize)
		if err != nil {
			return nil, fmt.Errorf("topics: %w", err)
		}
		topics = append(topics, ledger.Hash(buf))
	}
	header := Header{
		Phase:  phase,
		Pallet: pallet.Name,
		Name:   variant.Name,
		Topics: topics,
	}
	return decodeEvent(meta, header, fields, raw), nil
}

func decodePhase(r *scale.Reader) (Phase, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Phase{}, err
	}
	phase := Phase{Type: PhaseType(b)}
	switch phase.Type {
	case PhaseApplyExtrinsic:
		if err := r.Decode(&phase.ExtrinsicIndex); err != nil {
			return Phase{}, err
		}
	case PhaseFinalization, PhaseInitialization:
	default:
		return Phase{}, fmt.Errorf("%w: %d", ErrUnknownPhase, b)
	}
	return phase, nil
}

func decodeEvent(meta *runtime.Metadata, header Header, fields [][]byte, raw []byte) Event {
	decoder, ok := decoders[header.Pallet+"."+header.Name]
	if !ok {
		return Unrecognized{Header: header, Raw: raw}
	}
	evt, err := decoder(meta, header, fields)
	if err != nil {
		return Unrecognized{
			Header: header,
			Raw:    raw,
			Err:    scale.NewDecodeError(header.Pallet+"."+header.Name, err),
		}
	}
	return evt
}
