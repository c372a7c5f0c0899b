// Copyright 2024 RADE Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emlayers

import (
	"context"

	"github.com/gopacket/gopacket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/li-ning888/afsim-rade-sub001/pkg/log"
	"github.com/li-ning888/afsim-rade-sub001/pkg/metrics"
	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// DecoderMetrics counts stream decoder activity. Nil counters are no-ops.
type DecoderMetrics struct {
	// PDUsDecoded counts successfully decoded emission PDUs.
	PDUsDecoded metrics.Counter
	// DecodeErrors counts PDUs that failed to decode.
	DecodeErrors metrics.Counter
	// BeamsDecoded counts beams across all decoded PDUs.
	BeamsDecoded metrics.Counter
}

// NewDecoderMetrics creates and registers prometheus-backed decoder metrics
// under the given namespace.
func NewDecoderMetrics(namespace string) DecoderMetrics {
	return DecoderMetrics{
		PDUsDecoded: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emission_pdus_decoded_total",
			Help:      "Total number of emission PDUs decoded successfully.",
		}, []string{}),
		DecodeErrors: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emission_decode_errors_total",
			Help:      "Total number of emission PDUs that failed to decode.",
		}, []string{}),
		BeamsDecoded: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emission_beams_decoded_total",
			Help:      "Total number of beams across decoded emission PDUs.",
		}, []string{}),
	}
}

// Decoder consumes a byte stream of back-to-back emission PDUs, each
// self-delimited by the length field in its header.
type Decoder struct {
	// Metrics is bumped per decoded or rejected PDU. The zero value disables
	// instrumentation.
	Metrics DecoderMetrics
}

// DecodeStream decodes all PDUs in raw. On a decode failure it returns the
// PDUs decoded so far together with the error; decoding cannot resume past a
// malformed PDU because the stream is only delimited by the per-PDU length
// fields.
func (d *Decoder) DecodeStream(ctx context.Context, raw []byte) ([]*Emission, error) {
	logger := log.FromCtx(ctx)
	var pdus []*Emission
	off := 0
	for off < len(raw) {
		e := &Emission{}
		if err := e.DecodeFromBytes(raw[off:], gopacket.NilDecodeFeedback); err != nil {
			metrics.CounterInc(d.Metrics.DecodeErrors)
			return pdus, serrors.Wrap("decoding emission PDU", err,
				"offset", off, "index", len(pdus))
		}
		metrics.CounterInc(d.Metrics.PDUsDecoded)
		metrics.CounterAdd(d.Metrics.BeamsDecoded, float64(e.NumBeams()))
		logger.Debug("Decoded emission PDU",
			"entity", e.EmittingEntity, "systems", len(e.Systems()),
			"beams", e.NumBeams())
		pdus = append(pdus, e)
		// Length is validated to be at least the decoded base length, so the
		// offset always advances.
		off += int(e.Length)
	}
	return pdus, nil
}
