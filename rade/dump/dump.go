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

// Package dump decodes captures of emission PDUs into a report that can be
// rendered as a table or serialized as json/yaml.
package dump

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/li-ning888/afsim-rade-sub001/pkg/emlayers"
)

// Config configures a dump run.
type Config struct {
	// Validate annotates each beam with the result of its validity check.
	Validate bool
	// Metrics instruments the underlying stream decoder. Zero disables
	// instrumentation.
	Metrics emlayers.DecoderMetrics
}

// Result is the decoded report.
type Result struct {
	// Octets is the total input size.
	Octets int   `json:"octets" yaml:"octets"`
	PDUs   []PDU `json:"pdus" yaml:"pdus"`
}

// PDU is the report entry for one emission PDU.
type PDU struct {
	EmittingEntity string   `json:"emitting_entity" yaml:"emitting_entity"`
	Event          string   `json:"event" yaml:"event"`
	StateUpdate    uint8    `json:"state_update" yaml:"state_update"`
	Timestamp      uint32   `json:"timestamp" yaml:"timestamp"`
	Length         uint16   `json:"length" yaml:"length"`
	Systems        []System `json:"systems" yaml:"systems"`
}

// System is the report entry for one emitter system.
type System struct {
	Number   uint8      `json:"number" yaml:"number"`
	Name     uint16     `json:"name" yaml:"name"`
	Function uint8      `json:"function" yaml:"function"`
	Location [3]float32 `json:"location" yaml:"location"`
	Beams    []Beam     `json:"beams" yaml:"beams"`
}

// Beam is the report entry for one beam.
type Beam struct {
	Number      uint8   `json:"number" yaml:"number"`
	Function    string  `json:"function" yaml:"function"`
	Frequency   float32 `json:"frequency_hz" yaml:"frequency_hz"`
	PRF         float32 `json:"prf_hz" yaml:"prf_hz"`
	PulseWidth  float32 `json:"pulse_width_us" yaml:"pulse_width_us"`
	ERP         float32 `json:"erp_dbm" yaml:"erp_dbm"`
	Status      string  `json:"status" yaml:"status"`
	HighDensity string  `json:"high_density" yaml:"high_density"`
	Jamming     string  `json:"jamming" yaml:"jamming"`
	Targets     int     `json:"targets" yaml:"targets"`
	Valid       *bool   `json:"valid,omitempty" yaml:"valid,omitempty"`
}

// Run decodes raw as a stream of back-to-back emission PDUs and builds the
// report. PDUs decoded before a malformed one are included in the partial
// result returned alongside the error.
func Run(ctx context.Context, raw []byte, cfg Config) (*Result, error) {
	d := &emlayers.Decoder{Metrics: cfg.Metrics}
	pdus, err := d.DecodeStream(ctx, raw)
	res := &Result{Octets: len(raw)}
	for _, e := range pdus {
		p := PDU{
			EmittingEntity: e.EmittingEntity.String(),
			Event:          e.Event.String(),
			StateUpdate:    e.StateUpdate,
			Timestamp:      e.Timestamp,
			Length:         e.Length,
		}
		for _, s := range e.Systems() {
			sys := System{
				Number:   s.Number,
				Name:     s.Name,
				Function: s.Function,
				Location: s.Location,
			}
			for _, b := range s.Beams() {
				entry := Beam{
					Number:      b.Number,
					Function:    b.Function.String(),
					Frequency:   b.Frequency,
					PRF:         b.PRF,
					PulseWidth:  b.PulseWidth,
					ERP:         b.ERP,
					Status:      b.Status().String(),
					HighDensity: b.EffectiveHighDensity().String(),
					Jamming:     b.Jamming.String(),
					Targets:     b.NumTargets(),
				}
				if cfg.Validate {
					valid := b.Valid()
					entry.Valid = &valid
				}
				sys.Beams = append(sys.Beams, entry)
			}
			p.Systems = append(p.Systems, sys)
		}
		res.PDUs = append(res.PDUs, p)
	}
	return res, err
}

// NumBeams returns the total number of beams in the report.
func (r *Result) NumBeams() int {
	n := 0
	for _, p := range r.PDUs {
		for _, s := range p.Systems {
			n += len(s.Beams)
		}
	}
	return n
}

// Human writes the report as a table, one row per beam.
func (r *Result) Human(w io.Writer, validate bool) {
	for i, p := range r.PDUs {
		fmt.Fprintf(w, "PDU %d: entity %s, event %s, state update %d, %d octets\n",
			i, p.EmittingEntity, p.Event, p.StateUpdate, p.Length)
		table := tablewriter.NewWriter(w)
		header := []string{
			"Sys", "Beam", "Function", "Freq (Hz)", "PRF (Hz)", "PW (us)",
			"ERP (dBm)", "Status", "HD", "Targets",
		}
		if validate {
			header = append(header, "Valid")
		}
		table.SetHeader(header)
		for _, s := range p.Systems {
			for _, b := range s.Beams {
				row := []string{
					strconv.Itoa(int(s.Number)),
					strconv.Itoa(int(b.Number)),
					b.Function,
					fmt.Sprintf("%g", b.Frequency),
					fmt.Sprintf("%g", b.PRF),
					fmt.Sprintf("%g", b.PulseWidth),
					fmt.Sprintf("%g", b.ERP),
					b.Status,
					b.HighDensity,
					strconv.Itoa(b.Targets),
				}
				if validate {
					row = append(row, strconv.FormatBool(b.Valid != nil && *b.Valid))
				}
				table.Append(row)
			}
		}
		table.Render()
	}
	fmt.Fprintf(w, "%d PDUs, %d beams, %d octets\n",
		len(r.PDUs), r.NumBeams(), r.Octets)
}
