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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NewPromCounter wraps a prometheus counter vector as a counter.
// Returns nil if cv is nil.
func NewPromCounter(cv *prometheus.CounterVec) Counter {
	if cv == nil {
		return nil
	}
	return &promCounter{cv: cv}
}

// NewPromCounterFrom creates and registers a prometheus counter vector, and
// wraps it as a counter.
func NewPromCounterFrom(opts prometheus.CounterOpts, labelNames []string) Counter {
	cv := prometheus.NewCounterVec(opts, labelNames)
	prometheus.MustRegister(cv)
	return NewPromCounter(cv)
}

// NewPromGauge wraps a prometheus gauge vector as a gauge.
// Returns nil if gv is nil.
func NewPromGauge(gv *prometheus.GaugeVec) Gauge {
	if gv == nil {
		return nil
	}
	return &promGauge{gv: gv}
}

// labelValuesSlice accumulates label values added across With calls.
type labelValuesSlice []string

func (lvs labelValuesSlice) with(labelValues ...string) labelValuesSlice {
	if len(labelValues)%2 != 0 {
		labelValues = append(labelValues, "unknown")
	}
	result := make(labelValuesSlice, len(lvs))
	copy(result, lvs)
	return append(result, labelValues...)
}

type promCounter struct {
	cv  *prometheus.CounterVec
	lvs labelValuesSlice
}

func (c *promCounter) Add(delta float64) {
	c.cv.With(makeLabels(c.lvs...)).Add(delta)
}

func (c *promCounter) With(labelValues ...string) Counter {
	return &promCounter{cv: c.cv, lvs: c.lvs.with(labelValues...)}
}

type promGauge struct {
	gv  *prometheus.GaugeVec
	lvs labelValuesSlice
}

func (g *promGauge) Set(value float64) {
	g.gv.With(makeLabels(g.lvs...)).Set(value)
}

func (g *promGauge) Add(delta float64) {
	g.gv.With(makeLabels(g.lvs...)).Add(delta)
}

func (g *promGauge) With(labelValues ...string) Gauge {
	return &promGauge{gv: g.gv, lvs: g.lvs.with(labelValues...)}
}

func makeLabels(labelValues ...string) prometheus.Labels {
	labels := prometheus.Labels{}
	for i := 0; i+1 < len(labelValues); i += 2 {
		labels[labelValues[i]] = labelValues[i+1]
	}
	return labels
}
