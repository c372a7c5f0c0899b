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

// Package metrics defines thin interfaces for counters and gauges, so that
// library code can be instrumented without depending on a concrete metrics
// implementation. All helpers are nil-safe: a nil metric is a no-op.
package metrics

import (
	"sync"
)

// Counter describes a monotonically increasing metric.
type Counter interface {
	// Add increases the counter by the given delta. The delta must be
	// non-negative.
	Add(delta float64)
	// With returns a counter with the given label values attached.
	With(labelValues ...string) Counter
}

// Gauge describes a metric that can go up and down.
type Gauge interface {
	// Set sets the gauge to the given value.
	Set(value float64)
	// Add increases the gauge by the given (possibly negative) delta.
	Add(delta float64)
	// With returns a gauge with the given label values attached.
	With(labelValues ...string) Gauge
}

// CounterInc increases the passed counter by one. If c is nil, nothing
// happens.
func CounterInc(c Counter) {
	CounterAdd(c, 1)
}

// CounterAdd increases the passed counter by delta. If c is nil, nothing
// happens.
func CounterAdd(c Counter, delta float64) {
	if c != nil {
		c.Add(delta)
	}
}

// GaugeSet sets the passed gauge to value. If g is nil, nothing happens.
func GaugeSet(g Gauge, value float64) {
	if g != nil {
		g.Set(value)
	}
}

// CounterWith attaches label values to the counter. If c is nil, the result
// is nil.
func CounterWith(c Counter, labelValues ...string) Counter {
	if c == nil {
		return nil
	}
	return c.With(labelValues...)
}

// TestCounter implements Counter for use in tests.
type TestCounter struct {
	mu sync.Mutex
	v  float64
}

// NewTestCounter creates a new counter usable in tests.
func NewTestCounter() *TestCounter {
	return &TestCounter{}
}

// Add implements Counter.
func (c *TestCounter) Add(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v += delta
}

// With implements Counter. Labels are ignored in tests.
func (c *TestCounter) With(labelValues ...string) Counter {
	return c
}

// CounterValue extracts the value out of a TestCounter.
func CounterValue(c Counter) float64 {
	tc := c.(*TestCounter)
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.v
}
