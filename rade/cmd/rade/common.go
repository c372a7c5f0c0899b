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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/li-ning888/afsim-rade-sub001/pkg/emlayers"
	"github.com/li-ning888/afsim-rade-sub001/pkg/log"
	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// setupLog configures the process-wide logger from the --log.level flag.
func setupLog(level string) error {
	return log.Setup(log.Config{Level: level})
}

// loadExerciseParams installs exercise tunables from the given config file.
// An empty path keeps the defaults.
func loadExerciseParams(path string) error {
	if path == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("high_density_threshold", emlayers.DefaultHighDensityThreshold)
	v.SetDefault("max_pdu_octets", emlayers.DefaultMaxPDUOctets)
	if err := v.ReadInConfig(); err != nil {
		return serrors.Wrap("reading exercise config", err, "file", path)
	}
	p := emlayers.ExerciseParams{
		HighDensityThreshold: v.GetInt("high_density_threshold"),
		MaxPDUOctets:         v.GetInt("max_pdu_octets"),
	}
	if p.HighDensityThreshold < 0 || p.MaxPDUOctets < 0 {
		return serrors.New("negative exercise parameter",
			"high_density_threshold", p.HighDensityThreshold,
			"max_pdu_octets", p.MaxPDUOctets)
	}
	emlayers.SetExerciseParams(p)
	log.Debug("Loaded exercise parameters",
		"high_density_threshold", p.HighDensityThreshold,
		"max_pdu_octets", p.MaxPDUOctets)
	return nil
}

// getPrintf returns a printf function for the "human" format and a discarding
// one for machine readable formats.
func getPrintf(output string, writer io.Writer) (func(format string, ctx ...interface{}), error) {
	switch output {
	case "human":
		return func(format string, ctx ...interface{}) {
			fmt.Fprintf(writer, format, ctx...)
		}, nil
	case "yaml", "json":
		return func(format string, ctx ...interface{}) {}, nil
	default:
		return nil, serrors.New("format not supported", "format", output)
	}
}
