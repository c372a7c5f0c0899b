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
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
	"github.com/li-ning888/afsim-rade-sub001/rade/dump"
)

func newDump(parent *cobra.Command) *cobra.Command {
	var flags struct {
		format         string
		validate       bool
		logLevel       string
		exerciseConfig string
	}

	var cmd = &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode a capture of emission PDUs",
		Args:  cobra.ExactArgs(1),
		Example: fmt.Sprintf(`  %[1]s dump capture.bin
  %[1]s dump capture.bin --format json
  %[1]s dump capture.bin --validate --exercise-config exercise.yml`,
			parent.CommandPath()),
		Long: `'dump' decodes a file containing back-to-back emission PDUs and prints a
per-beam report. PDUs decoded before a malformed one are still reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLog(flags.logLevel); err != nil {
				return serrors.Wrap("setting up logging", err)
			}
			if err := loadExerciseParams(flags.exerciseConfig); err != nil {
				return err
			}
			printf, err := getPrintf(flags.format, cmd.OutOrStdout())
			if err != nil {
				return serrors.Wrap("get formatting", err)
			}
			cmd.SilenceUsage = true

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return serrors.Wrap("reading capture", err, "file", args[0])
			}
			res, runErr := dump.Run(context.Background(), raw, dump.Config{
				Validate: flags.validate,
			})

			switch flags.format {
			case "human":
				printf("Capture %s\n", args[0])
				res.Human(cmd.OutOrStdout(), flags.validate)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				if err := enc.Encode(res); err != nil {
					return err
				}
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(res); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "human",
		"Specify the output format (human|json|yaml)")
	cmd.Flags().BoolVar(&flags.validate, "validate", false,
		"Annotate each beam with its validity check result")
	cmd.Flags().StringVar(&flags.logLevel, "log.level", "",
		"Console logging level verbosity (debug|info|error)")
	cmd.Flags().StringVar(&flags.exerciseConfig, "exercise-config", "",
		"Exercise parameter file (high_density_threshold, max_pdu_octets)")
	return cmd
}
