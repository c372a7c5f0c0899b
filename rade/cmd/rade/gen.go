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
	"os"

	"github.com/spf13/cobra"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
	"github.com/li-ning888/afsim-rade-sub001/rade/gen"
)

func newGen(parent *cobra.Command) *cobra.Command {
	var flags struct {
		pdus     int
		exercise uint8
		logLevel string
	}

	var cmd = &cobra.Command{
		Use:   "gen <file>",
		Short: "Write a deterministic sample emission PDU stream",
		Args:  cobra.ExactArgs(1),
		Example: fmt.Sprintf(`  %[1]s gen sample.bin
  %[1]s gen sample.bin --pdus 10`, parent.CommandPath()),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLog(flags.logLevel); err != nil {
				return serrors.Wrap("setting up logging", err)
			}
			cmd.SilenceUsage = true

			raw, err := gen.Stream(gen.Config{
				PDUs:       flags.pdus,
				ExerciseID: flags.exercise,
			})
			if err != nil {
				return serrors.Wrap("generating stream", err)
			}
			if err := os.WriteFile(args[0], raw, 0644); err != nil {
				return serrors.Wrap("writing stream", err, "file", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d PDUs (%d octets) to %s\n",
				flags.pdus, len(raw), args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.pdus, "pdus", 2, "Number of PDUs to generate")
	cmd.Flags().Uint8Var(&flags.exercise, "exercise", 1, "Exercise ID stamped on each PDU")
	cmd.Flags().StringVar(&flags.logLevel, "log.level", "",
		"Console logging level verbosity (debug|info|error)")
	return cmd
}
