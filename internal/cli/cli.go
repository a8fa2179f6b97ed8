// Copyright 2025-2026 Meshbuild, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the gatewaycfg command line tool, a thin shell
// around the library for toolchains that want rendered listener
// configuration as a document rather than as Go values.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/meshbuild/gatewaycfg/gatewayfile"
)

// New returns the root command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "gatewaycfg",
		Short:         "Render virtual gateway listener configuration",
		Long:          "gatewaycfg renders a virtual-gateway declaration file into the listener configuration document consumed by the provisioning engine.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRenderCommand())
	root.AddCommand(newCheckCommand())
	return root
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRenderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <gateway-file>",
		Short: "Render a gateway declaration file",
		Long: `Render a gateway declaration file into the engine-facing document.

Examples:
  gatewaycfg render gateway.yaml                 # JSON document on stdout
  gatewaycfg render gateway.yaml --output yaml   # YAML instead`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := renderFile(args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch output {
			case "json":
				data, err = json.MarshalIndent(doc, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(doc)
			default:
				return fmt.Errorf("unknown output format %q (want json or yaml)", output)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format (json or yaml)")
	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <gateway-file>",
		Short: "Check a gateway declaration file",
		Long: `Check that a gateway declaration file renders cleanly, without
printing the document. Exits non-zero on any configuration error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := renderFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d listener(s) OK\n", doc.GatewayName, len(doc.Listeners))
			return nil
		},
	}
}

func renderFile(path string) (*gatewayfile.Document, error) {
	gateway, err := gatewayfile.Load(path)
	if err != nil {
		return nil, err
	}
	return gateway.Render(nil)
}
