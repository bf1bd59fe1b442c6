// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"encoding/json"
	"fmt"

	masker "github.com/ggwhite/go-masker/v2"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "The config subcommand",
	Long: `The config subcommand.
`,
}

// configDumpCmd represents the configDump command.
var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the resolved configuration",
	Long: `Print the fully resolved configuration with secrets masked.
`,
	Run: func(_ *cobra.Command, _ []string) {
		m := masker.NewMaskerMarshaler()

		masked, err := m.Struct(&appConfig)
		if err != nil {
			logFatal("failed to mask config", err)
		}

		out, err := json.MarshalIndent(masked, "", "  ")
		if err != nil {
			logFatal("failed to marshal config", err)
		}

		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configDumpCmd)
}
