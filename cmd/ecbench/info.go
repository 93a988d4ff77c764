// Copyright 2025 go-eigenc Authors
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

package main

import (
	"fmt"
	"runtime"

	"github.com/ajroetker/go-eigenc/ec"
	"github.com/ajroetker/go-eigenc/ec/contrib/matmul"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected CPU level and the compiled GEMM backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "platform:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "cpu level:    %s (%d-byte vectors)\n", ec.CurrentName(), ec.CurrentWidth())
			fmt.Fprintf(out, "gemm backend: %s\n", matmul.Backend())
			return nil
		},
	}
}
