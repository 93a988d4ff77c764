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
	"io"

	"github.com/ajroetker/go-eigenc/ec"
	"github.com/ajroetker/go-eigenc/ec/ops"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every operation on A=[[1,2],[3,4]], B=[[5,6],[7,8]] in both precisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "== float32 ==")
			if err := demo[float32](out); err != nil {
				return err
			}
			fmt.Fprintln(out, "== float64 ==")
			return demo[float64](out)
		},
	}
}

func demo[T ec.Floats](out io.Writer) error {
	a, err := ec.FromRows([][]T{{1, 2}, {3, 4}})
	if err != nil {
		return err
	}
	b, err := ec.FromRows([][]T{{5, 6}, {7, 8}})
	if err != nil {
		return err
	}

	sum, err := ops.Sum(a, b)
	if err != nil {
		return err
	}
	prod, err := ops.Product(a, b)
	if err != nil {
		return err
	}
	tr, err := ops.Transposed(a)
	if err != nil {
		return err
	}
	l, u, err := ops.FactorLU(a)
	if err != nil {
		return err
	}
	q, r, err := ops.FactorQR(a)
	if err != nil {
		return err
	}

	for _, s := range []struct {
		name string
		m    ec.Matrix[T]
	}{
		{"A+B", sum}, {"A*B", prod}, {"Aᵀ", tr},
		{"L", l}, {"U", u}, {"Q", q}, {"R", r},
	} {
		fmt.Fprintf(out, "%s:\n%v", s.name, s.m)
	}
	return nil
}
