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
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "warn"}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRunChecks(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 7, 20} {
		assert.Empty(t, runChecks[float32](rng, n, 1e-4), "float32 n=%d", n)
		assert.Empty(t, runChecks[float64](rng, n, 1e-10), "float64 n=%d", n)
	}
}

func TestInfo(t *testing.T) {
	out := run(t, "info")
	assert.Contains(t, out, "gemm backend:")
	assert.Contains(t, out, "cpu level:")
	assert.NotContains(t, out, "lanes:")
}

func TestDemo(t *testing.T) {
	out := run(t, "demo")
	assert.Contains(t, out, "== float32 ==")
	assert.Contains(t, out, "A*B:\n[19, 22]\n[43, 50]\n")
	assert.Contains(t, out, "U:\n[1, 2]\n[0, -2]\n")
}

func TestCheck(t *testing.T) {
	out := run(t, "check", "-n", "8", "--seed", "42")
	assert.Contains(t, out, "all checks passed")
}

func TestBench(t *testing.T) {
	out := run(t, "bench", "--sizes", "4,8", "--batch", "3", "--workers", "2", "--repeat", "1")
	assert.Contains(t, out, "reference")
}

func TestBadFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"--log-level", "loud", "info"})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "-n", "0"})
	assert.Error(t, cmd.Execute())
}
