package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decint/batch"
	"github.com/calebcase/decint/integer"
)

// run executes the command line in args against a config file that does not
// exist, returning standard output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	out := bytes.NewBuffer(nil)
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestEval(t *testing.T) {
	type TC struct {
		args []string
		out  string
	}

	tcs := []TC{
		{args: []string{"123", "+", "123"}, out: "246\n"},
		{args: []string{"123", "-", "123"}, out: "0\n"},
		{
			args: []string{"340282366920938463463374607431768211455", "*", "340282366920938463463374607431768211455"},
			out:  "115792089237316195423570985008687907852589419931798687112530834793049593217025\n",
		},
		{args: []string{"121", "/", "11"}, out: "11\n"},
		{args: []string{"999", "+", "1"}, out: "1000\n"},
		{args: []string{"--", "999", "-", "1999"}, out: "-1000\n"},
		{args: []string{"--", "-7", "/", "2"}, out: "-3\n"},
	}

	for _, tc := range tcs {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, "", append([]string{"eval"}, tc.args...)...)
			require.NoError(t, err)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "", "eval", "1", "/", "0")
	require.True(t, integer.DivisionByZero.Has(err), "%+v", err)

	_, err = run(t, "", "eval", "1", "%", "2")
	require.True(t, batch.Error.Has(err), "%+v", err)

	_, err = run(t, "", "eval", "1_000", "+", "1")
	require.True(t, integer.InvalidDigit.Has(err), "%+v", err)

	_, err = run(t, "", "eval", "1", "+")
	require.Error(t, err)
}

func TestEvalLenient(t *testing.T) {
	out, err := run(t, "", "--lenient", "eval", "1_000", "+", "1")
	require.NoError(t, err)
	require.Equal(t, "1001\n", out)
}

func TestEvalLenientFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lenient: true\n"), 0o644))

	cmd := newRootCmd()
	out := bytes.NewBuffer(nil)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--config", path, "eval", "1,000", "*", "2"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "2000\n", out.String())
}

func TestBatch(t *testing.T) {
	doc := `
exprs:
  - {x: "123", op: "+", y: "123"}
  - {x: "121", op: "/", y: "11"}
  - {x: "999", op: "-", y: "1999"}
`

	t.Run("stdin", func(t *testing.T) {
		out, err := run(t, doc, "batch", "-")
		require.NoError(t, err)
		require.Equal(t, "123 + 123 = 246\n121 / 11 = 11\n999 - 1999 = -1000\n", out)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exprs.yaml")
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		out, err := run(t, "", "batch", path)
		require.NoError(t, err)
		require.Equal(t, "123 + 123 = 246\n121 / 11 = 11\n999 - 1999 = -1000\n", out)
	})

	t.Run("failure", func(t *testing.T) {
		out, err := run(t, `exprs: [{x: "1", op: "/", y: "0"}, {x: "2", op: "*", y: "2"}]`, "batch", "-")
		require.Error(t, err)
		require.True(t, batch.Error.Has(err))
		require.Contains(t, out, "1 / 0: division by zero")
		require.Contains(t, out, "2 * 2 = 4\n")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "batch", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestEncodeDecode(t *testing.T) {
	out, err := run(t, "", "encode", "--", "0", "1", "-1", "4095")
	require.NoError(t, err)
	require.Equal(t, "808283"+"3ffe"+"\n", out)

	out, err = run(t, "", "decode", "8082833ffe")
	require.NoError(t, err)
	require.Equal(t, "0\n1\n-1\n4095\n", out)

	_, err = run(t, "", "decode", "zz")
	require.True(t, integer.Error.Has(err))

	_, err = run(t, "", "decode", "00")
	require.True(t, integer.Error.Has(err))
}
