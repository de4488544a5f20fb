package dshl

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCmd struct {
	info  CommandInfo
	flags func() *pflag.FlagSet
	fn    func(context.Context, *pflag.FlagSet, Args) (interface{}, error)
}

func (cmd *testCmd) CommandInfo() CommandInfo {
	return cmd.info
}

func (cmd *testCmd) Flags() *pflag.FlagSet {
	if cmd.flags == nil {
		return nil
	}
	return cmd.flags()
}

func (cmd *testCmd) Call(ctx context.Context, flags *pflag.FlagSet, args Args) (interface{}, error) {
	return cmd.fn(ctx, flags, args)
}

func newTestShell() (*Shell, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	sh := New()
	sh.Out = &out
	sh.Err = &errOut
	sh.Highlight = false
	return sh, &out, &errOut
}

func TestShellEval(t *testing.T) {
	sh, _, _ := newTestShell()
	sh.AddCommand(&testCmd{
		info: CommandInfo{
			Name:  "test",
			Short: "Echo arguments",
			Subcommands: []Command{
				&testCmd{
					info: CommandInfo{Name: "sub"},
					fn: func(ctx context.Context, flags *pflag.FlagSet, args Args) (interface{}, error) {
						if len(args) == 1 {
							return args.String(0, ctx), nil
						}
						return nil, errors.Errorf("wrong number of args: %d", len(args))
					},
				},
			},
		},
		fn: func(ctx context.Context, flags *pflag.FlagSet, args Args) (interface{}, error) {
			return args.Strings(ctx), nil
		},
	})
	sh.AddCommand(&testCmd{
		info: CommandInfo{Name: "flag"},
		flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("", pflag.ContinueOnError)
			flags.IntP("val", "v", 0, "int flag")
			return flags
		},
		fn: func(ctx context.Context, flags *pflag.FlagSet, args Args) (interface{}, error) {
			return flags.GetInt("val")
		},
	})

	t.Run("Top-level", func(t *testing.T) {
		v, err := sh.Eval(context.Background(), `test`)
		assert.NoError(t, err)
		assert.Equal(t, []string{}, v)

		t.Run("Arg", func(t *testing.T) {
			v, err := sh.Eval(context.Background(), `test hi`)
			assert.NoError(t, err)
			assert.Equal(t, []string{"hi"}, v)
		})

		t.Run("Args", func(t *testing.T) {
			v, err := sh.Eval(context.Background(), `test hi bye`)
			assert.NoError(t, err)
			assert.Equal(t, []string{"hi", "bye"}, v)
		})
	})

	t.Run("Subcommand", func(t *testing.T) {
		_, err := sh.Eval(context.Background(), `test sub`)
		assert.EqualError(t, err, "wrong number of args: 0")

		t.Run("Arg", func(t *testing.T) {
			v, err := sh.Eval(context.Background(), `test sub hi`)
			assert.NoError(t, err)
			assert.Equal(t, "hi", v)
		})

		t.Run("Args", func(t *testing.T) {
			_, err := sh.Eval(context.Background(), `test sub hi bye`)
			assert.EqualError(t, err, "wrong number of args: 2")
		})
	})

	t.Run("Flags", func(t *testing.T) {
		v, err := sh.Eval(context.Background(), `flag --val=123`)
		assert.NoError(t, err)
		assert.Equal(t, 123, v)

		t.Run("Fresh Per Call", func(t *testing.T) {
			v, err := sh.Eval(context.Background(), `flag`)
			assert.NoError(t, err)
			assert.Equal(t, 0, v)
		})

		t.Run("Invalid Value", func(t *testing.T) {
			_, err := sh.Eval(context.Background(), `flag --val=h`)
			assert.EqualError(t, err, "invalid argument \"h\" for \"-v, --val\" flag: strconv.ParseInt: parsing \"h\": invalid syntax")
		})

		t.Run("Invalid Flag", func(t *testing.T) {
			_, err := sh.Eval(context.Background(), `flag --uwu=123`)
			assert.EqualError(t, err, "unknown flag: --uwu")
		})
	})

	t.Run("Empty", func(t *testing.T) {
		v, err := sh.Eval(context.Background(), ``)
		assert.Nil(t, v)
		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := sh.Eval(context.Background(), `weh`)
		assert.EqualError(t, err, "command not found: weh")
	})

	t.Run("Not Callable", func(t *testing.T) {
		sh.Scope.Set("x", 42)
		defer sh.Scope.Delete("x")
		_, err := sh.Eval(context.Background(), `x`)
		assert.EqualError(t, err, "x is not callable (int)")
	})

	t.Run("Unparseable", func(t *testing.T) {
		_, err := sh.Eval(context.Background(), `"`)
		assert.EqualError(t, err, "invalid command line string")
	})
}

func TestShellDump(t *testing.T) {
	sh, out, _ := newTestShell()

	require.NoError(t, sh.Dump(nil))
	assert.Equal(t, "", out.String())

	require.NoError(t, sh.Dump("hello"))
	require.NoError(t, sh.Dump([]byte{0x02, 0x01, 0x7f}))
	require.NoError(t, sh.Dump(map[string]int{"n": 1}))
	assert.Equal(t, "hello\n02017f\n{\n  \"n\": 1\n}\n", out.String())
}

func TestShellDumpError(t *testing.T) {
	sh, _, errOut := newTestShell()
	sh.DumpError(nil)
	assert.Equal(t, "", errOut.String())

	sh.DumpError(errors.New("oh no"))
	assert.Contains(t, errOut.String(), "oh no")
}

func TestShellHelp(t *testing.T) {
	sh, _, errOut := newTestShell()
	sh.AddCommand(&testCmd{
		info: CommandInfo{Name: "echo", Args: "<text>", Short: "Print text", Long: "Prints its arguments."},
		flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("echo", pflag.ContinueOnError)
			flags.Bool("loud", false, "shout")
			return flags
		},
	})

	_, err := sh.Eval(context.Background(), `help`)
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Available commands:")
	assert.Contains(t, errOut.String(), "echo   Print text")
	assert.Contains(t, errOut.String(), "help   Display help")

	errOut.Reset()
	_, err = sh.Eval(context.Background(), `help echo`)
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Usage: echo <text>")
	assert.Contains(t, errOut.String(), "Prints its arguments.")
	assert.Contains(t, errOut.String(), "--loud")

	_, err = sh.Eval(context.Background(), `help nope`)
	assert.EqualError(t, err, "not found: nope")
}

func TestShellComplete(t *testing.T) {
	sh, _, _ := newTestShell()
	sh.AddCommand(&testCmd{info: CommandInfo{Name: "length"}})
	sh.AddCommand(&testCmd{info: CommandInfo{Name: "len2"}})
	sh.Scope.Set("lenvar", "not a command")

	assert.ElementsMatch(t, []string{"length", "len2"}, sh.complete("len"))
	assert.Empty(t, sh.complete("zzz"))
}

func TestShellScopes(t *testing.T) {
	sh, _, _ := newTestShell()
	root := sh.Scope

	child := sh.PushScope()
	child.Modal = true
	child.PS1 = NewPS1("inner> ", "inner!> ")
	assert.Equal(t, "inner> ", sh.Scope.Prompt(nil))
	assert.Equal(t, "inner!> ", sh.Scope.Prompt(errors.New("x")))

	grandchild := sh.PushScope()
	assert.Equal(t, "inner> ", grandchild.Prompt(nil))
	assert.Same(t, child, grandchild.modal())

	sh.PopScope(child)
	assert.Same(t, root, sh.Scope)
	assert.Nil(t, sh.Scope.modal())
	assert.Equal(t, "~> ", sh.Scope.Prompt(nil))
}
