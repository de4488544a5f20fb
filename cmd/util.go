package cmd

import (
	"bytes"
	"context"
	"io"

	"github.com/erincandescent/derkit/dshl"
	"github.com/erincandescent/derkit/sink"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type simpleCommand struct {
	info  dshl.CommandInfo
	flags func() *pflag.FlagSet
	fn    func(context.Context, *pflag.FlagSet, dshl.Args) (interface{}, error)
}

func newSimpleCommand(
	info dshl.CommandInfo,
	fn func(context.Context, *pflag.FlagSet, dshl.Args) (interface{}, error)) *simpleCommand {

	return &simpleCommand{info: info, fn: fn}
}

func (c *simpleCommand) withFlags(flags func() *pflag.FlagSet) *simpleCommand {
	c.flags = flags
	return c
}

func (c *simpleCommand) addSubcommands(cmd ...dshl.Command) {
	c.info.Subcommands = append(c.info.Subcommands, cmd...)
}

func (c *simpleCommand) CommandInfo() dshl.CommandInfo {
	return c.info
}

func (c *simpleCommand) Flags() *pflag.FlagSet {
	if c.flags == nil {
		return nil
	}
	return c.flags()
}

func (c *simpleCommand) Call(ctx context.Context, flags *pflag.FlagSet, args dshl.Args) (interface{}, error) {
	return c.fn(ctx, flags, args)
}

// encodeBuffer returns a buffer for an encoder to fill and the writer to hand
// it. With debug logging on, the writer logs everything that passes through.
func encodeBuffer(ctx context.Context) (*bytes.Buffer, io.Writer) {
	buf := &bytes.Buffer{}
	log := getLogger(ctx)
	if log.Desugar().Core().Enabled(zap.DebugLevel) {
		return buf, sink.Debug(buf, log)
	}
	return buf, buf
}

// enterScope pushes a modal scope holding cmd's subcommands. Any leftover
// arguments are run in it, and the scope is popped again afterwards.
func enterScope(ctx context.Context, cmd *simpleCommand, prompt string, args dshl.Args) (interface{}, error) {
	sh := dshl.GetShell(ctx)
	scope := sh.PushScope()
	scope.PS1 = dshl.NewPS1(prompt, "! "+prompt)
	scope.Modal = true
	for _, c := range cmd.info.Subcommands {
		sh.AddCommand(c)
	}

	if len(args) > 0 {
		defer sh.PopScope(scope)
		return sh.Exec(ctx, args.Strings(ctx))
	}
	return nil, nil
}
