package cmd

import (
	"context"
	"strconv"

	"github.com/erincandescent/derkit/der"
	"github.com/erincandescent/derkit/dshl"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var lengthCmd *simpleCommand

type lengthView struct {
	Value     uint32 `json:"value"`
	HeaderLen int    `json:"header_len"`
	Trailing  int    `json:"trailing,omitempty"`
}

func lengthEncodeCmd(ctx context.Context, _ *pflag.FlagSet, args dshl.Args) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("usage: length encode <n>")
	}

	n, err := strconv.ParseUint(args.String(0, ctx), 0, 32)
	if err != nil {
		return nil, errors.Wrap(err, "parsing length")
	}
	l, err := der.NewLength(uint32(n))
	if err != nil {
		return nil, err
	}

	buf, w := encodeBuffer(ctx)
	if _, err := l.Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lengthDecodeCmd(ctx context.Context, _ *pflag.FlagSet, args dshl.Args) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("usage: length decode <hex>")
	}

	data, err := args.Bytes(0, ctx)
	if err != nil {
		return nil, err
	}

	c := der.NewCursor(data)
	l, err := der.DecodeLength(c)
	if err != nil {
		return nil, err
	}
	return lengthView{Value: l.Value(), HeaderLen: c.Offset(), Trailing: c.Remaining()}, nil
}

func init() {
	lengthCmd = newSimpleCommand(dshl.CommandInfo{
		Name:  "length",
		Args:  "encode <n> | decode <hex>",
		Short: "Encode and decode length headers",
		Long:  "Without a subcommand, enters a length> scope where encode and decode are available directly.",
	}, func(ctx context.Context, _ *pflag.FlagSet, args dshl.Args) (interface{}, error) {
		return enterScope(ctx, lengthCmd, "length> ", args)
	})

	lengthCmd.addSubcommands(
		newSimpleCommand(dshl.CommandInfo{
			Name:  "encode",
			Args:  "<n>",
			Short: "Encode a content length (1 to 4294967295)",
		}, lengthEncodeCmd),
		newSimpleCommand(dshl.CommandInfo{
			Name:  "decode",
			Args:  "<hex>",
			Short: "Decode a length header",
		}, lengthDecodeCmd),
	)
}
