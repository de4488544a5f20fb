package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/erincandescent/derkit/config"
	"github.com/erincandescent/derkit/der"
	"github.com/erincandescent/derkit/dshl"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var intCmd *simpleCommand

func intFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("int", pflag.ContinueOnError)
	flags.IntP("width", "w", 64, "Integer width in bits: 8, 16, 32, 64 or 128")
	flags.BoolP("unsigned", "u", false, "Use an unsigned type")
	return flags
}

// intOptions resolves the width and signedness, preferring flags that were
// given explicitly over the configured defaults
func intOptions(ctx context.Context, flags *pflag.FlagSet) (width int, unsigned bool, err error) {
	cfg := getConfig(ctx)
	width, unsigned = cfg.Integer.Width, cfg.Integer.Unsigned
	if flags.Changed("width") {
		width, _ = flags.GetInt("width")
	}
	if flags.Changed("unsigned") {
		unsigned, _ = flags.GetBool("unsigned")
	}

	for _, w := range config.Widths {
		if w == width {
			return width, unsigned, nil
		}
	}
	return 0, false, errors.Errorf("unsupported width %d", width)
}

func encodeAs[T der.Integer](w io.Writer, v T) error {
	_, err := der.EncodeInt(w, v)
	return err
}

func encodeIntString(w io.Writer, s string, width int, unsigned bool) error {
	switch {
	case width == 128 && unsigned:
		v, err := der.ParseUint128(s)
		if err != nil {
			return err
		}
		_, err = der.EncodeUint128(w, v)
		return err

	case width == 128:
		v, err := der.ParseInt128(s)
		if err != nil {
			return err
		}
		_, err = der.EncodeInt128(w, v)
		return err

	case unsigned:
		v, err := strconv.ParseUint(s, 0, width)
		if err != nil {
			return errors.Wrap(err, "parsing value")
		}
		switch width {
		case 8:
			return encodeAs(w, uint8(v))
		case 16:
			return encodeAs(w, uint16(v))
		case 32:
			return encodeAs(w, uint32(v))
		}
		return encodeAs(w, v)

	default:
		v, err := strconv.ParseInt(s, 0, width)
		if err != nil {
			return errors.Wrap(err, "parsing value")
		}
		switch width {
		case 8:
			return encodeAs(w, int8(v))
		case 16:
			return encodeAs(w, int16(v))
		case 32:
			return encodeAs(w, int32(v))
		}
		return encodeAs(w, v)
	}
}

func formatDecoded[T any](v T, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

func decodeIntString(c *der.Cursor, width int, unsigned bool) (string, error) {
	if unsigned {
		switch width {
		case 8:
			return formatDecoded[uint8](der.DecodeUint[uint8](c))
		case 16:
			return formatDecoded[uint16](der.DecodeUint[uint16](c))
		case 32:
			return formatDecoded[uint32](der.DecodeUint[uint32](c))
		case 64:
			return formatDecoded[uint64](der.DecodeUint[uint64](c))
		}
		return formatDecoded[der.Uint128](der.DecodeUint128(c))
	}

	switch width {
	case 8:
		return formatDecoded[int8](der.DecodeInt[int8](c))
	case 16:
		return formatDecoded[int16](der.DecodeInt[int16](c))
	case 32:
		return formatDecoded[int32](der.DecodeInt[int32](c))
	case 64:
		return formatDecoded[int64](der.DecodeInt[int64](c))
	}
	return formatDecoded[der.Int128](der.DecodeInt128(c))
}

func intEncodeCmd(ctx context.Context, flags *pflag.FlagSet, args dshl.Args) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("usage: int encode [--width n] [--unsigned] <value>")
	}
	width, unsigned, err := intOptions(ctx, flags)
	if err != nil {
		return nil, err
	}

	buf, w := encodeBuffer(ctx)
	if err := encodeIntString(w, args.String(0, ctx), width, unsigned); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func intDecodeCmd(ctx context.Context, flags *pflag.FlagSet, args dshl.Args) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("usage: int decode [--width n] [--unsigned] <hex>")
	}
	width, unsigned, err := intOptions(ctx, flags)
	if err != nil {
		return nil, err
	}

	data, err := args.Bytes(0, ctx)
	if err != nil {
		return nil, err
	}

	c := der.NewCursor(data)
	v, err := decodeIntString(c, width, unsigned)
	if err != nil {
		return nil, err
	}
	if c.Remaining() > 0 {
		getLogger(ctx).Warnf("ignoring %d trailing octets", c.Remaining())
	}
	return v, nil
}

func init() {
	intCmd = newSimpleCommand(dshl.CommandInfo{
		Name:  "int",
		Args:  "encode <value> | decode <hex>",
		Short: "Encode and decode INTEGER values",
		Long: "Without a subcommand, enters an int> scope where encode and decode are available directly.\n" +
			"Negative values must follow --, e.g. int encode -- -5.",
	}, func(ctx context.Context, _ *pflag.FlagSet, args dshl.Args) (interface{}, error) {
		return enterScope(ctx, intCmd, "int> ", args)
	})

	intCmd.addSubcommands(
		newSimpleCommand(dshl.CommandInfo{
			Name:  "encode",
			Args:  "[--width n] [--unsigned] <value>",
			Short: "Encode a decimal or 0x-prefixed value",
		}, intEncodeCmd).withFlags(intFlags),
		newSimpleCommand(dshl.CommandInfo{
			Name:  "decode",
			Args:  "[--width n] [--unsigned] <hex>",
			Short: "Decode an INTEGER TLV",
		}, intDecodeCmd).withFlags(intFlags),
	)
}
