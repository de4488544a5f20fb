package cmd

import (
	"context"
	"encoding/hex"

	"github.com/erincandescent/derkit/der"
	"github.com/erincandescent/derkit/dshl"
	"github.com/erincandescent/derkit/tlv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var dumpCmd *simpleCommand

type elementView struct {
	Offset   int           `json:"offset"`
	Tag      tagView       `json:"tag"`
	Length   int           `json:"length"`
	Value    string        `json:"value,omitempty"`
	Integer  string        `json:"integer,omitempty"`
	Children []elementView `json:"children,omitempty"`
}

// newElementView converts e, which was parsed from data
func newElementView(data []byte, e tlv.Element) elementView {
	v := elementView{
		Offset: e.Offset,
		Tag:    newTagView(e.Tag),
		Length: len(e.Content),
	}

	if e.Tag.IsConstructed() {
		for _, child := range e.Children {
			v.Children = append(v.Children, newElementView(data, child))
		}
		return v
	}

	v.Value = hex.EncodeToString(e.Content)
	if e.Tag == der.TagInteger {
		end := e.Offset + e.HeaderLen + len(e.Content)
		if i, err := der.DecodeInt128(der.NewCursor(data[e.Offset:end])); err == nil {
			v.Integer = i.String()
		}
	}
	return v
}

func dumpCmdFn(ctx context.Context, _ *pflag.FlagSet, args dshl.Args) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("usage: dump <hex>")
	}

	data, err := args.Bytes(0, ctx)
	if err != nil {
		return nil, err
	}

	elems, err := tlv.Parse(data)
	if err != nil {
		return nil, err
	}
	getLogger(ctx).Debugf("parsed %d top-level elements from %d octets", len(elems), len(data))

	out := make([]elementView, len(elems))
	for i, e := range elems {
		out[i] = newElementView(data, e)
	}
	return out, nil
}

func init() {
	dumpCmd = newSimpleCommand(dshl.CommandInfo{
		Name:  "dump",
		Args:  "<hex>",
		Short: "Show the TLV structure of an encoding",
		Long:  "Parses a sequence of TLVs, descending into constructed elements, and prints the tree.",
	}, dumpCmdFn)
}
