package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/erincandescent/derkit/der"
	"github.com/erincandescent/derkit/dshl"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var tagCmd *simpleCommand

type tagView struct {
	Octet       string `json:"octet"`
	Class       string `json:"class"`
	Number      uint8  `json:"number"`
	Constructed bool   `json:"constructed"`
	Name        string `json:"name"`
}

func newTagView(t der.Tag) tagView {
	return tagView{
		Octet:       fmt.Sprintf("0x%02x", t.Value()),
		Class:       t.Class().String(),
		Number:      t.Number(),
		Constructed: t.IsConstructed(),
		Name:        t.String(),
	}
}

func applyClass(t der.Tag, class string) (der.Tag, error) {
	switch class {
	case "universal":
		return t.Universal(), nil
	case "application":
		return t.Application(), nil
	case "context", "context-specific":
		return t.ContextSpecific(), nil
	case "private":
		return t.Private(), nil
	}
	return 0, errors.Errorf("unknown class %q", class)
}

func tagFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("tag", pflag.ContinueOnError)
	flags.StringP("class", "c", "universal", "Tag class: universal, application, context or private")
	flags.BoolP("constructed", "C", false, "Set the constructed bit")
	return flags
}

func tagCmdFn(ctx context.Context, flags *pflag.FlagSet, args dshl.Args) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("usage: tag [--class class] [--constructed] <number>")
	}

	n, err := strconv.ParseUint(args.String(0, ctx), 0, 8)
	if err != nil {
		return nil, errors.Wrap(err, "parsing tag number")
	}
	if n > der.MaxTagNumber {
		return nil, errors.Errorf("tag number %d does not fit in a single octet (max %d)", n, der.MaxTagNumber)
	}

	class, _ := flags.GetString("class")
	t, err := applyClass(der.NewTag(uint8(n)), class)
	if err != nil {
		return nil, err
	}
	if constructed, _ := flags.GetBool("constructed"); constructed {
		t = t.Constructed()
	}

	getLogger(ctx).Debugw("built tag", "octet", t.Value(), "tag", t.String())
	return newTagView(t), nil
}

func init() {
	tagCmd = newSimpleCommand(dshl.CommandInfo{
		Name:  "tag",
		Args:  "[--class class] [--constructed] <number>",
		Short: "Build a tag octet",
		Long:  "Builds a single-octet tag from a number between 0 and 31 and shows how it decomposes.",
	}, tagCmdFn).withFlags(tagFlags)
}
