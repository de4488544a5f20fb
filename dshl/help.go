package dshl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var _ Command = HelpCommand{}

type HelpCommand struct {
}

func (c HelpCommand) CommandInfo() CommandInfo {
	return CommandInfo{
		Name:  "help",
		Args:  "[command]",
		Short: "Display help",
		Long:  "Display help for the shell or a specific command.",
	}
}

func (c HelpCommand) Flags() *pflag.FlagSet {
	return nil
}

func (c HelpCommand) Call(ctx context.Context, flags *pflag.FlagSet, args Args) (interface{}, error) {
	if len(args) == 0 {
		c.ShowIndex(ctx)
		return nil, nil
	}
	return nil, c.ShowCommand(ctx, args)
}

func (c HelpCommand) ShowIndex(ctx context.Context) {
	sh := GetShell(ctx)
	fmt.Fprintf(sh.Err, "Available commands:\n")
	fmt.Fprintf(sh.Err, "\n")

	cmdMaxWidth := 0
	cmds := make(map[string]Command)
	var cmdNames []string
	for name, v := range sh.Scope.All() {
		cmd, ok := v.(Command)
		if !ok {
			continue
		}
		if len(name) > cmdMaxWidth {
			cmdMaxWidth = len(name)
		}
		cmdNames = append(cmdNames, name)
		cmds[name] = cmd
	}
	sort.Strings(cmdNames)
	for _, cmdName := range cmdNames {
		fmt.Fprintf(sh.Err, "  %-*s   %s\n", cmdMaxWidth, cmdName, cmds[cmdName].CommandInfo().Short)
	}
	fmt.Fprintf(sh.Err, "\n")
	fmt.Fprintf(sh.Err, "Try: help [command] for more information\n")
}

func (c HelpCommand) ShowCommand(ctx context.Context, args Args) error {
	sh := GetShell(ctx)
	argStrs := args.Strings()
	cmd, _, err := sh.Lookup(argStrs)
	if err != nil {
		return err
	}
	if cmd == nil {
		return errors.Errorf("not found: %s", strings.Join(argStrs, " "))
	}
	info := cmd.CommandInfo()
	flags := cmd.Flags()
	if flags == nil {
		flags = pflag.NewFlagSet(info.Name, 0)
	}
	fmt.Fprintf(sh.Err, "Usage: %s %s\n", info.Name, info.Args)
	if info.Long != "" {
		fmt.Fprintf(sh.Err, "\n")
		fmt.Fprintf(sh.Err, "%s\n", info.Long)
	}
	if len(info.Subcommands) > 0 {
		fmt.Fprintf(sh.Err, "\nSubcommands:\n")
		for _, sub := range info.Subcommands {
			si := sub.CommandInfo()
			fmt.Fprintf(sh.Err, "  %s %s   %s\n", si.Name, si.Args, si.Short)
		}
	}
	if flagUsages := flags.FlagUsages(); flagUsages != "" {
		fmt.Fprintf(sh.Err, "\n")
		fmt.Fprint(sh.Err, flagUsages)
	}
	return nil
}
