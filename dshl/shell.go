package dshl

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/quick"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	ErrorColor = color.New(color.FgRed, color.Bold)
)

type Shell struct {
	liner *liner.State
	Scope *Scope

	// Out receives command results, Err receives errors and help text.
	Out io.Writer
	Err io.Writer

	// Highlight enables syntax highlighting of structured results.
	Highlight bool
}

func New() *Shell {
	sh := &Shell{
		Scope:     &Scope{PS1: DefaultPS1},
		Out:       os.Stdout,
		Err:       os.Stderr,
		Highlight: true,
	}
	sh.Scope.Set("help", HelpCommand{})
	return sh
}

func (sh *Shell) Run(ctx context.Context) (rerr error) {
	if sh.liner == nil {
		sh.liner = liner.NewLiner()
		sh.liner.SetMultiLineMode(true)
		sh.liner.SetTabCompletionStyle(liner.TabPrints)
		sh.liner.SetCompleter(sh.complete)
		defer func() { rerr = multierr.Append(rerr, sh.liner.Close()) }()
	}

	var lasterr error
	for {
		line, err := sh.liner.Prompt(sh.Scope.Prompt(lasterr))
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(sh.Out)

				// Ctrl+D leaves the innermost modal scope, or the shell.
				if modal := sh.Scope.modal(); modal != nil {
					sh.PopScope(modal)
					continue
				}
				break
			}
			return err
		}
		if line != "" {
			sh.liner.AppendHistory(line)
		}

		var v interface{}
		v, lasterr = sh.Eval(ctx, line)
		sh.DumpError(sh.Dump(v))
		sh.DumpError(lasterr)
	}

	return nil
}

// Offers command names visible in the current scope.
func (sh *Shell) complete(line string) (out []string) {
	for name, v := range sh.Scope.All() {
		if _, ok := v.(Command); ok && len(name) >= len(line) && name[:len(line)] == line {
			out = append(out, name)
		}
	}
	return out
}

func (sh *Shell) AddCommand(cmd Command) {
	sh.Scope.Set(cmd.CommandInfo().Name, cmd)
}

func (sh *Shell) PushScope() *Scope {
	sh.Scope = sh.Scope.Child()
	return sh.Scope
}

func (sh *Shell) PopScope(s *Scope) *Scope {
	sh.Scope = s.Parent
	return sh.Scope
}

func (sh *Shell) Lookup(args []string) (Command, []string, error) {
	if len(args) == 0 {
		return nil, nil, nil
	}
	cmdName := args[0]
	v := sh.Scope.Get(cmdName)
	if v == nil {
		return nil, nil, nil
	}
	cmd, ok := v.(Command)
	if !ok {
		return nil, nil, errors.Errorf("%s is not callable (%T)", cmdName, v)
	}
	return sh.lookupSubcommand(cmd, args[1:])
}

func (sh *Shell) lookupSubcommand(cmd Command, args []string) (Command, []string, error) {
	if len(args) == 0 {
		return cmd, args, nil
	}
	for _, sub := range cmd.CommandInfo().Subcommands {
		if args[0] == sub.CommandInfo().Name {
			return sh.lookupSubcommand(sub, args[1:])
		}
	}
	return cmd, args, nil
}

func (sh *Shell) Eval(ctx context.Context, line string) (interface{}, error) {
	args, err := SplitWords(line)
	if err != nil {
		return nil, err
	}
	return sh.Exec(ctx, args)
}

func (sh *Shell) Exec(ctx context.Context, words []string) (interface{}, error) {
	if len(words) == 0 {
		return nil, nil
	}

	cmd, rest, err := sh.Lookup(words)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, errors.Errorf("command not found: %s", words[0])
	}

	return sh.Call(ctx, cmd, rest)
}

func (sh *Shell) Call(ctx context.Context, cmd Command, args []string) (interface{}, error) {
	ctx = WithShell(ctx, sh)

	flags := cmd.Flags()
	if flags != nil {
		flags.SetOutput(sh.Err)
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		args = flags.Args()
	}

	values := make(Args, len(args))
	for i, arg := range args {
		values[i] = Wrap(arg)
	}
	return cmd.Call(ctx, flags, values)
}

// Prints a command's return value: strings verbatim, bytes as hex, anything else as JSON.
func (sh *Shell) Dump(retval interface{}) error {
	switch v := retval.(type) {
	case nil:
	case string:
		fmt.Fprintln(sh.Out, v)
	case []byte:
		fmt.Fprintln(sh.Out, hex.EncodeToString(v))
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		if !sh.Highlight {
			fmt.Fprintln(sh.Out, string(data))
			return nil
		}
		var buf bytes.Buffer
		if err := quick.Highlight(&buf, string(data), "json", "terminal", "monokai"); err != nil {
			return err
		}
		fmt.Fprintln(sh.Out, buf.String())
	}
	return nil
}

func (sh *Shell) DumpError(err error) {
	if err != nil {
		ErrorColor.Fprintln(sh.Err, err.Error())
	}
}
