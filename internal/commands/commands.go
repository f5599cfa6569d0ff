// Package commands is the console's verb registry. Every console line is a
// subcommand with its own flags, e.g. "room-preset -name cool-night" or
// "save -path scenes/loft.json".
package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Command is a subcommand with its own flags and a Run function. Flags are
// defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run a
// console line with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. run receives the positional arguments left
// after flag parsing.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns registered command names, sorted, for help output.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Summary returns the one-line description for a command name.
func (r *Registry) Summary(name string) string {
	if c, ok := r.cmds[name]; ok {
		return c.Summary
	}
	return ""
}

// Execute tokenizes a console line and runs it: first token is the command
// name, the rest are flags/positionals. Blank lines are ignored. Returns an
// error for unknown command, flag parse error, or from Run.
func (r *Registry) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := r.cmds[fields[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s (try help)", fields[0])
	}
	// FlagSets live as long as the registry; reset every flag to its default
	// so values from a previous invocation never leak into this one.
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(fields[1:]); err != nil {
		return err
	}
	return cmd.Run(cmd.FlagSet.Args())
}
