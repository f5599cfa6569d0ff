package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteDispatchesWithFlags(t *testing.T) {
	reg := NewRegistry()
	fs := flag.NewFlagSet("greet", flag.ContinueOnError)
	name := fs.String("name", "", "who to greet")
	var got string
	var rest []string
	reg.Register("greet", "say hello", fs, func(args []string) error {
		got = *name
		rest = args
		return nil
	})

	require.NoError(t, reg.Execute("greet -name world extra"))
	assert.Equal(t, "world", got)
	assert.Equal(t, []string{"extra"}, rest)
}

func TestExecuteResetsFlagsBetweenInvocations(t *testing.T) {
	reg := NewRegistry()
	fs := flag.NewFlagSet("sel", flag.ContinueOnError)
	none := fs.Bool("none", false, "")
	id := fs.String("id", "", "")
	var gotNone bool
	var gotID string
	reg.Register("sel", "", fs, func(args []string) error {
		gotNone, gotID = *none, *id
		return nil
	})

	require.NoError(t, reg.Execute("sel -none"))
	assert.True(t, gotNone)

	require.NoError(t, reg.Execute("sel -id abc"))
	assert.False(t, gotNone, "-none must not leak from the previous invocation")
	assert.Equal(t, "abc", gotID)
}

func TestExecuteBlankLine(t *testing.T) {
	reg := NewRegistry()
	assert.NoError(t, reg.Execute(""))
	assert.NoError(t, reg.Execute("   "))
}

func TestExecuteUnknownCommand(t *testing.T) {
	reg := NewRegistry()
	err := reg.Execute("frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestExecutePropagatesRunError(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	reg.Register("fail", "always fails", flag.NewFlagSet("fail", flag.ContinueOnError), func(args []string) error {
		return boom
	})
	assert.ErrorIs(t, reg.Execute("fail"), boom)
}

func TestExecuteFlagParseError(t *testing.T) {
	reg := NewRegistry()
	reg.Register("strict", "", flag.NewFlagSet("strict", flag.ContinueOnError), func(args []string) error {
		return nil
	})
	assert.Error(t, reg.Execute("strict -no-such-flag"))
}

func TestNamesSortedAndSummary(t *testing.T) {
	reg := NewRegistry()
	reg.Register("zeta", "last", flag.NewFlagSet("zeta", flag.ContinueOnError), func([]string) error { return nil })
	reg.Register("alpha", "first", flag.NewFlagSet("alpha", flag.ContinueOnError), func([]string) error { return nil })
	assert.Equal(t, []string{"alpha", "zeta"}, reg.Names())
	assert.Equal(t, "first", reg.Summary("alpha"))
	assert.Empty(t, reg.Summary("missing"))
}
