package commands

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/shapekit/shapeerrors"
)

func TestSetupWordsFlags(t *testing.T) {
	fs, flags := SetupWordsFlags()

	assert.Empty(t, flags.Delimiters)
	assert.Equal(t, FormatText, flags.Format)

	require.NoError(t, fs.Parse([]string{"--delimiters", ".,/", "--format", "json", "a.b"}))
	assert.Equal(t, ".,/", flags.Delimiters)
	assert.Equal(t, "json", flags.Format)
	assert.Equal(t, "a.b", fs.Arg(0))
}

func TestHandleWords(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleWords([]string{"fooBar-baz"}))
	})
	assert.Equal(t, "foo\nbar\nbaz\n", out)

	out = captureStdout(t, func() {
		require.NoError(t, HandleWords([]string{"--delimiters", ".,/", "--format", "json", "api.v2/users"}))
	})
	assert.JSONEq(t, `["api", "v2", "users"]`, out)
}

func TestHandleWords_Errors(t *testing.T) {
	assert.NoError(t, HandleWords([]string{"--help"}))
	assert.Error(t, HandleWords([]string{}))
	assert.Error(t, HandleWords([]string{"--format", "xml", "a"}))

	err := HandleWords([]string{"--delimiters", ".,", "a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shapeerrors.ErrConfig))
}

func TestHandleCase(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleCase([]string{"fooBar"}))
	})
	assert.Equal(t, "foo_bar\n", out)

	out = captureStdout(t, func() {
		require.NoError(t, HandleCase([]string{"-s", "kebab", "foo bar_baz", "userId"}))
	})
	assert.Equal(t, "foo-bar-baz\nuser-id\n", out)

	out = captureStdout(t, func() {
		require.NoError(t, HandleCase([]string{"--style", "PascalCase", "user_profile"}))
	})
	assert.Equal(t, "UserProfile\n", out)
}

func TestHandleCase_Errors(t *testing.T) {
	assert.NoError(t, HandleCase([]string{"--help"}))
	assert.Error(t, HandleCase([]string{}))

	err := HandleCase([]string{"-s", "title", "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shapeerrors.ErrConfig))
}

func TestHandleSnakeToCamel(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleSnakeToCamel([]string{"foo_bar", "get_user_by_id"}))
	})
	assert.Equal(t, "fooBar\ngetUserById\n", out)

	assert.NoError(t, HandleSnakeToCamel([]string{"--help"}))
	assert.Error(t, HandleSnakeToCamel(nil))
}

func TestSetupParamsFlags_Usage(t *testing.T) {
	fs, _ := SetupParamsFlags()
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	fs.Usage()

	out := buf.String()
	assert.Contains(t, out, "  shapekit params --open % --close % --format json '%name% is %age%'\n")
	assert.NotContains(t, out, "%!")
}

func TestUsage_NoFormatVerbErrors(t *testing.T) {
	setups := map[string]func() *flag.FlagSet{
		"words":       func() *flag.FlagSet { fs, _ := SetupWordsFlags(); return fs },
		"case":        func() *flag.FlagSet { fs, _ := SetupCaseFlags(); return fs },
		"snake2camel": SetupSnakeToCamelFlags,
		"params":      func() *flag.FlagSet { fs, _ := SetupParamsFlags(); return fs },
		"paths":       func() *flag.FlagSet { fs, _ := SetupPathsFlags(); return fs },
		"resolve":     func() *flag.FlagSet { fs, _ := SetupResolveFlags(); return fs },
		"pick":        func() *flag.FlagSet { fs, _ := SetupPickFlags(); return fs },
		"override":    func() *flag.FlagSet { fs, _ := SetupOverrideFlags(); return fs },
		"inject":      func() *flag.FlagSet { fs, _ := SetupInjectFlags(); return fs },
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			fs := setup()
			var buf bytes.Buffer
			fs.SetOutput(&buf)
			fs.Usage()
			assert.Contains(t, buf.String(), "Usage: shapekit "+name)
			assert.NotContains(t, buf.String(), "%!")
		})
	}
}

func TestHandleParams(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleParams([]string{"{{foo}} bar {{baz}}"}))
	})
	assert.Equal(t, "baz\nfoo\n", out)

	out = captureStdout(t, func() {
		require.NoError(t, HandleParams([]string{"--open", "<", "--close", ">", "--format", "json", "/users/<id>/posts/<post>"}))
	})
	assert.JSONEq(t, `["id"]`, out)
}

func TestHandleParams_Errors(t *testing.T) {
	assert.NoError(t, HandleParams([]string{"--help"}))
	assert.Error(t, HandleParams([]string{}))
	assert.Error(t, HandleParams([]string{"a", "b"}))

	err := HandleParams([]string{"--open", "", "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shapeerrors.ErrConfig))
}

func TestParseList(t *testing.T) {
	assert.Nil(t, ParseList(""))
	assert.Equal(t, []string{"a", "b"}, ParseList("a,b"))
	assert.Equal(t, []string{".", ""}, ParseList(".,"))
}
