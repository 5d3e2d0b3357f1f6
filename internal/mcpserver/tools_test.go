package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `debug: false
server:
  host: localhost
  port: 8080
  tls:
    enabled: true
tags: [api, internal]
`

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestSplitWordsTool(t *testing.T) {
	res, out, err := handleSplitWords(context.Background(), &mcp.CallToolRequest{}, splitWordsInput{Input: "foo bar_bazQux"})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, []string{"foo", "bar", "baz", "qux"}, out.Words)
	assert.Equal(t, 4, out.Count)

	_, out, err = handleSplitWords(context.Background(), &mcp.CallToolRequest{}, splitWordsInput{Input: "a.b", Delimiters: []string{"."}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Words)

	res, _, err = handleSplitWords(context.Background(), &mcp.CallToolRequest{}, splitWordsInput{Input: "a", Delimiters: []string{""}})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestConvertCaseTool(t *testing.T) {
	tests := []struct {
		input string
		style string
		want  string
	}{
		{"fooBar", "snake", "foo_bar"},
		{"foo bar_baz", "kebab-case", "foo-bar-baz"},
		{"user_profile", "PascalCase", "UserProfile"},
		{"foo-bar", "camel", "fooBar"},
		{"foo_bar", "snake_to_camel", "fooBar"},
	}
	for _, tt := range tests {
		res, out, err := handleConvertCase(context.Background(), &mcp.CallToolRequest{}, convertCaseInput{Input: tt.input, Style: tt.style})
		require.NoError(t, err)
		assert.Nil(t, res)
		assert.Equal(t, tt.want, out.Result, "%s -> %s", tt.input, tt.style)
	}

	res, _, err := handleConvertCase(context.Background(), &mcp.CallToolRequest{}, convertCaseInput{Input: "x", Style: "title"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestParametrizeTool(t *testing.T) {
	_, out, err := handleParametrize(context.Background(), &mcp.CallToolRequest{}, parametrizeInput{Template: "{{foo}} bar {{baz}}"})
	require.NoError(t, err)
	assert.Equal(t, []string{"baz", "foo"}, out.Names)
	assert.Equal(t, 2, out.Count)

	_, out, err = handleParametrize(context.Background(), &mcp.CallToolRequest{}, parametrizeInput{Template: "%a% b", Open: "%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, out.Names)

	_, out, err = handleParametrize(context.Background(), &mcp.CallToolRequest{}, parametrizeInput{Template: "<x>", Open: "<", Close: ">"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out.Names)
}

func TestEnumeratePathsTool(t *testing.T) {
	_, out, err := handleEnumeratePaths(context.Background(), &mcp.CallToolRequest{}, enumeratePathsInput{
		Doc: docInput{Content: testConfigYAML},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"debug", "server", "server.host", "server.port", "server.tls", "server.tls.enabled", "tags"}, out.Paths)
	assert.Equal(t, 7, out.Count)
	assert.Equal(t, cfg.MaxDepth, out.MaxDepth)

	_, out, err = handleEnumeratePaths(context.Background(), &mcp.CallToolRequest{}, enumeratePathsInput{
		Doc:      docInput{Content: testConfigYAML},
		MaxDepth: intPtr(2),
		LeafOnly: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"debug", "server.host", "server.port", "tags"}, out.Paths)
	assert.True(t, out.LeafOnly)

	res, _, err := handleEnumeratePaths(context.Background(), &mcp.CallToolRequest{}, enumeratePathsInput{
		Doc:      docInput{Content: testConfigYAML},
		MaxDepth: intPtr(-1),
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestResolvePathTool(t *testing.T) {
	_, out, err := handleResolvePath(context.Background(), &mcp.CallToolRequest{}, resolvePathInput{
		Doc:  docInput{Content: testConfigYAML},
		Path: "server.tls.enabled",
	})
	require.NoError(t, err)
	assert.Equal(t, true, out.Value)
	assert.Equal(t, "scalar", out.Kind)

	_, out, err = handleResolvePath(context.Background(), &mcp.CallToolRequest{}, resolvePathInput{
		Doc:  docInput{Content: testConfigYAML},
		Path: "server.tls",
	})
	require.NoError(t, err)
	assert.Equal(t, "object", out.Kind)

	res, _, err := handleResolvePath(context.Background(), &mcp.CallToolRequest{}, resolvePathInput{
		Doc:  docInput{Content: testConfigYAML},
		Path: "server.missing",
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, `at segment "missing" (index 1): missing key`)
}

func TestDeepMergeTools(t *testing.T) {
	base := docInput{Content: `{"enabled": true, "child": {"enabled": true, "name": "x"}}`}

	_, out, err := handleDeepOverride(context.Background(), &mcp.CallToolRequest{}, deepMergeInput{
		Base:  base,
		Patch: docInput{Content: `{"enabled": false, "extra": 1}`},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"enabled": false,
		"child":   map[string]any{"enabled": false, "name": "x"},
	}, out.Result)

	_, out, err = handleDeepInject(context.Background(), &mcp.CallToolRequest{}, deepMergeInput{
		Base:     base,
		Patch:    docInput{Content: `{"extra": 1}`},
		MaxDepth: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"enabled": true,
		"extra":   float64(1),
		"child":   map[string]any{"enabled": true, "name": "x"},
	}, out.Result)

	res, _, err := handleDeepInject(context.Background(), &mcp.CallToolRequest{}, deepMergeInput{
		Base: base,
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
