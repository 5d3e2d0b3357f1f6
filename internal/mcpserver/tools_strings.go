package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/shapekit/casing"
	"github.com/erraggy/shapekit/params"
	"github.com/erraggy/shapekit/words"
)

type splitWordsInput struct {
	Input      string   `json:"input"                jsonschema:"The string to split"`
	Delimiters []string `json:"delimiters,omitempty" jsonschema:"Explicit word separators (default: space, hyphen, underscore)"`
}

type splitWordsOutput struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

func handleSplitWords(_ context.Context, _ *mcp.CallToolRequest, input splitWordsInput) (*mcp.CallToolResult, splitWordsOutput, error) {
	tok := words.New(input.Delimiters...)
	if err := tok.Validate(); err != nil {
		return errResult(err), splitWordsOutput{}, nil
	}
	ws := tok.Split(input.Input)
	return nil, splitWordsOutput{Words: ws, Count: len(ws)}, nil
}

// styleSnakeToCamel selects casing.SnakeToCamel in convert_case.
const styleSnakeToCamel = "snake_to_camel"

type convertCaseInput struct {
	Input string `json:"input" jsonschema:"The identifier to convert"`
	Style string `json:"style" jsonschema:"Target style: pascal, camel, snake, kebab or snake_to_camel"`
}

type convertCaseOutput struct {
	Result string   `json:"result"`
	Style  string   `json:"style"`
	Words  []string `json:"words,omitempty"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	if strings.EqualFold(input.Style, styleSnakeToCamel) {
		return nil, convertCaseOutput{
			Result: casing.SnakeToCamel(input.Input),
			Style:  styleSnakeToCamel,
		}, nil
	}

	style, err := casing.ParseStyle(input.Style)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}
	ws := casing.SplitCaseToWords(input.Input)
	return nil, convertCaseOutput{
		Result: casing.Join(ws, style),
		Style:  style.String(),
		Words:  ws,
	}, nil
}

type parametrizeInput struct {
	Template string `json:"template"        jsonschema:"Space-separated template text"`
	Open     string `json:"open,omitempty"  jsonschema:"Opening marker (default: SHAPEKIT_OPEN_MARKER)"`
	Close    string `json:"close,omitempty" jsonschema:"Closing marker (default: the open marker when open is set, otherwise SHAPEKIT_CLOSE_MARKER)"`
}

type parametrizeOutput struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

func handleParametrize(_ context.Context, _ *mcp.CallToolRequest, input parametrizeInput) (*mcp.CallToolResult, parametrizeOutput, error) {
	p := params.New(cfg.OpenMarker, cfg.CloseMarker)
	if input.Open != "" {
		p = params.New(input.Open, input.Close)
	} else if input.Close != "" {
		p.Close = input.Close
	}
	if err := p.Validate(); err != nil {
		return errResult(err), parametrizeOutput{}, nil
	}

	names := p.Parametrize(input.Template).Names()
	return nil, parametrizeOutput{Names: names, Count: len(names)}, nil
}
