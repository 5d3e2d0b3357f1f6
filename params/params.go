package params

import (
	"strings"

	"github.com/erraggy/shapekit/internal/maputil"
	"github.com/erraggy/shapekit/internal/options"
	"github.com/erraggy/shapekit/words"
)

// Marker is the value stored for every extracted parameter.
const Marker = "string"

// Params maps each extracted parameter name to Marker.
type Params map[string]string

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	return maputil.SortedKeys(p)
}

// Has reports whether name was extracted.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Parametrize extracts the placeholders of template delimited by open and
// close. Duplicate names collapse to one entry. If either marker is empty
// the result is empty.
func Parametrize(template, open, close string) Params {
	out := make(Params)
	if open == "" || close == "" {
		return out
	}
	for _, token := range words.Split(template, " ") {
		if name, ok := extract(token, open, close); ok {
			out[name] = Marker
		}
	}
	return out
}

// ParametrizeSymmetric is Parametrize with the same marker on both sides.
//
//	ParametrizeSymmetric("%a% and %b%", "%") // {a, b}
func ParametrizeSymmetric(template, marker string) Params {
	return Parametrize(template, marker, marker)
}

func extract(token, open, close string) (string, bool) {
	start := strings.Index(token, open)
	if start < 0 {
		return "", false
	}
	rest := token[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// Parametrizer holds a reusable marker pair. The zero value is not valid;
// use Validate before relying on a configured Parametrizer.
type Parametrizer struct {
	Open  string
	Close string
}

// New creates a Parametrizer. An empty close reuses open.
func New(open, close string) *Parametrizer {
	if close == "" {
		close = open
	}
	return &Parametrizer{Open: open, Close: close}
}

// Validate reports an empty marker as a *shapeerrors.ConfigError.
func (p *Parametrizer) Validate() error {
	return options.ValidateMarkers(p.Open, p.Close)
}

// Parametrize extracts the placeholders of template.
func (p *Parametrizer) Parametrize(template string) Params {
	return Parametrize(template, p.Open, p.Close)
}
