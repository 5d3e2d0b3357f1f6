package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/shapekit/shapeerrors"
)

func TestParametrize(t *testing.T) {
	tests := []struct {
		name     string
		template string
		open     string
		close    string
		want     []string
	}{
		{
			name:     "curly pair",
			template: "{{foo}} bar {{baz}}",
			open:     "{{",
			close:    "}}",
			want:     []string{"baz", "foo"},
		},
		{
			name:     "duplicates collapse",
			template: "{{id}} {{id}} {{name}}",
			open:     "{{",
			close:    "}}",
			want:     []string{"id", "name"},
		},
		{
			name:     "marker surrounded by text",
			template: "/users/{id}/posts",
			open:     "{",
			close:    "}",
			want:     []string{"id"},
		},
		{
			name:     "first open and next close",
			template: "{a}{b}",
			open:     "{",
			close:    "}",
			want:     []string{"a"},
		},
		{
			name:     "pair split across tokens",
			template: "{{ foo }}",
			open:     "{{",
			close:    "}}",
			want:     []string{},
		},
		{
			name:     "close before open",
			template: "}}foo{{",
			open:     "{{",
			close:    "}}",
			want:     []string{},
		},
		{
			name:     "empty name",
			template: "{{}}",
			open:     "{{",
			close:    "}}",
			want:     []string{""},
		},
		{
			name:     "empty template",
			template: "",
			open:     "{{",
			close:    "}}",
			want:     []string{},
		},
		{
			name:     "empty open marker",
			template: "{{foo}}",
			open:     "",
			close:    "}}",
			want:     []string{},
		},
		{
			name:     "symmetric markers",
			template: ":id and :slug:",
			open:     ":",
			close:    ":",
			want:     []string{"slug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parametrize(tt.template, tt.open, tt.close)
			assert.Equal(t, tt.want, got.Names())
			for _, name := range tt.want {
				assert.Equal(t, Marker, got[name])
			}
		})
	}
}

func TestParametrize_NoEntryForPlainToken(t *testing.T) {
	got := Parametrize("{{foo}} bar {{baz}}", "{{", "}}")
	assert.True(t, got.Has("foo"))
	assert.True(t, got.Has("baz"))
	assert.False(t, got.Has("bar"))
	assert.Len(t, got, 2)
}

func TestParametrizeSymmetric(t *testing.T) {
	got := ParametrizeSymmetric("%a% and %b%", "%")
	assert.Equal(t, []string{"a", "b"}, got.Names())
}

func TestParametrizer(t *testing.T) {
	p := New("<", ">")
	require.NoError(t, p.Validate())
	assert.Equal(t, []string{"x"}, p.Parametrize("<x> y").Names())

	sym := New("$", "")
	assert.Equal(t, "$", sym.Close)
	assert.Equal(t, []string{"v"}, sym.Parametrize("$v$").Names())
}

func TestParametrizer_Validate(t *testing.T) {
	err := (&Parametrizer{Open: "{{"}).Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, shapeerrors.ErrConfig))

	var cfgErr *shapeerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "markers", cfgErr.Option)
	assert.Contains(t, err.Error(), "close")
}
