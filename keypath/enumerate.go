package keypath

import (
	"fmt"
	"slices"

	"github.com/erraggy/shapekit"
	"github.com/erraggy/shapekit/internal/maputil"
	"github.com/erraggy/shapekit/internal/options"
	"github.com/erraggy/shapekit/internal/pathutil"
	"github.com/erraggy/shapekit/internal/plain"
)

// DefaultMaxDepth is the number of object levels enumerated by default.
const DefaultMaxDepth = 10

// EnumeratePaths returns the path of every key in shape up to maxDepth
// levels deep, including paths to nested objects. A shape that is not an
// object, or a maxDepth <= 0, yields no paths.
func EnumeratePaths(shape any, maxDepth int) []string {
	e := Enumerator{MaxDepth: maxDepth}
	return e.Enumerate(shape)
}

// EnumerateLeafPaths is EnumeratePaths without the paths to nested objects.
// An empty nested object, or one at the depth bound, contributes nothing.
func EnumerateLeafPaths(shape any, maxDepth int) []string {
	e := Enumerator{MaxDepth: maxDepth, LeafOnly: true}
	return e.Enumerate(shape)
}

// Enumerator lists key paths with reusable settings.
//
// Example:
//
//	e := keypath.New()
//	e.LeafOnly = true
//	e.Logger = shapekit.NewSlogAdapter(slog.Default())
//	paths := e.Enumerate(doc)
type Enumerator struct {
	// MaxDepth is the number of object levels to descend. Values <= 0
	// yield no paths.
	MaxDepth int
	// LeafOnly omits the paths of keys whose values are objects.
	LeafOnly bool
	// Logger receives a debug record whenever a non-empty object is cut
	// off by MaxDepth. Nil means no logging.
	Logger shapekit.Logger
}

// New creates an Enumerator with DefaultMaxDepth.
func New() *Enumerator {
	return &Enumerator{MaxDepth: DefaultMaxDepth}
}

// Validate reports a negative MaxDepth.
func (e *Enumerator) Validate() error {
	return options.ValidateDepth("maxDepth", e.MaxDepth)
}

// Enumerate returns the sorted paths of shape.
func (e *Enumerator) Enumerate(shape any) []string {
	paths := []string{}
	obj, ok := plain.AsObject(shape)
	if !ok {
		return paths
	}

	w := walker{
		leafOnly: e.LeafOnly,
		logger:   shapekit.LoggerOrNop(e.Logger),
		path:     pathutil.Get(),
	}
	defer pathutil.Put(w.path)

	w.walk(obj, e.MaxDepth)
	slices.Sort(w.out)
	if w.out == nil {
		return paths
	}
	return w.out
}

type walker struct {
	leafOnly bool
	logger   shapekit.Logger
	path     *pathutil.PathBuilder
	out      []string
}

func (w *walker) walk(obj map[string]any, depth int) {
	if depth <= 0 {
		if len(obj) > 0 && w.path.Depth() > 0 {
			w.logger.Debug("keypath: depth bound reached",
				"path", w.path.String(),
				"keys", len(obj))
		}
		return
	}
	for _, key := range maputil.SortedKeys(obj) {
		w.path.Push(key)
		if child, ok := plain.AsObject(obj[key]); ok {
			if !w.leafOnly {
				w.out = append(w.out, w.path.String())
			}
			w.walk(child, depth-1)
		} else {
			w.out = append(w.out, w.path.String())
		}
		w.path.Pop()
	}
}

// Option configures Enumerate.
type Option func(*enumerateConfig) error

type enumerateConfig struct {
	maxDepth int
	leafOnly bool
	logger   shapekit.Logger
}

// Enumerate lists the paths of shape using functional options. Without
// options it behaves like EnumeratePaths(shape, DefaultMaxDepth).
//
//	paths, err := keypath.Enumerate(doc,
//	    keypath.WithMaxDepth(3),
//	    keypath.WithLeafOnly(true),
//	)
func Enumerate(shape any, opts ...Option) ([]string, error) {
	cfg := &enumerateConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("keypath: invalid options: %w", err)
		}
	}
	e := Enumerator{MaxDepth: cfg.maxDepth, LeafOnly: cfg.leafOnly, Logger: cfg.logger}
	return e.Enumerate(shape), nil
}

// WithMaxDepth sets the number of object levels to descend.
// Returns an error if depth is negative.
func WithMaxDepth(depth int) Option {
	return func(cfg *enumerateConfig) error {
		if err := options.ValidateDepth("maxDepth", depth); err != nil {
			return err
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithLeafOnly omits the paths of keys whose values are objects.
func WithLeafOnly(enabled bool) Option {
	return func(cfg *enumerateConfig) error {
		cfg.leafOnly = enabled
		return nil
	}
}

// WithLogger sets the logger that reports depth truncation.
func WithLogger(l shapekit.Logger) Option {
	return func(cfg *enumerateConfig) error {
		cfg.logger = l
		return nil
	}
}
