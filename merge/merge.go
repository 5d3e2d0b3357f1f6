package merge

import (
	"github.com/erraggy/shapekit"
	"github.com/erraggy/shapekit/internal/options"
	"github.com/erraggy/shapekit/internal/pathutil"
	"github.com/erraggy/shapekit/internal/plain"
)

// DefaultMaxDepth is the number of object levels merged by default.
const DefaultMaxDepth = 10

// Override returns a copy of base in which every key also present in patch
// takes patch's value verbatim. Keys only in patch are not added.
//
//	Override({"x": 1, "y": 2}, {"y": 9, "z": 0}) // {"x": 1, "y": 9}
func Override(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		if pv, ok := patch[k]; ok {
			out[k] = plain.Copy(pv)
			continue
		}
		out[k] = plain.Copy(v)
	}
	return out
}

// Inject returns the union of base and extra. Keys present in both take
// extra's value.
//
//	Inject({"x": 1}, {"y": 9}) // {"x": 1, "y": 9}
func Inject(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = plain.Copy(v)
	}
	for k, v := range extra {
		out[k] = plain.Copy(v)
	}
	return out
}

// DeepOverride applies Override with patch to base and to every object
// nested in base, down to DefaultMaxDepth levels.
func DeepOverride(base, patch map[string]any) map[string]any {
	return New().DeepOverride(base, patch)
}

// DeepInject applies Inject with extra to base and to every object nested
// in base, down to DefaultMaxDepth levels.
func DeepInject(base, extra map[string]any) map[string]any {
	return New().DeepInject(base, extra)
}

// Merger performs deep merges with reusable settings. A Merger is
// read-only during a merge and safe for concurrent use.
type Merger struct {
	// MaxDepth is the number of object levels to process. At zero or
	// below, deep merges return an unmodified copy of base.
	MaxDepth int
	// Logger receives a debug record whenever an object is left
	// unprocessed by MaxDepth. Nil means no logging.
	Logger shapekit.Logger
}

// New creates a Merger with DefaultMaxDepth.
func New() *Merger {
	return &Merger{MaxDepth: DefaultMaxDepth}
}

// Validate reports a negative MaxDepth.
func (m *Merger) Validate() error {
	return options.ValidateDepth("maxDepth", m.MaxDepth)
}

// DeepOverride is the package-level DeepOverride with m's depth bound.
func (m *Merger) DeepOverride(base, patch map[string]any) map[string]any {
	return m.deep(base, patch, Override, "override")
}

// DeepInject is the package-level DeepInject with m's depth bound.
func (m *Merger) DeepInject(base, extra map[string]any) map[string]any {
	return m.deep(base, extra, Inject, "inject")
}

type combineFunc func(base, patch map[string]any) map[string]any

func (m *Merger) deep(base, patch map[string]any, combine combineFunc, op string) map[string]any {
	b := broadcast{
		patch:   patch,
		combine: combine,
		logger:  shapekit.LoggerOrNop(m.Logger).With("op", op),
		path:    pathutil.Get(),
	}
	defer pathutil.Put(b.path)
	return b.apply(base, m.MaxDepth)
}

// broadcast holds the state of one deep merge.
type broadcast struct {
	patch   map[string]any
	combine combineFunc
	logger  shapekit.Logger
	path    *pathutil.PathBuilder
}

func (b *broadcast) apply(base map[string]any, depth int) map[string]any {
	if depth <= 0 {
		if b.path.Depth() > 0 {
			b.logger.Debug("merge: depth bound reached", "path", b.path.String())
		}
		return plain.CopyObject(base)
	}

	inner := make(map[string]any, len(base))
	for k, v := range base {
		child, ok := plain.AsObject(v)
		if !ok {
			inner[k] = plain.Copy(v)
			continue
		}
		b.path.Push(k)
		inner[k] = b.apply(child, depth-1)
		b.path.Pop()
	}
	return b.combine(inner, b.patch)
}
