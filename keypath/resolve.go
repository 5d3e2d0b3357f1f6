package keypath

import (
	"github.com/erraggy/shapekit/internal/pathutil"
	"github.com/erraggy/shapekit/internal/plain"
	"github.com/erraggy/shapekit/shapeerrors"
)

// Resolve returns the value at path in root.
//
// It fails with a *shapeerrors.PathNotFoundError when path is empty or has
// an empty segment, when a key is missing, or when a value before the last
// segment is not an object. Slices are never descended into.
func Resolve(root any, path string) (any, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Resolve(root)
}

// Resolve returns the value at p in root. See the package-level Resolve.
func (p Path) Resolve(root any) (any, error) {
	cur := root
	for i, seg := range p.segments {
		obj, ok := plain.AsObject(cur)
		if !ok {
			return nil, p.notFound(i, shapeerrors.ReasonNotObject)
		}
		next, ok := obj[seg]
		if !ok {
			return nil, p.notFound(i, shapeerrors.ReasonMissingKey)
		}
		cur = next
	}
	return cur, nil
}

func (p Path) notFound(index int, reason string) error {
	return &shapeerrors.PathNotFoundError{
		Path:    p.String(),
		Segment: p.segments[index],
		Index:   index,
		Reason:  reason,
	}
}

// Path is a validated key path: at least one segment, none empty.
type Path struct {
	segments []string
}

// Parse validates a dot-separated path.
func Parse(path string) (Path, error) {
	segments := pathutil.Split(path)
	if i := pathutil.FirstEmpty(segments); i >= 0 {
		return Path{}, &shapeerrors.PathNotFoundError{
			Path:    path,
			Segment: "",
			Index:   i,
			Reason:  shapeerrors.ReasonEmptySegment,
		}
	}
	return Path{segments: segments}, nil
}

// MustParse is like Parse but panics on an invalid path.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the dot-joined path.
func (p Path) String() string {
	return pathutil.Join(p.segments...)
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}
