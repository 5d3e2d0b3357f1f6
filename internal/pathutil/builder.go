package pathutil

import "strings"

// PathBuilder provides incremental dot-separated path construction.
// The full string is only materialized when String() is called.
type PathBuilder struct {
	segments []string
	length   int // pre-calculated length for String() allocation
}

// Push adds a segment to the path.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
	if len(p.segments) > 1 {
		p.length++ // separator
	}
	p.length += len(segment)
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
	if len(p.segments) > 0 {
		p.length--
	}
}

// Depth returns the number of segments currently pushed.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Segments returns a copy of the current segments.
func (p *PathBuilder) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		b.WriteByte(Separator)
		b.WriteString(seg)
	}
	return b.String()
}
