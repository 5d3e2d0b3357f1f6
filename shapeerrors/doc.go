// Package shapeerrors provides structured error types for shapekit.
//
// Import path: github.com/erraggy/shapekit/shapeerrors
//
// Every error type has a sentinel for use with [errors.Is] and a concrete
// type for use with [errors.As]:
//
//   - [PathNotFoundError] matches [ErrPathNotFound]
//   - [ConfigError] matches [ErrConfig]
//   - [ParseError] matches [ErrParse]
//
// Resolve a path and branch on the failure:
//
//	v, err := keypath.Resolve(doc, "spec.replicas")
//	var pnf *shapeerrors.PathNotFoundError
//	if errors.As(err, &pnf) {
//	    fmt.Printf("stopped at %q: %s\n", pnf.Segment, pnf.Reason)
//	}
//
// Depth truncation in keypath and merge is never reported as an error.
package shapeerrors
