// Package ccgerr defines the error-kind taxonomy shared by every package in
// ccgcount: ReadFailure, ParseFailure, MalformedNode, GrounderFailure and
// MissingMapping. Callers branch on kind with errors.Is(err, ccgerr.KindX),
// never on message text.
//
// Kinds:
//
//	ReadFailure     - I/O failure opening or reading a source file.
//	ParseFailure    - a header, node, or mapping line could not be parsed.
//	MalformedNode   - a node line parsed but violates the CCG/NNF structural
//	                  contract (bad arity, out-of-range child index, missing
//	                  value token).
//	GrounderFailure - propagated from the external grounder collaborator.
//	MissingMapping  - a literal's variable id has no counterpart in the
//	                  atom mapping at evaluation time.
package ccgerr

import (
	goerrors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ReadFailure wraps I/O errors opening or reading CCG, NNF, CNF, UC, or
	// grounder-support files.
	ReadFailure = goerrors.NewKind("read failure: %s")

	// ParseFailure wraps a header, node, or mapping line that could not be
	// tokenized into the shape its format demands.
	ParseFailure = goerrors.NewKind("parse failure: %s")

	// MalformedNode wraps a structurally invalid CCG/NNF node: wrong arity,
	// a child index that is not strictly less than its own index, or a
	// missing value token.
	MalformedNode = goerrors.NewKind("malformed node: %s")

	// GrounderFailure wraps an error surfaced by the grounder.Supported
	// collaborator.
	GrounderFailure = goerrors.NewKind("grounder failure: %s")

	// MissingMapping indicates a literal was encountered whose variable id
	// has no atom-mapping counterpart. Warn-and-skip in verbose mode,
	// fatal otherwise (see ccgerr.IsFatal).
	MissingMapping = goerrors.NewKind("missing mapping: %s")
)

// IsFatal reports whether err must abort the calling operation. Every kind
// is fatal except MissingMapping, which callers may downgrade to a logged
// warning when running in verbose mode (spec: "warn-and-skip in verbose
// mode, fatal otherwise").
func IsFatal(err error, verbose bool) bool {
	if err == nil {
		return false
	}
	if verbose && MissingMapping.Is(err) {
		return false
	}
	return true
}
