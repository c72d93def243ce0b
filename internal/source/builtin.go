package source

import (
	_ "embed"
)

// builtinGuidelines is the fallback guideline document compiled into the
// binary, used when no source is configured or the builtin: URI is given.
//
//go:embed guidelines.md
var builtinGuidelines string

// Builtin returns the embedded guideline text.
func Builtin() string { return builtinGuidelines }
