// Package symbols implements the DWARF symbol container: decoding a
// WebAssembly module's embedded DWARF sections into bidirectional
// address/line indexes, a variable scope tree, and a location-expression
// evaluator, plus the file registry that keys containers by CDP script ID.
package symbols

import "errors"

// ErrModuleParse indicates a module's DWARF sections are absent or
// malformed. It is not fatal to the owning WebAssemblyFile: the file is
// still registered, just with no symbols.
var ErrModuleParse = errors.New("symbols: module parse error")

// ErrAddressUnresolved indicates a (file,line) pair has no matching row in
// any loaded container's line table.
var ErrAddressUnresolved = errors.New("symbols: address unresolved")

// ErrEvaluationFailure indicates a DWARF location expression could not be
// evaluated: an unsupported opcode, a variable marked optimized-out, or the
// pointer-chase hop limit was exceeded.
var ErrEvaluationFailure = errors.New("symbols: evaluation failure")
