package debugger

import (
	"github.com/daabr/wasmdbg/pkg/devtools/runtime"
)

// BreakpointID is a breakpoint identifier.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-BreakpointId
type BreakpointID string

// CallFrameID is a call frame identifier.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-CallFrameId
type CallFrameID string

// Location in the source code.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-Location
type Location struct {
	// Script identifier as reported in the `Debugger.scriptParsed`.
	ScriptID string `json:"scriptId"`
	// Line number in the script (0-based).
	LineNumber int64 `json:"lineNumber"`
	// Column number in the script (0-based).
	ColumnNumber int64 `json:"columnNumber,omitempty"`
}

// ScriptPosition is a location in the source code.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-ScriptPosition
type ScriptPosition struct {
	LineNumber   int64 `json:"lineNumber"`
	ColumnNumber int64 `json:"columnNumber"`
}

// LocationRange is a location range within one script.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-LocationRange
type LocationRange struct {
	ScriptID string         `json:"scriptId"`
	Start    ScriptPosition `json:"start"`
	End      ScriptPosition `json:"end"`
}

// CallFrame is a JavaScript call frame. Array of call frames form the call stack.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-CallFrame
type CallFrame struct {
	// CallFrameID is only valid while the virtual machine is paused.
	CallFrameID string `json:"callFrameId"`
	// FunctionName of the function called on this call frame.
	FunctionName string `json:"functionName"`
	// FunctionLocation in the source code.
	FunctionLocation *Location `json:"functionLocation,omitempty"`
	// Location in the source code.
	Location Location `json:"location"`
	// URL is the script name or URL.
	URL string `json:"url"`
	// ScopeChain for this call frame.
	ScopeChain []Scope `json:"scopeChain"`
	// This is the `this` object for this call frame.
	This runtime.RemoteObject `json:"this"`
	// ReturnValue is the value being returned, if the function is at a return point.
	ReturnValue *runtime.RemoteObject `json:"returnValue,omitempty"`
}

// Scope description.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-Scope
type Scope struct {
	// Type of scope: "global", "local", "with", "closure", "catch", "block",
	// "script", "eval", "module", or "wasm-expression-stack".
	Type string `json:"type"`
	// Object representing the scope. For `global` and `with` scopes it
	// represents the actual object; for the rest of the scopes it is an
	// artificial transient object enumerating scope variables as properties.
	Object runtime.RemoteObject `json:"object"`
	Name   string               `json:"name,omitempty"`
	// StartLocation in the source code where the scope starts.
	StartLocation *Location `json:"startLocation,omitempty"`
	// EndLocation in the source code where the scope ends.
	EndLocation *Location `json:"endLocation,omitempty"`
}

// SearchMatch is a search match for a resource.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-SearchMatch
type SearchMatch struct {
	LineNumber  float64 `json:"lineNumber"`
	LineContent string  `json:"lineContent"`
}

// BreakLocation identifies a possible breakpoint location.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-BreakLocation
type BreakLocation struct {
	ScriptID     string `json:"scriptId"`
	LineNumber   int64  `json:"lineNumber"`
	ColumnNumber int64  `json:"columnNumber,omitempty"`
	Type         string `json:"type,omitempty"`
}

// ScriptLanguage is an enum of possible script languages.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-ScriptLanguage
type ScriptLanguage string

// ScriptLanguage valid values.
const (
	ScriptLanguageJavaScript  ScriptLanguage = "JavaScript"
	ScriptLanguageWebAssembly ScriptLanguage = "WebAssembly"
)

// DebugSymbols available for a WebAssembly script.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Debugger/#type-DebugSymbols
type DebugSymbols struct {
	// Type of the debug symbols: "None", "SourceMap", "EmbeddedDWARF" or "ExternalDWARF".
	Type string `json:"type"`
	// ExternalURL of the external symbol source.
	ExternalURL string `json:"externalURL,omitempty"`
}
