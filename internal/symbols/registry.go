package symbols

// WebAssemblyFile is one loaded module: its CDP script identifier, its URL,
// and the DWARF container built from its bytecode. A script identifier
// whose bytecode isn't WebAssembly (a JS frame) has no Container; the
// Registry synthesizes a display (file,line) for those instead.
type WebAssemblyFile struct {
	ScriptID  string
	URL       string
	Container *Container // nil for a non-WASM script identifier
}

// Registry is the WebAssembly file registry: a mapping from CDP
// script identifier to WebAssemblyFile, keyed in insertion order so
// findAddressFromFileLocation can iterate files the way the design
// requires (first match wins).
type Registry struct {
	byScript map[string]*WebAssemblyFile
	order    []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byScript: map[string]*WebAssemblyFile{}}
}

// Load registers a WebAssembly module's bytecode under scriptID. Load is
// idempotent: it refuses to replace an existing entry for the same script
// ID, returning the file already registered there.
func (r *Registry) Load(scriptID, url string, wasmBytes []byte) (*WebAssemblyFile, error) {
	if existing, ok := r.byScript[scriptID]; ok {
		return existing, nil
	}
	container, err := NewContainer(wasmBytes)
	if err != nil {
		// A malformed/absent-DWARF module is still registered: its
		// breakpoints simply stay unverified.
		container = &Container{linesByFile: map[string][]lineRow{}, groupCache: map[int][]Variable{}}
	}
	file := &WebAssemblyFile{ScriptID: scriptID, URL: url, Container: container}
	r.byScript[scriptID] = file
	r.order = append(r.order, scriptID)
	return file, err
}

// LoadNonWASM registers a non-WebAssembly script identifier (a JS frame)
// under its URL, with no container, so stack traces can still name it.
func (r *Registry) LoadNonWASM(scriptID, url string) *WebAssemblyFile {
	if existing, ok := r.byScript[scriptID]; ok {
		return existing
	}
	file := &WebAssemblyFile{ScriptID: scriptID, URL: url}
	r.byScript[scriptID] = file
	r.order = append(r.order, scriptID)
	return file
}

// File returns the registered file for scriptID, if any.
func (r *Registry) File(scriptID string) (*WebAssemblyFile, bool) {
	f, ok := r.byScript[scriptID]
	return f, ok
}

// Reset clears every registered file. Called on `Page.loadEventFired`:
// the file registry does not survive page navigation, though
// breakpoint intent (held separately, in internal/breakpoint) does.
func (r *Registry) Reset() {
	r.byScript = map[string]*WebAssemblyFile{}
	r.order = nil
}

// FindFileFromLocation resolves a CDP (scriptId, columnNumber) pause
// location to a display (file, line). For a WASM script this delegates to
// the container's address->line index; for a non-WASM script identifier it
// synthesizes {file: URL, line: cdpLine+1} so JS frames in a stack trace
// still display sensibly.
func (r *Registry) FindFileFromLocation(scriptID string, cdpLine, columnNumber int) (file string, line int, ok bool) {
	f, found := r.byScript[scriptID]
	if !found {
		return "", 0, false
	}
	if f.Container == nil {
		return f.URL, cdpLine + 1, true
	}
	dwarfFile, dwarfLine, ok := f.Container.AddressToLine(Address(columnNumber))
	if !ok {
		return "", 0, false
	}
	return dwarfFile, dwarfLine, true
}

// FindAddressFromFileLocation iterates files in insertion order and returns
// the first one whose container resolves (file,line) to an address.
func (r *Registry) FindAddressFromFileLocation(file string, line int) (scriptID string, addr Address, ok bool) {
	for _, id := range r.order {
		f := r.byScript[id]
		if f.Container == nil {
			continue
		}
		if a, found := f.Container.LineToAddress(file, line); found {
			return f.ScriptID, a, true
		}
	}
	return "", 0, false
}

// ScriptIDs returns every registered script identifier in insertion order.
func (r *Registry) ScriptIDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
