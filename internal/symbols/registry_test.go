package symbols

import "testing"

func minimalWasmModule() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6d, 1, 0, 0, 0}
}

func TestRegistryLoadIsIdempotent(t *testing.T) {
	r := NewRegistry()
	first, err := r.Load("1", "http://x/mod.wasm", minimalWasmModule())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := r.Load("1", "http://x/mod.wasm", minimalWasmModule())
	if err != nil {
		t.Fatalf("Load (second): %v", err)
	}
	if first != second {
		t.Fatal("Load should refuse to replace an existing entry for the same script ID")
	}
}

func TestRegistryFindFileFromLocationNonWASM(t *testing.T) {
	r := NewRegistry()
	r.LoadNonWASM("js-1", "http://x/app.js")

	file, line, ok := r.FindFileFromLocation("js-1", 9, 0)
	if !ok || file != "http://x/app.js" || line != 10 {
		t.Fatalf("FindFileFromLocation(js-1) = (%q, %d, %v), want (http://x/app.js, 10, true)", file, line, ok)
	}
}

func TestRegistryFindFileFromLocationUnknownScript(t *testing.T) {
	r := NewRegistry()
	if _, _, ok := r.FindFileFromLocation("missing", 0, 0); ok {
		t.Fatal("FindFileFromLocation for an unregistered script ID should report not found")
	}
}

func TestRegistryResetClearsEntries(t *testing.T) {
	r := NewRegistry()
	r.LoadNonWASM("js-1", "http://x/app.js")
	r.Reset()
	if _, ok := r.File("js-1"); ok {
		t.Fatal("Reset should clear all registered files")
	}
}

func TestRegistryFindAddressFromFileLocationFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	f1, _ := r.Load("1", "http://x/a.wasm", minimalWasmModule())
	f1.Container.linesByFile = map[string][]lineRow{"main.c": {{addr: 0x10, file: "main.c", line: 4}}}
	f1.Container.linesByAddr = f1.Container.linesByFile["main.c"]

	f2, _ := r.Load("2", "http://x/b.wasm", minimalWasmModule())
	f2.Container.linesByFile = map[string][]lineRow{"main.c": {{addr: 0x90, file: "main.c", line: 4}}}

	scriptID, addr, ok := r.FindAddressFromFileLocation("main.c", 4)
	if !ok || scriptID != "1" || addr != 0x10 {
		t.Fatalf("FindAddressFromFileLocation = (%q, 0x%x, %v), want (1, 0x10, true)", scriptID, addr, ok)
	}
}
