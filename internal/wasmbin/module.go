// Package wasmbin parses just enough of the WebAssembly binary format to
// locate the DWARF-carrying custom sections and the code section's byte
// range, mirroring the section walk wazero's wasmdebug package performs for
// the same purpose.
package wasmbin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// sectionID identifies a WebAssembly module section.
type sectionID byte

const (
	sectionCustom sectionID = 0
	sectionCode   sectionID = 10
)

var magic = []byte{0x00, 0x61, 0x73, 0x6d} // "\0asm"

// Module is the result of parsing a WebAssembly binary far enough to
// extract debug-relevant sections.
type Module struct {
	// CustomSections maps a custom section's name to its raw contents.
	// Only sections whose name begins with ".debug_" are of interest to
	// the symbols package, but all custom sections are kept here.
	CustomSections map[string][]byte
	// CodeSectionOffset is the byte offset within the module of the code
	// section's function bodies (after its header and its function-count
	// varint). DWARF addresses for
	// WebAssembly are code-section-relative offsets, per the Chrome
	// DevTools Protocol's convention of reporting them as a column number.
	CodeSectionOffset uint64
}

// ErrMalformed indicates the input is not a valid WebAssembly binary.
var ErrMalformed = errors.New("wasmbin: malformed module")

// Parse reads a WebAssembly module and extracts its custom sections and
// code section offset. A module with no ".debug_*" custom sections is not
// an error: DebugSections will simply be empty.
func Parse(data []byte) (*Module, error) {
	if len(data) < 8 || !bytes.Equal(data[:4], magic) {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformed)
	}
	r := bytes.NewReader(data[8:]) // skip magic + version
	var codeOffset uint64
	sections := map[string][]byte{}
	offset := uint64(8)

	for {
		id, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading section id: %v", ErrMalformed, err)
		}
		offset++
		size, n, err := readVarUint32(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading section size: %v", ErrMalformed, err)
		}
		offset += uint64(n)
		body := make([]byte, size)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, fmt.Errorf("%w: reading section body: %v", ErrMalformed, err)
		}
		switch sectionID(id) {
		case sectionCustom:
			name, rest, err := readCustomSectionName(body)
			if err != nil {
				return nil, fmt.Errorf("%w: custom section name: %v", ErrMalformed, err)
			}
			sections[name] = rest
		case sectionCode:
			// The offset CDP reports is relative to the start of the code
			// section's vector of function bodies, i.e. right after the
			// section's own function-count varint.
			_, n, err := readVarUint32(bytes.NewReader(body))
			if err != nil {
				return nil, fmt.Errorf("%w: code section function count: %v", ErrMalformed, err)
			}
			codeOffset = offset + uint64(n)
		}
		offset += uint64(size)
	}

	return &Module{CustomSections: sections, CodeSectionOffset: codeOffset}, nil
}

// DebugSections returns only the custom sections whose name begins with
// ".debug_", keyed by their full name (e.g. ".debug_info").
func (m *Module) DebugSections() map[string][]byte {
	out := make(map[string][]byte, len(m.CustomSections))
	for name, data := range m.CustomSections {
		if strings.HasPrefix(name, ".debug_") {
			out[name] = data
		}
	}
	return out
}

func readCustomSectionName(body []byte) (name string, rest []byte, err error) {
	r := bytes.NewReader(body)
	n, _, err := readVarUint32(r)
	if err != nil {
		return "", nil, err
	}
	nameBytes := make([]byte, n)
	if _, err := io.ReadFull(r, nameBytes); err != nil {
		return "", nil, err
	}
	restStart := len(body) - r.Len()
	return string(nameBytes), body[restStart:], nil
}

// readVarUint32 decodes an unsigned LEB128 varint, as used throughout the
// WebAssembly binary format for section and vector sizes, returning the
// decoded value and the number of bytes it occupied.
func readVarUint32(r *bytes.Reader) (value uint32, consumed int, err error) {
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, consumed, err
		}
		consumed++
		value |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, consumed, nil
		}
		shift += 7
		if shift >= 35 {
			return 0, consumed, errors.New("wasmbin: varint too long")
		}
	}
}
