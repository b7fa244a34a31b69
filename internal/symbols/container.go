package symbols

import (
	"debug/dwarf"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/daabr/wasmdbg/internal/wasmbin"
)

// lineRow is one decoded DWARF line entry, cached so repeated queries don't
// re-walk the line-number program. Mirrors the cache wazero's
// wasmdebug.DWARFLines keeps per compilation unit, merged here across all
// CUs of a module since a WebAssembly module typically carries few of them.
type lineRow struct {
	addr     Address
	file     string
	line     int
	column   int
	endOfSeq bool
}

// Container is the DWARF Symbol Container for a single WebAssembly module:
// it answers the four queries in the design (address<->line, variable
// enumeration, expression evaluation) from the module's `.debug_*` custom
// sections.
type Container struct {
	data *dwarf.Data

	linesByAddr []lineRow            // sorted by addr, ascending
	linesByFile map[string][]lineRow // per file, sorted by addr

	scopes  []*Scope // one root per subprogram, across all CUs
	globals []Variable

	nextGroupID      int
	groupCache       map[int][]Variable            // memoized composite-member expansions, keyed by child group ID
	typesByOffset    map[dwarf.Offset]*dwarf.Entry // type DIEs, for lazy composite expansion
	pendingComposite []pendingGroup                // composite expansions not yet materialized
}

// NewContainer decodes data's DWARF custom sections and builds the address,
// line, and scope indexes. A module with no `.debug_*` sections is not an
// error: the returned Container simply answers every query as "not found".
func NewContainer(data []byte) (*Container, error) {
	mod, err := wasmbin.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModuleParse, err)
	}
	debug := mod.DebugSections()

	d, err := dwarf.New(
		debug[".debug_abbrev"],
		nil, // aranges
		nil, // frame
		debug[".debug_info"],
		debug[".debug_line"],
		nil, // pubnames
		debug[".debug_ranges"],
		debug[".debug_str"],
	)
	if err != nil {
		// No DWARF at all is not fatal; an empty container still answers
		// every query, just with nothing found.
		return &Container{linesByFile: map[string][]lineRow{}, groupCache: map[int][]Variable{}}, nil
	}

	c := &Container{
		data:          d,
		linesByFile:   map[string][]lineRow{},
		groupCache:    map[int][]Variable{},
		typesByOffset: map[dwarf.Offset]*dwarf.Entry{},
	}
	if err := c.buildLineIndex(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModuleParse, err)
	}
	if err := c.buildScopes(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModuleParse, err)
	}
	return c, nil
}

// buildLineIndex walks every compilation unit's line-number program once,
// in the order wazero's wasmdebug.DWARFLines caches it: read all rows,
// because DWARF does not guarantee the program emits rows in increasing
// address order (Zig is a known offender), then sort.
func (c *Container) buildLineIndex() error {
	r := c.data.Reader()
	for {
		ent, err := r.Next()
		if err != nil {
			return err
		}
		if ent == nil {
			break
		}
		if ent.Tag != dwarf.TagCompileUnit {
			continue
		}

		lr, err := c.data.LineReader(ent)
		if err != nil || lr == nil {
			continue
		}
		var le dwarf.LineEntry
		for {
			err := lr.Next(&le)
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			row := lineRow{
				addr:     Address(le.Address),
				line:     le.Line,
				column:   le.Column,
				endOfSeq: le.EndSequence,
			}
			if le.File != nil {
				row.file = le.File.Name
			}
			c.linesByAddr = append(c.linesByAddr, row)
			if row.file != "" && !row.endOfSeq {
				c.linesByFile[row.file] = append(c.linesByFile[row.file], row)
			}
		}
	}

	sort.Slice(c.linesByAddr, func(i, j int) bool { return c.linesByAddr[i].addr < c.linesByAddr[j].addr })
	for file := range c.linesByFile {
		rows := c.linesByFile[file]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].line != rows[j].line {
				return rows[i].line < rows[j].line
			}
			return rows[i].addr < rows[j].addr
		})
		c.linesByFile[file] = rows
	}
	return nil
}

// AddressToLine implements the address->line tie-break from the design: the
// greatest row whose address is <= addr, excluding a row marked
// end_sequence (which only terminates the previous row's range).
func (c *Container) AddressToLine(addr Address) (file string, line int, ok bool) {
	rows := c.linesByAddr
	i := sort.Search(len(rows), func(i int) bool { return rows[i].addr > addr }) - 1
	if i < 0 || rows[i].endOfSeq {
		return "", 0, false
	}
	return rows[i].file, rows[i].line, true
}

// LineToAddress implements the (file,line)->address tie-break: the row with
// the smallest address among rows matching file (by path suffix) whose line
// is the smallest line number >= the requested line. When several files
// match by suffix, the lexicographically shortest file name wins.
func (c *Container) LineToAddress(file string, line int) (Address, bool) {
	var bestFile string
	for candidate := range c.linesByFile {
		if !pathSuffixMatch(candidate, file) {
			continue
		}
		if bestFile == "" || len(candidate) < len(bestFile) || (len(candidate) == len(bestFile) && candidate < bestFile) {
			bestFile = candidate
		}
	}
	if bestFile == "" {
		return 0, false
	}
	rows := c.linesByFile[bestFile]
	i := sort.Search(len(rows), func(i int) bool { return rows[i].line >= line })
	if i == len(rows) {
		return 0, false
	}
	return rows[i].addr, true
}

// pathSuffixMatch reports whether query matches candidate by path suffix,
// so a user-supplied absolute path matches the compiler-emitted path
// regardless of build root.
func pathSuffixMatch(candidate, query string) bool {
	candidate = strings.ReplaceAll(candidate, "\\", "/")
	query = strings.ReplaceAll(query, "\\", "/")
	return candidate == query || strings.HasSuffix(candidate, "/"+query) || strings.HasSuffix(query, "/"+candidate)
}

// VariablesAt returns the variable descriptors in scope at addr, across
// every scope whose range contains it (outer-to-inner). When groupID is
// non-zero, it returns only the members of that group instead (the lazy
// composite-expansion path).
func (c *Container) VariablesAt(addr Address, groupID int) []Variable {
	if groupID != 0 {
		return c.groupMembers(groupID)
	}
	var out []Variable
	for _, scope := range c.scopes {
		collectContaining(scope, addr, &out)
	}
	return out
}

func collectContaining(s *Scope, addr Address, out *[]Variable) {
	if !s.contains(addr) {
		return
	}
	*out = append(*out, s.Variables...)
	for _, child := range s.Children {
		collectContaining(child, addr, out)
	}
}

// GlobalVariables returns the module's top-level variables, or a group's
// members when groupID is non-zero.
func (c *Container) GlobalVariables(groupID int) []Variable {
	if groupID != 0 {
		return c.groupMembers(groupID)
	}
	return c.globals
}

// groupMembers returns a composite variable's child members, expanding them
// on first request and memoizing the result, so a repeated query at the
// same instruction returns the same member sequence.
func (c *Container) groupMembers(groupID int) []Variable {
	if members, ok := c.groupCache[groupID]; ok {
		return members
	}
	for i, pending := range c.pendingComposite {
		if pending.groupID != groupID {
			continue
		}
		members := c.expandComposite(pending.typeOffset, pending.baseLoc)
		c.groupCache[groupID] = members
		c.pendingComposite = append(c.pendingComposite[:i], c.pendingComposite[i+1:]...)
		return members
	}
	return nil
}

// resolveType turns a type DIE offset into a display-ready TypeRef,
// classifying structs/unions/arrays/pointers as composite (their members
// are expanded lazily, never inlined here) and base types by their
// DW_AT_encoding.
func (c *Container) resolveType(off dwarf.Offset) TypeRef {
	ent, ok := c.typesByOffset[off]
	if !ok {
		ent = c.lookupEntry(off)
	}
	if ent == nil {
		return TypeRef{Name: "<unknown>"}
	}
	name, _ := ent.Val(dwarf.AttrName).(string)
	size, _ := ent.Val(dwarf.AttrByteSize).(int64)

	switch ent.Tag {
	case dwarf.TagPointerType:
		if size == 0 {
			size = 4 // wasm32 pointer width; DWARF sometimes omits DW_AT_byte_size here
		}
		ref := TypeRef{Name: name, ByteSize: size, IsPointer: true, IsComposite: true}
		if inner, ok := ent.Val(dwarf.AttrType).(dwarf.Offset); ok {
			pointee := c.resolveType(inner)
			ref.Pointee = &pointee
		}
		return ref
	case dwarf.TagStructType, dwarf.TagUnionType, dwarf.TagArrayType:
		ref := TypeRef{Name: name, ByteSize: size, IsComposite: true}
		if ent.Tag == dwarf.TagArrayType {
			if inner, ok := ent.Val(dwarf.AttrType).(dwarf.Offset); ok {
				elem := c.resolveType(inner)
				ref.Pointee = &elem
			}
		}
		return ref
	case dwarf.TagTypedef:
		if inner, ok := ent.Val(dwarf.AttrType).(dwarf.Offset); ok {
			ref := c.resolveType(inner)
			if name != "" {
				ref.Name = name
			}
			return ref
		}
		return TypeRef{Name: name}
	case dwarf.TagBaseType:
		enc, _ := ent.Val(dwarf.AttrEncoding).(int64)
		return TypeRef{Name: name, ByteSize: size, Encoding: baseEncoding(enc)}
	default:
		return TypeRef{Name: name, ByteSize: size}
	}
}

// lookupEntry seeks directly to an offset not yet seen during the scope
// walk (e.g. a type only referenced from another compilation unit's DIE).
func (c *Container) lookupEntry(off dwarf.Offset) *dwarf.Entry {
	r := c.data.Reader()
	r.Seek(off)
	ent, err := r.Next()
	if err != nil {
		return nil
	}
	c.typesByOffset[off] = ent
	return ent
}

// baseEncoding maps a DWARF DW_AT_encoding constant to TypeEncoding.
func baseEncoding(enc int64) TypeEncoding {
	switch enc {
	case 0x05, 0x0d: // DW_ATE_signed, DW_ATE_signed_fixed
		return EncodingSigned
	case 0x07, 0x0e: // DW_ATE_unsigned, DW_ATE_unsigned_fixed
		return EncodingUnsigned
	case 0x04: // DW_ATE_float
		return EncodingFloat
	case 0x02: // DW_ATE_boolean
		return EncodingBoolean
	case 0x06: // DW_ATE_signed_char
		return EncodingSignedChar
	case 0x08: // DW_ATE_unsigned_char
		return EncodingUnsignedChar
	default:
		return EncodingUnknown
	}
}
