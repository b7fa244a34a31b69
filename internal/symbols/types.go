package symbols

// Address is a byte offset into a WebAssembly module's code section. CDP
// reports it as the `columnNumber` of a paused location whose `lineNumber`
// is always 0.
type Address uint64

// ValueKind tags the four scalar WebAssembly value types the CDP value
// store adapter and the DWARF expression machine exchange.
type ValueKind int

const (
	KindI32 ValueKind = iota
	KindI64
	KindF32
	KindF64
)

func (k ValueKind) String() string {
	switch k {
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	default:
		return "unknown"
	}
}

// Value is a typed WebAssembly scalar, as produced by the Value Store
// Adapter from CDP's Runtime.getProperties representation.
type Value struct {
	Kind ValueKind
	I32  int32
	I64  int64
	F32  float32
	F64  float64
}

// Snapshot bundles the three value vectors live at a paused instruction:
// the operand stack, the locals, and the module's globals. All three are
// built concurrently by the Value Store Adapter and handed to the
// evaluator as a unit (see internal/valuestore).
type Snapshot struct {
	Stack   []Value
	Locals  []Value
	Globals []Value
}

// MemorySlice is what the evaluator asks its caller for when a value (or an
// intermediate pointer hop) lives in linear memory rather than a register.
type MemorySlice struct {
	Address  uint64
	ByteSize int
}

// Variable describes one DWARF variable or parameter visible at some
// instruction. Name is the DWARF DW_AT_name; DisplayName is the form used
// for expression lookup (see the open question in the design notes: both
// are kept, DisplayName wins for evaluation).
type Variable struct {
	Name         string
	DisplayName  string
	Type         TypeRef
	Location     []byte // raw DWARF location expression (DW_FORM_exprloc bytes)
	GroupID      int
	ChildGroupID int // 0 if the variable is not a composite with children

	// MemberOffset is set instead of Location for a composite's synthesized
	// member variables: their address is the parent's evaluated address
	// plus this byte offset, computed lazily at evaluation time since the
	// parent's address isn't known until a frame is live.
	MemberOffset *int64
}

// TypeRef is a resolved, display-ready description of a DWARF type DIE.
// Composite types (struct/union/array/pointer) carry a reference to the
// group populated on first expansion rather than inlining their members.
type TypeRef struct {
	Name        string
	ByteSize    int64
	Encoding    TypeEncoding
	IsPointer   bool
	IsComposite bool

	// Pointee is the pointed-to (for a pointer) or element (for an array)
	// type, resolved eagerly alongside the TypeRef itself so a dereference
	// or index access can pick the right read width and decode kind
	// instead of guessing. nil for non-pointer, non-array types.
	Pointee *TypeRef
}

// TypeEncoding classifies a base type's DW_AT_encoding for display
// formatting.
type TypeEncoding int

const (
	EncodingUnknown TypeEncoding = iota
	EncodingSigned
	EncodingUnsigned
	EncodingFloat
	EncodingBoolean
	EncodingSignedChar
	EncodingUnsignedChar
)

// Scope is one node of the bottom-up scope tree built from DWARF
// TagSubprogram/TagLexicalBlock/TagInlinedSubroutine entries. Ranges are
// the address intervals (half-open, [lo,hi)) the scope covers.
type Scope struct {
	Name      string
	Ranges    [][2]Address
	Variables []Variable
	Parent    *Scope
	Children  []*Scope
}

// contains reports whether addr falls inside any of the scope's ranges.
func (s *Scope) contains(addr Address) bool {
	for _, r := range s.Ranges {
		if addr >= r[0] && addr < r[1] {
			return true
		}
	}
	return false
}
