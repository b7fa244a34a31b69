// Package valuestore implements the value store adapter: it bridges
// CDP Runtime.getProperties' representation of a paused frame's operand
// stack, locals, and globals into the typed value vector the DWARF
// expression machine (internal/symbols) consumes.
package valuestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/pkg/devtools/runtime"
)

// Getter is the subset of the generated Runtime.getProperties command this
// adapter needs; LiveGetter is the production implementation, and tests
// stub it.
type Getter func(ctx context.Context, objectID string) ([]runtime.PropertyDescriptor, error)

// LiveGetter calls the real CDP Runtime.getProperties command.
func LiveGetter(ctx context.Context, objectID string) ([]runtime.PropertyDescriptor, error) {
	result, err := runtime.NewGetProperties(objectID).Do(ctx)
	if err != nil {
		return nil, err
	}
	return result.Result, nil
}

// Build fetches and decodes one scope's worth of values (the artificial
// object CDP returns for a "wasm-expression-stack", "local", or "global"
// scope) into the typed vector internal/symbols.Snapshot expects.
func Build(ctx context.Context, get Getter, objectID string) ([]symbols.Value, error) {
	props, err := get(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("valuestore: getProperties(%s): %w", objectID, err)
	}
	values := make([]symbols.Value, 0, len(props))
	for _, prop := range props {
		v, err := decode(ctx, get, prop.Value)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// BuildSnapshot fetches the three stores (stack, locals, globals)
// concurrently (they share no mutable state), and
// assembles them into a Snapshot.
func BuildSnapshot(ctx context.Context, get Getter, stackObjID, localsObjID, globalsObjID string) (symbols.Snapshot, error) {
	var snap symbols.Snapshot
	var errs [3]error
	var wg sync.WaitGroup

	fetch := func(objID string, dst *[]symbols.Value, slot int) {
		defer wg.Done()
		if objID == "" {
			return
		}
		values, err := Build(ctx, get, objID)
		if err != nil {
			errs[slot] = err
			return
		}
		*dst = values
	}

	wg.Add(3)
	go fetch(stackObjID, &snap.Stack, 0)
	go fetch(localsObjID, &snap.Locals, 1)
	go fetch(globalsObjID, &snap.Globals, 2)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return symbols.Snapshot{}, err
		}
	}
	return snap, nil
}

// decode resolves one property's value to a typed symbols.Value: a
// directly typed scalar is pushed as-is (number -> i32, big-integer ->
// i64); otherwise the entry is itself a wasm-value wrapper object, and its
// {type, value} pair is fetched with a nested getProperties call.
func decode(ctx context.Context, get Getter, obj *runtime.RemoteObject) (symbols.Value, error) {
	if obj == nil {
		return symbols.Value{}, fmt.Errorf("%w: property has no value", ErrProtocolViolation)
	}

	if obj.Type == "number" && len(obj.Value) > 0 {
		var n float64
		if err := json.Unmarshal(obj.Value, &n); err != nil {
			return symbols.Value{}, fmt.Errorf("%w: decoding number: %v", ErrProtocolViolation, err)
		}
		return symbols.Value{Kind: symbols.KindI32, I32: int32(n)}, nil
	}
	if obj.Type == "bigint" {
		i, err := parseBigIntLiteral(obj.UnserializableValue)
		if err != nil {
			return symbols.Value{}, err
		}
		return symbols.Value{Kind: symbols.KindI64, I64: i}, nil
	}

	if obj.ObjectID == "" {
		return symbols.Value{}, fmt.Errorf("%w: non-scalar property has no objectId", ErrProtocolViolation)
	}
	props, err := get(ctx, obj.ObjectID)
	if err != nil {
		return symbols.Value{}, fmt.Errorf("valuestore: getProperties(%s): %w", obj.ObjectID, err)
	}
	return decodeWasmValueWrapper(props)
}

// decodeWasmValueWrapper reads the {type, value} pair CDP returns for a
// WebAssembly register value that isn't directly JSON-serializable
// (i64/f64).
func decodeWasmValueWrapper(props []runtime.PropertyDescriptor) (symbols.Value, error) {
	var kind string
	var valueObj *runtime.RemoteObject
	for _, p := range props {
		switch p.Name {
		case "type":
			if p.Value != nil {
				if err := json.Unmarshal(p.Value.Value, &kind); err != nil {
					return symbols.Value{}, fmt.Errorf("%w: decoding wrapper type: %v", ErrProtocolViolation, err)
				}
			}
		case "value":
			valueObj = p.Value
		}
	}
	if kind == "" || valueObj == nil {
		return symbols.Value{}, fmt.Errorf("%w: wasm value wrapper missing type/value", ErrProtocolViolation)
	}

	switch kind {
	case "i32":
		n, err := scalarNumber(valueObj)
		if err != nil {
			return symbols.Value{}, err
		}
		return symbols.Value{Kind: symbols.KindI32, I32: int32(n)}, nil
	case "i64":
		i, err := scalarBigInt(valueObj)
		if err != nil {
			return symbols.Value{}, err
		}
		return symbols.Value{Kind: symbols.KindI64, I64: i}, nil
	case "f32":
		n, err := scalarNumber(valueObj)
		if err != nil {
			return symbols.Value{}, err
		}
		return symbols.Value{Kind: symbols.KindF32, F32: float32(n)}, nil
	case "f64":
		n, err := scalarNumber(valueObj)
		if err != nil {
			return symbols.Value{}, err
		}
		return symbols.Value{Kind: symbols.KindF64, F64: n}, nil
	default:
		return symbols.Value{}, fmt.Errorf("%w: unknown wasm value type %q", ErrProtocolViolation, kind)
	}
}

// scalarNumber decodes a RemoteObject representing a plain JSON number.
func scalarNumber(obj *runtime.RemoteObject) (float64, error) {
	var n float64
	if len(obj.Value) == 0 {
		return 0, fmt.Errorf("%w: expected a numeric value", ErrProtocolViolation)
	}
	if err := json.Unmarshal(obj.Value, &n); err != nil {
		return 0, fmt.Errorf("%w: decoding number: %v", ErrProtocolViolation, err)
	}
	return n, nil
}

// scalarBigInt decodes a RemoteObject representing either a plain number
// or CDP's not-directly-serializable bigint spelling (decimal digits
// followed by a literal "n").
func scalarBigInt(obj *runtime.RemoteObject) (int64, error) {
	if obj.UnserializableValue != "" {
		return parseBigIntLiteral(obj.UnserializableValue)
	}
	n, err := scalarNumber(obj)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

// parseBigIntLiteral strips the trailing "n" CDP appends to a bigint
// literal and parses the remainder as a signed 64-bit integer.
func parseBigIntLiteral(literal string) (int64, error) {
	trimmed := strings.TrimSuffix(literal, "n")
	i, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing bigint literal %q: %v", ErrProtocolViolation, literal, err)
	}
	return i, nil
}
