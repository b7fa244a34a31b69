package valuestore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/daabr/wasmdbg/internal/symbols"
	"github.com/daabr/wasmdbg/pkg/devtools/runtime"
)

func rawNumber(n float64) json.RawMessage {
	b, _ := json.Marshal(n)
	return b
}

func rawString(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

func TestBuildDecodesDirectNumberAsI32(t *testing.T) {
	get := func(ctx context.Context, objectID string) ([]runtime.PropertyDescriptor, error) {
		return []runtime.PropertyDescriptor{
			{Name: "0", Value: &runtime.RemoteObject{Type: "number", Value: rawNumber(42)}},
		}, nil
	}

	values, err := Build(context.Background(), get, "locals-object-id")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(values) != 1 || values[0].Kind != symbols.KindI32 || values[0].I32 != 42 {
		t.Fatalf("Build() = %+v, want [{i32 42}]", values)
	}
}

func TestBuildDecodesBigIntAsI64(t *testing.T) {
	get := func(ctx context.Context, objectID string) ([]runtime.PropertyDescriptor, error) {
		return []runtime.PropertyDescriptor{
			{Name: "0", Value: &runtime.RemoteObject{Type: "bigint", UnserializableValue: "9007199254740993n"}},
		}, nil
	}

	values, err := Build(context.Background(), get, "stack-object-id")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(values) != 1 || values[0].Kind != symbols.KindI64 || values[0].I64 != 9007199254740993 {
		t.Fatalf("Build() = %+v, want i64 9007199254740993", values)
	}
}

func TestBuildDecodesWasmValueWrapper(t *testing.T) {
	get := func(ctx context.Context, objectID string) ([]runtime.PropertyDescriptor, error) {
		switch objectID {
		case "locals-object-id":
			return []runtime.PropertyDescriptor{
				{Name: "0", Value: &runtime.RemoteObject{Type: "object", ObjectID: "wasm-value-1"}},
			}, nil
		case "wasm-value-1":
			return []runtime.PropertyDescriptor{
				{Name: "type", Value: &runtime.RemoteObject{Value: rawString("f64")}},
				{Name: "value", Value: &runtime.RemoteObject{Type: "number", Value: rawNumber(3.5)}},
			}, nil
		}
		return nil, nil
	}

	values, err := Build(context.Background(), get, "locals-object-id")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(values) != 1 || values[0].Kind != symbols.KindF64 || values[0].F64 != 3.5 {
		t.Fatalf("Build() = %+v, want f64 3.5", values)
	}
}

func TestBuildSnapshotPopulatesAllThreeStores(t *testing.T) {
	get := func(ctx context.Context, objectID string) ([]runtime.PropertyDescriptor, error) {
		return []runtime.PropertyDescriptor{
			{Name: "0", Value: &runtime.RemoteObject{Type: "number", Value: rawNumber(1)}},
		}, nil
	}

	snap, err := BuildSnapshot(context.Background(), get, "stack", "locals", "globals")
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}
	if len(snap.Stack) != 1 || len(snap.Locals) != 1 || len(snap.Globals) != 1 {
		t.Fatalf("BuildSnapshot() = %+v, want all three stores populated", snap)
	}
}

func TestDecodeRejectsNilValue(t *testing.T) {
	get := func(ctx context.Context, objectID string) ([]runtime.PropertyDescriptor, error) { return nil, nil }
	if _, err := decode(context.Background(), get, nil); err == nil {
		t.Fatal("expected ErrProtocolViolation for a nil property value")
	}
}
