package wire

import (
	"bytes"
	"testing"

	"neopack.dev/neopack"
)

func TestEncoder_Scalar(t *testing.T) {
	enc := NewEncoder()
	enc.U32(42)
	got, err := enc.IntoBytes()
	if err != nil {
		t.Fatalf("IntoBytes(): %v", err)
	}
	want := []byte{0x07, 0x2A, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestEncoder_String(t *testing.T) {
	enc := NewEncoder()
	enc.Str("hi")
	got, err := enc.IntoBytes()
	if err != nil {
		t.Fatalf("IntoBytes(): %v", err)
	}
	want := []byte{0x10, 0x02, 0x00, 'h', 'i'}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestEncoder_List(t *testing.T) {
	enc := NewEncoder()
	enc.List().U8(1).U8(2).U8(3).EndList()
	got, err := enc.IntoBytes()
	if err != nil {
		t.Fatalf("IntoBytes(): %v", err)
	}
	want := []byte{
		0x20, 0x03, 0x00,
		0x03, 0x01,
		0x03, 0x02,
		0x03, 0x03,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestEncoder_Map(t *testing.T) {
	enc := NewEncoder()
	enc.Map().
		Key("name").Str("Ada").
		Key("age").U8(36).
		EndMap()
	got, err := enc.IntoBytes()
	if err != nil {
		t.Fatalf("IntoBytes(): %v", err)
	}
	want := []byte{
		0x21, 0x02, 0x00,
		0x10, 0x04, 0x00, 'n', 'a', 'm', 'e',
		0x10, 0x03, 0x00, 'A', 'd', 'a',
		0x10, 0x03, 0x00, 'a', 'g', 'e',
		0x03, 36,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestEncoder_Array(t *testing.T) {
	enc := NewEncoder()
	enc.Array(neopack.TagU32, 4).
		Push([]byte{0x01, 0x00, 0x00, 0x00}).
		Push([]byte{0x02, 0x00, 0x00, 0x00}).
		EndArray()
	got, err := enc.IntoBytes()
	if err != nil {
		t.Fatalf("IntoBytes(): %v", err)
	}
	want := []byte{
		0x23, byte(neopack.TagU32), 0x04, 0x00, 0x02, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestEncoder_NestedContainers(t *testing.T) {
	enc := NewEncoder()
	enc.Map().
		Key("items").List().U8(1).U8(2).EndList().
		EndMap()
	got, err := enc.IntoBytes()
	if err != nil {
		t.Fatalf("IntoBytes(): %v", err)
	}
	want := []byte{
		0x21, 0x01, 0x00,
		0x10, 0x05, 0x00, 'i', 't', 'e', 'm', 's',
		0x20, 0x02, 0x00,
		0x03, 0x01,
		0x03, 0x02,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestEncoder_IntoBytesOpenScope(t *testing.T) {
	enc := NewEncoder()
	enc.List()
	if _, err := enc.IntoBytes(); err == nil {
		t.Error("IntoBytes() with an open scope: want error, got nil")
	}
}

func TestEncoder_PanicsOnMisuse(t *testing.T) {
	tests := map[string]func(*Encoder){
		"ValueInArray":       func(e *Encoder) { e.Array(neopack.TagU8, 1); e.U8(1) },
		"MapValueWithoutKey": func(e *Encoder) { e.Map(); e.U8(1) },
		"DanglingKey":        func(e *Encoder) { e.Map(); e.Key("k"); e.EndMap() },
		"KeyWithoutMap":      func(e *Encoder) { e.Key("k") },
		"EndListMismatch":    func(e *Encoder) { e.Map(); e.EndList() },
		"PushWithoutArray":   func(e *Encoder) { e.Push([]byte{1}) },
		"PushWrongStride":    func(e *Encoder) { e.Array(neopack.TagU32, 4); e.Push([]byte{1}) },
		"ZeroStride":         func(e *Encoder) { e.Array(neopack.TagU32, 0) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			fn(NewEncoder())
		})
	}
}

func TestEncoder_Reset(t *testing.T) {
	enc := NewEncoder()
	enc.List()
	enc.Reset()
	enc.U8(9)
	got, err := enc.IntoBytes()
	if err != nil {
		t.Fatalf("IntoBytes(): %v", err)
	}
	want := []byte{0x03, 0x09}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}
