package neopack

import "testing"

func TestTag_Valid(t *testing.T) {
	tests := map[string]struct {
		tag  Tag
		want bool
	}{
		"Bool":      {TagBool, true},
		"F64":       {TagF64, true},
		"String":    {TagString, true},
		"Array":     {TagArray, true},
		"Zero":      {Tag(0x00), false},
		"Gap0x0C":   {Tag(0x0C), false},
		"Gap0x22":   {Tag(0x22), false},
		"OutOfBand": {Tag(0xFF), false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.tag.Valid(); got != tc.want {
				t.Errorf("Tag(0x%02x).Valid() = %v, want %v", byte(tc.tag), got, tc.want)
			}
		})
	}
}

func TestTag_ScalarSize(t *testing.T) {
	tests := map[string]struct {
		tag      Tag
		wantSize int
		wantOk   bool
	}{
		"Bool":   {TagBool, 1, true},
		"S8":     {TagS8, 1, true},
		"U16":    {TagU16, 2, true},
		"S32":    {TagS32, 4, true},
		"F32":    {TagF32, 4, true},
		"U64":    {TagU64, 8, true},
		"F64":    {TagF64, 8, true},
		"String": {TagString, 0, false},
		"List":   {TagList, 0, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			size, ok := tc.tag.ScalarSize()
			if size != tc.wantSize || ok != tc.wantOk {
				t.Errorf("ScalarSize() = (%d, %v), want (%d, %v)", size, ok, tc.wantSize, tc.wantOk)
			}
			if got := tc.tag.IsScalar(); got != tc.wantOk {
				t.Errorf("IsScalar() = %v, want %v", got, tc.wantOk)
			}
		})
	}
}

func TestTag_IsBlobIsContainer(t *testing.T) {
	tests := map[string]struct {
		tag           Tag
		wantBlob      bool
		wantContainer bool
	}{
		"Bool":   {TagBool, false, false},
		"Bytes":  {TagBytes, true, false},
		"Struct": {TagStruct, true, false},
		"List":   {TagList, false, true},
		"Map":    {TagMap, false, true},
		"Array":  {TagArray, false, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.tag.IsBlob(); got != tc.wantBlob {
				t.Errorf("IsBlob() = %v, want %v", got, tc.wantBlob)
			}
			if got := tc.tag.IsContainer(); got != tc.wantContainer {
				t.Errorf("IsContainer() = %v, want %v", got, tc.wantContainer)
			}
		})
	}
}

func TestTag_String(t *testing.T) {
	if got, want := TagU32.String(), "U32"; got != want {
		t.Errorf("TagU32.String() = %q, want %q", got, want)
	}
	if got, want := Tag(0xFE).String(), "Tag(0xfe)"; got != want {
		t.Errorf("Tag(0xFE).String() = %q, want %q", got, want)
	}
}
