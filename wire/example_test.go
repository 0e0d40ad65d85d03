package wire

import (
	"fmt"
)

func ExampleEncoder() {
	enc := NewEncoder()
	enc.Map().
		Key("name").Str("Ada").
		Key("age").U8(36).
		EndMap()
	out, err := enc.IntoBytes()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%# x\n", out)
	// Output: 0x21 0x02 0x00 0x10 0x04 0x00 0x6e 0x61 0x6d 0x65 0x10 0x03 0x00 0x41 0x64 0x61 0x10 0x03 0x00 0x61 0x67 0x65 0x03 0x24
}

func ExampleReader_Map() {
	enc := NewEncoder()
	enc.Map().Key("name").Str("Ada").EndMap()
	buf, err := enc.IntoBytes()
	if err != nil {
		panic(err)
	}
	mr, derr := NewReader(buf).Map()
	if derr != nil {
		panic(derr)
	}
	for {
		k, v, more, derr := mr.Next()
		if derr != nil {
			panic(derr)
		}
		if !more {
			break
		}
		fmt.Printf("%s=%s\n", k, v.Str())
	}
	// Output: name=Ada
}

func ExampleReader_pending() {
	buf, err := NewEncoder().U32(42).IntoBytes()
	if err != nil {
		panic(err)
	}
	r := NewReader(buf[:3])
	_, derr := r.U32()
	fmt.Println(derr)
	// Output: neopack: pending, need 2 more byte(s)
}
