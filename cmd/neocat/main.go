// Command neocat is a small demonstrator for the neopack.dev/neopack/wire
// codec: it turns stdin lines into a NEOPACK-encoded Map, and turns a
// NEOPACK-encoded value back into a printed tree.
package main

func main() {
	Execute()
}
