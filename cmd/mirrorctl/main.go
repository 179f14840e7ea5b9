// Command mirrorctl runs the mirror skill locally against request envelopes
// stored as JSON files.
package main

func main() {
	Execute()
}
