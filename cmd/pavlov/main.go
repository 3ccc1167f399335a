// Command pavlov is a demo runner for the pavlov specification library. It
// executes a bundled sample specification against the console engine. The
// library itself has no CLI surface; this binary is a consumer of the public
// API only.
package main

func main() {
	Execute()
}
