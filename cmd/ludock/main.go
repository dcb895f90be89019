// Command ludock is the headless build-and-inspect CLI for LuDock
// projects: create scaffolding, run the load/diff/analyze/render
// pipeline, check the local environment, and emit JSON schemas.
package main

func main() {
	Execute()
}
