// Command uvwrap shows the texture wrap modes on four quads.
//
//	go run ./cmd/uvwrap/ [-config file.toml] [-v] [-frames n]
package main

import (
	"os"
	"runtime"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/samples/uvwrap"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(uvwrap.Desc(), uvwrap.New()))
}
