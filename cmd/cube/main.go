// Command cube draws a rotating colored cube.
//
//	go run ./cmd/cube/ [-config file.toml] [-v] [-frames n]
package main

import (
	"os"
	"runtime"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/samples/cube"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(cube.Desc(), cube.New()))
}
