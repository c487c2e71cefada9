// Command imgui shows the debug UI's widgets and demo window.
//
//	go run ./cmd/imgui/ [-config file.toml] [-v] [-frames n]
package main

import (
	"os"
	"runtime"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/samples/imgui"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(imgui.Desc(), imgui.New()))
}
