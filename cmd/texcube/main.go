// Command texcube draws a rotating textured cube.
//
//	go run ./cmd/texcube/ [-config file.toml] [-v] [-frames n]
package main

import (
	"os"
	"runtime"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/samples/texcube"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(texcube.Desc(), texcube.New()))
}
