// Command clear animates the window's clear color.
//
//	go run ./cmd/clear/ [-config file.toml] [-v] [-frames n]
package main

import (
	"os"
	"runtime"

	"github.com/go-theft-auto/samples/app"
	"github.com/go-theft-auto/samples/samples/clear"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(clear.Desc(), clear.New()))
}
