package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/samples/app"
)

// capture wraps a program and reads back the framebuffer after its last
// frame, before the buffers are swapped.
type capture struct {
	app.Callbacks
	frames int
	path   string

	saved         bool
	width, height int
	err           error
}

func newCapture(cb app.Callbacks, frames int, path string) *capture {
	return &capture{Callbacks: cb, frames: frames, path: path}
}

func outputPath(dir, name string) string {
	return filepath.Join(dir, name+".jpg")
}

func (c *capture) Frame(a *app.App) error {
	if err := c.Callbacks.Frame(a); err != nil {
		return err
	}
	if a.FrameCount()+1 < uint64(c.frames) {
		return nil
	}
	c.width, c.height = a.Width(), a.Height()
	pixels := make([]byte, c.width*c.height*4)
	gl.ReadPixels(0, 0, int32(c.width), int32(c.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	c.err = c.save(pixels)
	c.saved = c.err == nil
	a.Quit()
	return nil
}

func (c *capture) save(pixels []byte) error {
	f, err := os.Create(c.path)
	if err != nil {
		return err
	}
	if err := encode(f, pixels, c.width, c.height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encode writes bottom-up RGBA rows as a top-down JPEG.
func encode(w io.Writer, pixels []byte, width, height int) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("%d bytes for %dx%d pixels", len(pixels), width, height)
	}
	flipRows(pixels, width*4)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}

// flipRows reverses the row order in place. OpenGL's origin is bottom-left.
func flipRows(pixels []byte, rowLen int) {
	rows := len(pixels) / rowLen
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}
