package scene

// ColoredVertex is a position plus an RGBA float color (28 bytes).
type ColoredVertex struct {
	X, Y, Z    float32
	R, G, B, A float32
}

// TexturedVertex is a position, a packed ABGR color and normalized
// 16-bit texture coordinates (20 bytes).
type TexturedVertex struct {
	X, Y, Z float32
	Color   uint32
	U, V    int16
}

// QuadVertex is a 2D position plus a texture coordinate.
type QuadVertex struct {
	X, Y float32
	U, V float32
}

// Face colors of the colored cube.
var (
	faceRed    = [4]float32{1, 0, 0, 1}
	faceGreen  = [4]float32{0, 1, 0, 1}
	faceBlue   = [4]float32{0, 0, 1, 1}
	faceOrange = [4]float32{1, 0.5, 0, 1}
	faceSky    = [4]float32{0, 0.5, 1, 1}
	facePink   = [4]float32{1, 0, 0.5, 1}
)

// cubeCorners lists the four corners of each cube face, in face order
// back, front, left, right, bottom, top.
var cubeCorners = [24][3]float32{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	{-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1},
	{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1},
	{-1, -1, -1}, {-1, -1, 1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1},
}

// ColoredCubeVertices returns the 24 vertices of a cube with one solid color per face.
func ColoredCubeVertices() []ColoredVertex {
	colors := [6][4]float32{faceRed, faceGreen, faceBlue, faceOrange, faceSky, facePink}
	out := make([]ColoredVertex, len(cubeCorners))
	for i, p := range cubeCorners {
		c := colors[i/4]
		out[i] = ColoredVertex{X: p[0], Y: p[1], Z: p[2], R: c[0], G: c[1], B: c[2], A: c[3]}
	}
	return out
}

// TexturedCubeVertices returns the 24 vertices of a cube with packed
// per-face colors and a full [0, 1] texture square on every face.
func TexturedCubeVertices() []TexturedVertex {
	colors := [6]uint32{0xFF0000FF, 0xFF00FF00, 0xFFFF0000, 0xFFFF007F, 0xFFFF7F00, 0xFF007FFF}
	uvs := [4][2]int16{{0, 0}, {32767, 0}, {32767, 32767}, {0, 32767}}
	out := make([]TexturedVertex, len(cubeCorners))
	for i, p := range cubeCorners {
		uv := uvs[i%4]
		out[i] = TexturedVertex{X: p[0], Y: p[1], Z: p[2], Color: colors[i/4], U: uv[0], V: uv[1]}
	}
	return out
}

// CubeIndexCount is the number of indices drawn per cube.
const CubeIndexCount = 36

// CubeIndices returns two triangles per face for both cube vertex sets.
func CubeIndices() []uint16 {
	return []uint16{
		0, 1, 2, 0, 2, 3,
		6, 5, 4, 7, 6, 4,
		8, 9, 10, 8, 10, 11,
		14, 13, 12, 15, 14, 12,
		16, 17, 18, 16, 18, 19,
		22, 21, 20, 23, 22, 20,
	}
}

// Checkerboard returns w*h RGBA8 pixels alternating opaque white and
// opaque black, starting with white at the top-left texel.
func Checkerboard(w, h int) []uint32 {
	px := make([]uint32, w*h)
	for y := range h {
		for x := range w {
			if (x+y)%2 == 0 {
				px[y*w+x] = 0xFFFFFFFF
			} else {
				px[y*w+x] = 0xFF000000
			}
		}
	}
	return px
}

// QuadVertices returns a unit quad centered at the origin whose texture
// coordinates span [uvMin, uvMax] in both directions.
func QuadVertices(uvMin, uvMax float32) []QuadVertex {
	return []QuadVertex{
		{X: -0.5, Y: 0.5, U: uvMin, V: uvMin},
		{X: 0.5, Y: 0.5, U: uvMax, V: uvMin},
		{X: 0.5, Y: -0.5, U: uvMax, V: uvMax},
		{X: -0.5, Y: -0.5, U: uvMin, V: uvMax},
	}
}

// QuadIndices returns the two triangles of a quad from QuadVertices.
func QuadIndices() []uint16 {
	return []uint16{0, 1, 2, 0, 2, 3}
}
