package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/samples/gfx"
)

type glUniform struct {
	loc   int32
	typ   gfx.UniformType
	count int32
}

type glShader struct {
	program uint32
	// uniforms[stage][block] lists uniform locations in block order.
	uniforms [2][][]glUniform
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(string(log), "\x00"))
	}
	return shader, nil
}

// linkProgram compiles both stages and links them with attribute
// locations bound to the attribute slice index.
func linkProgram(desc *gfx.ShaderDesc) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, desc.VS.Source)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, desc.FS.Source)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	for i, a := range desc.Attrs {
		gl.BindAttribLocation(program, uint32(i), gl.Str(a.Name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(string(log), "\x00"))
	}
	return program, nil
}

func (b *Backend) CreateShader(h gfx.Shader, desc *gfx.ShaderDesc) error {
	program, err := linkProgram(desc)
	if err != nil {
		return fmt.Errorf("shader %q: %w", desc.Label, err)
	}
	s := &glShader{program: program}
	gl.UseProgram(program)
	for stage, sd := range []*gfx.ShaderStageDesc{&desc.VS, &desc.FS} {
		for _, ub := range sd.UniformBlocks {
			var block []glUniform
			for _, u := range ub.Uniforms {
				loc := gl.GetUniformLocation(program, gl.Str(u.Name+"\x00"))
				if loc < 0 {
					glLogger.Debug("uniform not active", "shader", desc.Label, "name", u.Name)
				}
				block = append(block, glUniform{loc: loc, typ: u.Type, count: int32(max(u.ArrayCount, 1))})
			}
			s.uniforms[stage] = append(s.uniforms[stage], block)
		}
	}
	// Fragment stage images take the first texture units, vertex stage images follow.
	unit := int32(0)
	for _, sd := range []*gfx.ShaderStageDesc{&desc.FS, &desc.VS} {
		for _, img := range sd.Images {
			if loc := gl.GetUniformLocation(program, gl.Str(img.Name+"\x00")); loc >= 0 {
				gl.Uniform1i(loc, unit)
			}
			unit++
		}
	}
	gl.UseProgram(0)
	b.shaders[h.ID] = s
	return nil
}

func (b *Backend) DestroyShader(h gfx.Shader) {
	if s, ok := b.shaders[h.ID]; ok {
		gl.DeleteProgram(s.program)
		delete(b.shaders, h.ID)
	}
}
