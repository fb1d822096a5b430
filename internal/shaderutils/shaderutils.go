// Package shaderutils compiles and links GL programs. A current GL 4.5
// context is required for every call.
package shaderutils

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
)

func NewComputeShader(computeSrc string) (uint32, error) {
	cs, err := compileShader(computeSrc, gl.COMPUTE_SHADER)
	if err != nil {
		return 0, err
	}
	return link(cs)
}

func NewQuadShader(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	return link(vs, fs)
}

// NewStorageBuffer uploads data into a shader storage buffer bound to the
// given binding point.
func NewStorageBuffer(binding uint32, data []float32) uint32 {
	var ssbo uint32
	gl.GenBuffers(1, &ssbo)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, ssbo)
	if len(data) > 0 {
		gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_COPY)
	} else {
		gl.BufferData(gl.SHADER_STORAGE_BUFFER, 4, nil, gl.STATIC_COPY)
	}
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, ssbo)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)
	return ssbo
}

func link(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range shaders {
		gl.DeleteShader(s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}
