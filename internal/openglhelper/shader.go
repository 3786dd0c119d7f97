package openglhelper

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program with its uniform locations
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// BuildError reports a shader stage that failed to compile or a program
// that failed to link
type BuildError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *BuildError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s stage failed", e.Stage)
	}
	return fmt.Sprintf("%s stage failed: %s", e.Stage, e.Log)
}

// cleanInfoLog strips the NUL padding and trailing whitespace GL leaves in
// info logs
func cleanInfoLog(raw string) string {
	if i := strings.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

// infoLog reads an object's info log using the matching getter pair
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var length int32
	getiv(id, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}

	buf := make([]uint8, length+1)
	getLog(id, length, nil, &buf[0])
	return cleanInfoLog(string(buf))
}

// compileStage compiles one shader stage
func compileStage(stage string, kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.TRUE {
		return shader, nil
	}

	err := &BuildError{Stage: stage, Log: infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)}
	gl.DeleteShader(shader)
	return 0, err
}

// NewShader compiles and links a program from vertex and fragment sources
func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertex, err := compileStage("vertex", gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("failed to build shader: %w", err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileStage("fragment", gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to build shader: %w", err)
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok != gl.TRUE {
		err := &BuildError{Stage: "link", Log: infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)}
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to build shader: %w", err)
	}

	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
	s.uniforms = nil
}

// uniformLocation looks a uniform up once and caches it. Only the render
// thread touches the cache.
func (s *Shader) uniformLocation(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	if s.uniforms != nil {
		s.uniforms[name] = loc
	}
	return loc
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.uniformLocation(name), value)
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(name string, vec mgl32.Vec3) {
	gl.Uniform3f(s.uniformLocation(name), vec[0], vec[1], vec[2])
}

// SetVec4 sets a vec4 uniform
func (s *Shader) SetVec4(name string, vec mgl32.Vec4) {
	gl.Uniform4f(s.uniformLocation(name), vec[0], vec[1], vec[2], vec[3])
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(s.uniformLocation(name), 1, false, &mat[0])
}
