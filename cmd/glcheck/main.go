// glcheck opens a bare GLFW window with a 3.3 core-profile context and
// draws the sun disk through the same letterbox projection the
// simulator uses. It verifies that window creation and GL function
// loading work on the host before running the full demo; both failure
// modes exit -1 with a diagnostic, nothing is recoverable.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/anirudh242/c-solar-system/pkg/render"
)

const (
	winWidth  = 800
	winHeight = 600

	diskRadius   = 40
	diskSegments = 50
	halfExtent   = 100
)

const vertexShader = `#version 330 core
layout (location = 0) in vec2 pos;
uniform mat4 projection;
void main() {
	gl_Position = projection * vec4(pos, 0.0, 1.0);
}
` + "\x00"

const fragmentShader = `#version 330 core
out vec4 fragColor;
void main() {
	fragColor = vec4(1.0, 0.84, 0.36, 1.0);
}
` + "\x00"

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize GLFW: %v\n", err)
		os.Exit(-1)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(winWidth, winHeight, "GL context check", nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create GLFW window: %v\n", err)
		os.Exit(-1)
	}

	// context must be current before loading GL function pointers
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize OpenGL: %v\n", err)
		os.Exit(-1)
	}
	fmt.Println("OpenGL", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertexShader, fragmentShader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build shader program: %v\n", err)
		os.Exit(-1)
	}
	vao, count := sunDisk()

	proj := render.NewProjection(halfExtent, winWidth, winHeight)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		proj.Resize(w, h)
	})
	projLoc := gl.GetUniformLocation(prog, gl.Str("projection\x00"))

	for !window.ShouldClose() {
		gl.ClearColor(0, 0, 0, 0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(prog)
		m := proj.Matrix()
		gl.UniformMatrix4fv(projLoc, 1, false, &m[0])
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, count)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// sunDisk uploads a triangle fan for a disk at the world origin and
// returns its VAO and vertex count.
func sunDisk() (uint32, int32) {
	verts := make([]float32, 0, 2*(diskSegments+2))
	verts = append(verts, 0, 0)
	for i := 0; i <= diskSegments; i++ {
		th := 2 * math.Pi * float64(i) / float64(diskSegments)
		verts = append(verts, float32(diskRadius*math.Cos(th)), float32(diskRadius*math.Sin(th)))
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.BindVertexArray(0)

	return vao, int32(len(verts) / 2)
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &logBuf[0])
		return 0, fmt.Errorf("compile shader: %s", string(logBuf))
	}
	return shader, nil
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := make([]byte, logLength+1)
		gl.GetProgramInfoLog(prog, logLength, nil, &logBuf[0])
		return 0, fmt.Errorf("link program: %s", string(logBuf))
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}
