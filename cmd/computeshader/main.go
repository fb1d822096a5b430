package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/supermuesli/computeshader/internal/camera"
	"github.com/supermuesli/computeshader/internal/shaderutils"
	"github.com/supermuesli/computeshader/pkg/objparser"
	"github.com/supermuesli/computeshader/pkg/shaders"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

var (
	objPath     = flag.String("obj", "CornellBox-Original.obj", "triangulated OBJ file to render")
	maxVertices = flag.Int("max-vertices", 1<<20, "maximum number of v records")
	maxNormals  = flag.Int("max-normals", 1<<20, "maximum number of vn records")
	maxTexCoord = flag.Int("max-texcoords", 0, "maximum number of vt records (0: same as -max-indices)")
	maxIndices  = flag.Int("max-indices", 3<<20, "maximum number of face corners")
	showFPS     = flag.Bool("fps", false, "print frames per second")
)

func init() {
	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	loader := &objparser.Loader{
		Limits: objparser.Limits{
			MaxVertices:  *maxVertices,
			MaxNormals:   *maxNormals,
			MaxTexCoords: *maxTexCoord,
			MaxIndices:   *maxIndices,
		},
	}
	mesh, err := loader.Load(*objPath)
	if err != nil {
		log.Fatalln("failed to load model:", err)
	}
	log.Printf("loaded %s: %d triangles", *objPath, mesh.Triangles())

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(windowWidth, windowHeight, "computeshader: "+*objPath, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	// init glow
	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	computeShader, err := shaderutils.NewComputeShader(shaders.ComputeSrc)
	if err != nil {
		log.Fatal(err)
	}
	quadShader, err := shaderutils.NewQuadShader(shaders.VertexSrc, shaders.FragmentSrc)
	if err != nil {
		log.Fatal(err)
	}

	// texture the compute shader writes and the quad samples
	var quadTexture uint32
	gl.GenTextures(1, &quadTexture)
	gl.BindTexture(gl.TEXTURE_2D, quadTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, windowWidth, windowHeight, 0, gl.RGBA, gl.FLOAT, nil)

	// full screen quad
	var quadVao uint32
	gl.GenVertexArrays(1, &quadVao)
	gl.BindVertexArray(quadVao)
	var quadVbo uint32
	gl.GenBuffers(1, &quadVbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, quadVbo)
	quadVertices := [8]int8{-1, -1, -1, 1, 1, -1, 1, 1}
	gl.BufferData(gl.ARRAY_BUFFER, 8, unsafe.Pointer(&quadVertices[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.BYTE, false, 0, nil)

	// the flat buffers go to the GPU as they are
	shaderutils.NewStorageBuffer(shaders.PositionsBinding, mesh.Positions)
	shaderutils.NewStorageBuffer(shaders.NormalsBinding, mesh.Normals)

	lo, hi := mesh.Bounds()
	cam := camera.Fit(lo, hi, 45)
	step := cam.Distance() / 20
	light := mgl32.Vec3{-1, -2, -3}.Normalize()

	uniform := func(name string) int32 {
		return gl.GetUniformLocation(computeShader, gl.Str(name+"\x00"))
	}
	camOrigin := uniform("cam_origin")
	camForward := uniform("cam_forward")
	camRight := uniform("cam_right")
	camUp := uniform("cam_up")
	tanHalfFovy := uniform("tan_half_fovy")
	lightDir := uniform("light_dir")

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	previousTime := glfw.GetTime()

	for !window.ShouldClose() {
		glfw.PollEvents()

		if window.GetKey(glfw.KeyW) == glfw.Press {
			cam.Move(step, 0)
		}
		if window.GetKey(glfw.KeyS) == glfw.Press {
			cam.Move(-step, 0)
		}
		if window.GetKey(glfw.KeyA) == glfw.Press {
			cam.Move(0, -step)
		}
		if window.GetKey(glfw.KeyD) == glfw.Press {
			cam.Move(0, step)
		}

		gl.UseProgram(computeShader)
		f, r, u := cam.Basis()
		gl.Uniform3fv(camOrigin, 1, &cam.Eye[0])
		gl.Uniform3fv(camForward, 1, &f[0])
		gl.Uniform3fv(camRight, 1, &r[0])
		gl.Uniform3fv(camUp, 1, &u[0])
		gl.Uniform1f(tanHalfFovy, cam.TanHalfFovy())
		gl.Uniform3fv(lightDir, 1, &light[0])

		gl.BindImageTexture(shaders.ImageUnit, quadTexture, 0, false, 0, gl.WRITE_ONLY, gl.RGBA32F)
		gl.DispatchCompute((windowWidth+7)/8, (windowHeight+7)/8, 1)

		// make sure writing to image has finished before read
		gl.MemoryBarrier(gl.SHADER_IMAGE_ACCESS_BARRIER_BIT | gl.TEXTURE_FETCH_BARRIER_BIT)

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(quadShader)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, quadTexture)
		gl.BindVertexArray(quadVao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

		if *showFPS {
			now := glfw.GetTime()
			fmt.Println(int(1.0/(now-previousTime)), "FPS")
			previousTime = now
		}

		if glErr := gl.GetError(); glErr != gl.NO_ERROR {
			log.Println("gl error", glErr)
		}

		window.SwapBuffers()
	}
}
