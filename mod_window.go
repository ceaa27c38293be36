package flappybird

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState is the single shared GLFW window resource.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

func (s *WindowState) Window() *glfw.Window { return s.windowGlfw }

// WindowModule creates the game window. It must be installed before
// any module that needs the window (input, rendering).
type WindowModule struct {
	Width  int
	Height int
	Title  string
}

func (m WindowModule) Install(app *App, cmd *Commands) {
	width, height, title := m.Width, m.Height, m.Title
	if width <= 0 {
		width = 480
	}
	if height <= 0 {
		height = 640
	}
	if title == "" {
		title = "Flappy Bird"
	}

	cmd.AddResources(createWindowState(width, height, title))
	cmd.UseSystem(
		System(windowSystem).
			InStage(Prelude).
			RunAlways(),
	)
	cmd.UseSystem(
		System(windowShutdownSystem).
			InStage(Finale).
			InState(OnExit(StateQuit)),
	)
}

func createWindowState(windowWidth, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	// no GL context; the surface comes from wgpu
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func windowSystem(cmd *Commands, s *WindowState) {
	glfw.PollEvents()
	s.WindowWidth, s.WindowHeight = s.windowGlfw.GetSize()

	if s.windowGlfw.ShouldClose() {
		cmd.ChangeState(StateQuit)
	}
}

func windowShutdownSystem(s *WindowState) {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}
