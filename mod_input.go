package flappybird

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// The game only cares about a handful of inputs.
const (
	KeySpace int = iota
	KeyEnter
	KeyEscape
	MouseButtonLeft

	inputCount
)

var keyToGlfw = map[int]glfw.Key{
	KeySpace:  glfw.KeySpace,
	KeyEnter:  glfw.KeyEnter,
	KeyEscape: glfw.KeyEscape,
}

type Input struct {
	Pressed      [inputCount]bool
	JustPressed  [inputCount]bool
	JustReleased [inputCount]bool

	MouseX, MouseY float64
}

// Flap reports the universal "do the thing" input: space, enter or a
// left click, on the edge.
func (in *Input) Flap() bool {
	return in.JustPressed[KeySpace] || in.JustPressed[KeyEnter] || in.JustPressed[MouseButtonLeft]
}

type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	cmd.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

// inputSystem runs after the window system has polled events, so key
// state reads observe this frame's events.
func inputSystem(s *WindowState, input *Input) {
	for key, glfwKey := range keyToGlfw {
		input.update(key, s.windowGlfw.GetKey(glfwKey))
	}
	input.update(MouseButtonLeft, s.windowGlfw.GetMouseButton(glfw.MouseButtonLeft))

	input.MouseX, input.MouseY = s.windowGlfw.GetCursorPos()
}

func (in *Input) update(key int, action glfw.Action) {
	in.JustPressed[key] = false
	in.JustReleased[key] = false

	if action == glfw.Press {
		if !in.Pressed[key] {
			in.JustPressed[key] = true
		}
		in.Pressed[key] = true
	} else if action == glfw.Release {
		if in.Pressed[key] {
			in.JustReleased[key] = true
		}
		in.Pressed[key] = false
	}
}
