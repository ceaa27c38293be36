package flappybird

import (
	"errors"
	"reflect"
	"time"

	"github.com/wieslawsoltes/FlappyBird/render/core"
	"github.com/wieslawsoltes/FlappyBird/render/gpu"
)

// SceneRenderer draws one game snapshot per frame.
type SceneRenderer interface {
	Render(snap core.Snapshot) error
	SpawnParticles(x, y float32, n int)
	Dropped() int
	Release()
}

// RenderState holds the active renderer. Headless means no usable GPU
// was found; the game still runs, it just draws nothing.
type RenderState struct {
	Renderer SceneRenderer
	Headless bool
}

func (s *RenderState) SpawnParticles(x, y float32, n int) {
	if s.Renderer != nil {
		s.Renderer.SpawnParticles(x, y, n)
	}
}

// RenderModule brings up the GPU renderer for the shared window.
// WindowModule must be installed first.
type RenderModule struct {
	Seed int64
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	ws, ok := app.resources[t].(*WindowState)
	if !ok {
		panic("RenderModule requires WindowModule to be installed first")
	}

	seed := m.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state := &RenderState{}
	renderer, err := gpu.NewRenderer(ws.Window(), seed)
	switch {
	case errors.Is(err, gpu.ErrUnsupported):
		app.Logger().Warnf("running headless: %v", err)
		state.Headless = true
	case err != nil:
		panic(err)
	default:
		state.Renderer = renderer
	}

	cmd.AddResources(state)
	cmd.UseSystem(
		System(renderSystem).
			InStage(Render).
			RunAlways(),
	)
	// scheduled in the Render stage so the renderer is released before
	// the window module tears GLFW down in Finale
	cmd.UseSystem(
		System(renderShutdownSystem).
			InStage(Render).
			InState(OnExit(StateQuit)),
	)
}

func renderSystem(cmd *Commands, state *RenderState, game *GameState, store *ScoreStore) {
	if state.Renderer == nil {
		// keep the loop from spinning when there is nothing to vsync on
		time.Sleep(16 * time.Millisecond)
		return
	}

	if err := state.Renderer.Render(game.Snapshot(store.Best())); err != nil {
		cmd.Logger().Errorf("render: %v", err)
	}
	if dropped := state.Renderer.Dropped(); dropped > 0 {
		cmd.Logger().Debugf("sprite batch full, dropped %d", dropped)
	}
}

func renderShutdownSystem(state *RenderState) {
	if state.Renderer != nil {
		state.Renderer.Release()
		state.Renderer = nil
	}
}
