package flappybird

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/wieslawsoltes/FlappyBird/render/core"
)

const (
	worldGravity = 1500 // px/s^2
	flapImpulse  = -420 // px/s
	scrollSpeed  = 150  // px/s

	pipeSpacing   = 260
	pipeGapHeight = 180
	pipeGapMargin = 70 // min distance from gap center to screen edges

	birdX         = 120
	flapParticles = 6
)

type Pipe struct {
	X      float32
	GapY   float32
	Scored bool
}

// GameState is the whole simulation. Width and Height track the
// window; the world is sized in window coordinates.
type GameState struct {
	Width  float32
	Height float32

	BirdY   float32
	BirdVel float32
	BirdRot float32

	Pipes   []Pipe
	GroundX float32
	Score   int

	idleTime float32
	rng      *rand.Rand
}

type GameModule struct {
	// Seed fixes pipe gap placement, for tests. Zero means random.
	Seed int64
}

func (m GameModule) Install(app *App, cmd *Commands) {
	seed := m.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cmd.AddResources(newGameState(seed))

	cmd.UseSystem(System(quitSystem).InStage(Update).RunAlways())
	cmd.UseSystem(System(readyEnterSystem).InStage(Update).InState(OnEnter(StateReady)))
	cmd.UseSystem(System(readySystem).InStage(Update).InState(OnExecute(StateReady)))
	cmd.UseSystem(System(playingSystem).InStage(Update).InState(OnExecute(StatePlaying)))
	cmd.UseSystem(System(gameOverSystem).InStage(Update).InState(OnExecute(StateGameOver)))
}

func newGameState(seed int64) *GameState {
	return &GameState{rng: rand.New(rand.NewSource(seed))}
}

func quitSystem(cmd *Commands, input *Input) {
	if input.JustPressed[KeyEscape] {
		cmd.ChangeState(StateQuit)
	}
}

func readyEnterSystem(game *GameState, window *WindowState) {
	game.Reset(float32(window.WindowWidth), float32(window.WindowHeight))
}

func readySystem(cmd *Commands, game *GameState, input *Input, t *Time, audio *Audio, render *RenderState) {
	dt := t.DeltaSeconds()
	game.GroundX += scrollSpeed * dt

	// idle bob while waiting for the first flap
	game.idleTime += dt
	game.BirdY = game.Height*0.45 + 12*float32(math.Sin(float64(game.idleTime)*3))
	game.BirdRot = 0

	if input.Flap() {
		game.Flap()
		audio.PlayFlap()
		render.SpawnParticles(birdX-core.BirdWidth/2, game.BirdY, flapParticles)
		cmd.ChangeState(StatePlaying)
	}
}

func playingSystem(cmd *Commands, game *GameState, input *Input, t *Time, audio *Audio, store *ScoreStore, render *RenderState) {
	if input.Flap() {
		game.Flap()
		audio.PlayFlap()
		render.SpawnParticles(birdX-core.BirdWidth/2, game.BirdY, flapParticles)
	}

	scored, collided := game.Step(t.DeltaSeconds())
	if scored {
		audio.PlayScore()
	}
	if collided {
		audio.PlayHit()
		if isBest, err := store.Update(game.Score); err != nil {
			cmd.Logger().Warnf("could not persist best score: %v", err)
		} else if isBest {
			cmd.Logger().Infof("new best score: %d", game.Score)
		}
		cmd.ChangeState(StateGameOver)
	}
}

func gameOverSystem(cmd *Commands, game *GameState, input *Input, t *Time) {
	// the bird keeps falling until it hits the ground
	dt := t.DeltaSeconds()
	groundY := game.Height - core.GroundHeight - core.BirdHeight/2
	if game.BirdY < groundY {
		game.BirdVel += worldGravity * dt
		game.BirdY += game.BirdVel * dt
		if game.BirdY > groundY {
			game.BirdY = groundY
		}
		game.BirdRot = birdTilt(game.BirdVel)
	}

	if input.Flap() {
		cmd.ChangeState(StateReady)
	}
}

// Reset puts the world back to its pre-game state.
func (g *GameState) Reset(width, height float32) {
	g.Width = width
	g.Height = height
	g.BirdY = height * 0.45
	g.BirdVel = 0
	g.BirdRot = 0
	g.Pipes = g.Pipes[:0]
	g.GroundX = 0
	g.Score = 0
	g.idleTime = 0
}

func (g *GameState) Flap() {
	g.BirdVel = flapImpulse
}

// Step advances the simulation one frame. It reports whether the bird
// passed a pipe and whether it collided this frame.
func (g *GameState) Step(dt float32) (scored, collided bool) {
	g.BirdVel += worldGravity * dt
	g.BirdY += g.BirdVel * dt
	g.BirdRot = birdTilt(g.BirdVel)

	g.GroundX += scrollSpeed * dt
	for i := range g.Pipes {
		g.Pipes[i].X -= scrollSpeed * dt
	}

	// drop pipes that left the screen, spawn ahead of the right edge
	for len(g.Pipes) > 0 && g.Pipes[0].X < -core.PipeWidth {
		g.Pipes = g.Pipes[1:]
	}
	if len(g.Pipes) == 0 || g.Pipes[len(g.Pipes)-1].X < g.Width+core.PipeWidth-pipeSpacing {
		g.Pipes = append(g.Pipes, Pipe{
			X:    g.Width + core.PipeWidth,
			GapY: g.randomGapY(),
		})
	}

	for i := range g.Pipes {
		pipe := &g.Pipes[i]
		if !pipe.Scored && pipe.X+core.PipeWidth/2 < birdX {
			pipe.Scored = true
			g.Score++
			scored = true
		}
	}

	return scored, g.collides()
}

func (g *GameState) randomGapY() float32 {
	low := float32(pipeGapMargin + pipeGapHeight/2)
	high := g.Height - core.GroundHeight - pipeGapHeight/2 - pipeGapMargin
	if high <= low {
		return g.Height / 2
	}
	return low + g.rng.Float32()*(high-low)
}

func (g *GameState) collides() bool {
	groundY := g.Height - core.GroundHeight

	// ceiling is forgiving, the ground is not
	if g.BirdY+core.BirdHeight/2 >= groundY {
		return true
	}
	if g.BirdY < -core.BirdHeight {
		return false
	}

	for _, pipe := range g.Pipes {
		if birdHitsPipe(birdX, g.BirdY, pipe) {
			return true
		}
	}
	return false
}

// birdHitsPipe is an AABB test against the pipe pair, with the bird's
// box shrunk a little so grazes feel fair.
func birdHitsPipe(bx, by float32, pipe Pipe) bool {
	halfW := float32(core.BirdWidth)/2 - 4
	halfH := float32(core.BirdHeight)/2 - 4

	if bx+halfW < pipe.X-core.PipeWidth/2 || bx-halfW > pipe.X+core.PipeWidth/2 {
		return false
	}
	gapTop := pipe.GapY - pipeGapHeight/2
	gapBottom := pipe.GapY + pipeGapHeight/2
	return by-halfH < gapTop || by+halfH > gapBottom
}

func birdTilt(vel float32) float32 {
	return mgl32.Clamp(vel/600, -0.5, 1.2)
}

// Snapshot captures the state the renderer needs for this frame.
func (g *GameState) Snapshot(best int) core.Snapshot {
	snap := core.Snapshot{
		Bird: core.BirdSnapshot{
			X:        birdX,
			Y:        g.BirdY,
			Rotation: g.BirdRot,
			Visible:  true,
		},
		GroundX: g.GroundX,
		Score:   g.Score,
		Best:    best,
	}
	for _, pipe := range g.Pipes {
		snap.Pipes = append(snap.Pipes, core.PipeSnapshot{
			X:         pipe.X,
			GapY:      pipe.GapY,
			GapHeight: pipeGapHeight,
		})
	}
	return snap
}
