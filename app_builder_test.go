package flappybird

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

func TestAppBuilder_Stateless(t *testing.T) {
	builder := NewAppBuilder()
	app := builder.Build()

	if app.stateful != false {
		t.Errorf("Expected stateful to be false, got %v", app.stateful)
	}
	if app.initialState != 0 {
		t.Errorf("Expected initialState to be 0, got %v", app.initialState)
	}
	if app.finalState != 0 {
		t.Errorf("Expected finalState to be 0, got %v", app.finalState)
	}
}

func TestAppBuilder_UseStates(t *testing.T) {
	builder := NewAppBuilder()
	builder.UseStates(StateReady, StateQuit)

	app := builder.Build()

	if app.stateful != true {
		t.Errorf("Expected stateful to be true, got %v", app.stateful)
	}
	if app.initialState != StateReady {
		t.Errorf("Expected initialState to be StateReady, got %v", app.initialState)
	}
	if app.finalState != StateQuit {
		t.Errorf("Expected finalState to be StateQuit, got %v", app.finalState)
	}
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	builder := NewAppBuilder()
	module := &MockModule{}
	builder.UseModule(module)

	builder.Build()

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if !module.installed {
		t.Errorf("Expected Install to be called on the module, but it was not")
	}
}

func TestAppBuilder_Build_WithMultipleModules(t *testing.T) {
	module1 := &MockModule{}
	module2 := &MockModule{}

	builder := NewAppBuilder()
	builder.UseModule(module1)
	builder.UseModule(module2)

	builder.Build()

	if !module1.installed {
		t.Errorf("Expected Install to be called on the module 1, but it was not")
	}
	if !module2.installed {
		t.Errorf("Expected Install to be called on the module 2, but it was not")
	}
}

func TestAppBuilder_Build_InitializesStages(t *testing.T) {
	app := NewAppBuilder().
		UseStates(StateReady, StateQuit).
		Build()

	for _, stage := range app.stages {
		if _, ok := app.systems[stage.Name]; !ok {
			t.Errorf("Expected stage %q to have a state table", stage.Name)
		}
		if _, ok := app.systemsStateless[stage.Name]; !ok {
			t.Errorf("Expected stage %q to have a stateless slot", stage.Name)
		}
	}

	// scheduling into a known stage/state must not panic
	app.UseSystem(System(func(cmd *Commands) {}).InStage(Update).InState(OnEnter(StatePlaying)))
	app.UseSystem(System(func(cmd *Commands) {}).InStage(Render).RunAlways())
}
