package flappybird

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_changeState(t *testing.T) {
	app := &App{
		stateful:         true,
		initialState:     StateReady,
		state:            StateReady,
		finalState:       StateQuit,
		systems:          make(map[string]map[State]map[statePhase][]systemFn),
		systemsStateless: make(map[string][]systemFn),
	}

	app.changeState(StatePlaying)
	if app.nextState != StatePlaying {
		t.Errorf("The nextState should be set correctly.")
	}
	if !app.stateTransitioning {
		t.Errorf("The stateTransitioning flag should be true.")
	}

	app.executeChangeState(StatePlaying)
	if app.state != StatePlaying {
		t.Errorf("The app state should change correctly.")
	}
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// adding the same resource type twice must panic
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestApp_callSystemInjectsResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}
	app.addResources(NewMockResource1("injected"))

	called := false
	app.callSystem(func(r *MockResource1) {
		called = true
		assert.Equal(t, "injected", r.name)
	})
	assert.True(t, called)
}

func TestApp_callSystemInjectsCommands(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	var got *Commands
	app.callSystem(func(cmd *Commands) {
		got = cmd
	})
	require.NotNil(t, got)
	assert.Same(t, app, got.app)
}

func TestApp_callSystemUnresolvable(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	assert.Panics(t, func() {
		app.callSystem(func(r *MockResource2) {})
	})
}

func TestCommands_LoggerFallsBackToNop(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	// no logging module installed: systems still get a usable logger
	app.callSystem(func(cmd *Commands) {
		logger := cmd.Logger()
		require.NotNil(t, logger)
		assert.NotPanics(t, func() {
			logger.Warnf("ignored: %d", 1)
		})
		assert.IsType(t, &nopLogger{}, logger)
	})

	installed := NewDefaultLogger("test", false)
	app.addResources(installed)
	app.callSystem(func(cmd *Commands) {
		assert.Same(t, installed, cmd.Logger())
	})
}

func TestApp_systemMutationThroughResource(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}
	app.addResources(NewMockResource1("before"))

	app.callSystem(func(r *MockResource1) {
		r.name = "after"
	})
	app.callSystem(func(r *MockResource1) {
		assert.Equal(t, "after", r.name)
	})
}
