package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSceneTargetStale(t *testing.T) {
	// first use always creates
	assert.True(t, sceneTargetStale(false, 0, 0, 480, 640))

	// same size is stable, so one resize means one recreation
	assert.False(t, sceneTargetStale(true, 480, 640, 480, 640))
	assert.True(t, sceneTargetStale(true, 480, 640, 800, 600))
	assert.False(t, sceneTargetStale(true, 800, 600, 800, 600))

	// a minimized window keeps the old target
	assert.False(t, sceneTargetStale(true, 480, 640, 0, 0))
	assert.False(t, sceneTargetStale(false, 0, 0, 0, 480))
}
