package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

func TestPackSceneUniform(t *testing.T) {
	buf := packSceneUniform(480, 640)
	require.Len(t, buf, uniformSize)

	assert.Equal(t, float32(480), readFloat32(buf[0:]))
	assert.Equal(t, float32(640), readFloat32(buf[4:]))
	assert.Equal(t, float32(0), readFloat32(buf[8:]))
	assert.Equal(t, float32(0), readFloat32(buf[12:]))
}

func TestPackPostUniform(t *testing.T) {
	buf := packPostUniform(800, 600, 12.5)
	require.Len(t, buf, uniformSize)

	assert.Equal(t, float32(800), readFloat32(buf[0:]))
	assert.Equal(t, float32(600), readFloat32(buf[4:]))
	assert.Equal(t, float32(12.5), readFloat32(buf[8:]))
}
