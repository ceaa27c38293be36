package gpu

import (
	"encoding/binary"
	"math"
)

// Uniform blocks are hand-packed little-endian so the Go side states
// the exact byte layout the shaders declare. Both blocks are padded to
// 16 bytes.

const uniformSize = 16

func putFloat32(dst []byte, v float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
}

// packSceneUniform lays out { resolution: vec2<f32>, pad: vec2<f32> }.
func packSceneUniform(width, height float32) []byte {
	buf := make([]byte, uniformSize)
	putFloat32(buf[0:], width)
	putFloat32(buf[4:], height)
	return buf
}

// packPostUniform lays out { resolution: vec2<f32>, time: f32, pad: f32 }.
func packPostUniform(width, height, time float32) []byte {
	buf := make([]byte, uniformSize)
	putFloat32(buf[0:], width)
	putFloat32(buf[4:], height)
	putFloat32(buf[8:], time)
	return buf
}
