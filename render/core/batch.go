package core

// MaxInstances caps the number of sprites a single frame may submit.
const MaxInstances = 1000

// InstanceStride is the byte size of one SpriteInstance on the GPU.
const InstanceStride = 48

// SpriteInstance is one per-instance record in the sprite batch. The
// field order matches the vertex buffer layout consumed by the sprite
// shader, with explicit padding to a 48-byte stride.
type SpriteInstance struct {
	Pos      [2]float32 // center, in pixels, y-down
	Size     [2]float32 // width/height in pixels
	Rotation float32    // radians, clockwise
	Pad0     float32
	UVOffset [2]float32
	UVSize   [2]float32
	Reserved [2]float32
}

// Batch accumulates sprite instances for one frame.
type Batch struct {
	atlas     *Atlas
	instances []SpriteInstance
	dropped   int
}

func NewBatch(atlas *Atlas) *Batch {
	return &Batch{
		atlas:     atlas,
		instances: make([]SpriteInstance, 0, MaxInstances),
	}
}

// Draw appends one sprite. It reports false when the instance was not
// accepted, either because the region name is unknown or the frame is
// already at capacity.
func (b *Batch) Draw(name string, x, y, w, h, rotation float32) bool {
	region, ok := b.atlas.Region(name)
	if !ok {
		return false
	}
	if len(b.instances) >= MaxInstances {
		b.dropped++
		return false
	}
	b.instances = append(b.instances, SpriteInstance{
		Pos:      [2]float32{x, y},
		Size:     [2]float32{w, h},
		Rotation: rotation,
		UVOffset: region.UVOffset,
		UVSize:   region.UVSize,
	})
	return true
}

// Reset clears the batch for the next frame.
func (b *Batch) Reset() {
	b.instances = b.instances[:0]
	b.dropped = 0
}

func (b *Batch) Count() int { return len(b.instances) }

// Dropped reports how many Draw calls exceeded capacity since the last
// Reset.
func (b *Batch) Dropped() int { return b.dropped }

// Instances exposes the accumulated records for upload. The slice is
// only valid until the next Reset.
func (b *Batch) Instances() []SpriteInstance { return b.instances }
