package core

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// AtlasSize is the edge length in pixels of the shared sprite atlas.
const AtlasSize = 512

// Region is one named sub-image of the atlas, addressed by normalized
// UV coordinates. Regions are immutable once the atlas is built.
type Region struct {
	Name     string
	UVOffset [2]float32
	UVSize   [2]float32
}

// Atlas holds the rasterized sprite sheet and the name -> region lookup.
// Pixels are premultiplied RGBA, matching image/draw compositing; the GPU
// blend state must use premultiplied source-over.
type Atlas struct {
	ID    string
	Image *image.RGBA

	regions map[string]Region
}

type atlasEntry struct {
	name       string
	x, y, w, h int
	oversample int // rasterize at n x native size, downscale into place
	draw       shapeFunc
}

// shapeFunc rasterizes a sprite shape at the requested pixel size.
type shapeFunc func(w, h int) *image.RGBA

func atlasEntries() []atlasEntry {
	entries := []atlasEntry{
		{name: "bird", x: 0, y: 0, w: 64, h: 48, oversample: 4, draw: drawBird},
		{name: "pipe-body", x: 64, y: 0, w: 64, h: 64, oversample: 1, draw: drawPipeBody},
		{name: "pipe-cap", x: 128, y: 0, w: 64, h: 32, oversample: 1, draw: drawPipeCap},
		{name: "cloud", x: 192, y: 0, w: 128, h: 64, oversample: 2, draw: drawCloud},
		{name: "ground", x: 320, y: 0, w: 64, h: 64, oversample: 1, draw: drawGround},
		{name: "particle", x: 384, y: 0, w: 32, h: 32, oversample: 4, draw: drawParticle},
	}
	for d := 0; d < 10; d++ {
		entries = append(entries, atlasEntry{
			name:       fmt.Sprintf("digit-%d", d),
			x:          d * 32,
			y:          96,
			w:          24,
			h:          32,
			oversample: 1,
			draw:       drawDigit(d),
		})
	}
	return entries
}

// BuildAtlas rasterizes the fixed sprite set into one shared pixel buffer
// and records a normalized UV region per name. Rectangle assignments are
// non-overlapping by construction.
func BuildAtlas() *Atlas {
	img := image.NewRGBA(image.Rect(0, 0, AtlasSize, AtlasSize))
	regions := make(map[string]Region)

	for _, e := range atlasEntries() {
		dst := image.Rect(e.x, e.y, e.x+e.w, e.y+e.h)
		src := e.draw(e.w*e.oversample, e.h*e.oversample)
		if e.oversample > 1 {
			xdraw.CatmullRom.Scale(img, dst, src, src.Bounds(), xdraw.Src, nil)
		} else {
			draw.Draw(img, dst, src, image.Point{}, draw.Src)
		}

		regions[e.name] = Region{
			Name:     e.name,
			UVOffset: [2]float32{float32(e.x) / AtlasSize, float32(e.y) / AtlasSize},
			UVSize:   [2]float32{float32(e.w) / AtlasSize, float32(e.h) / AtlasSize},
		}
	}

	return &Atlas{
		ID:      uuid.NewString(),
		Image:   img,
		regions: regions,
	}
}

// Region looks up a named atlas region.
func (a *Atlas) Region(name string) (Region, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Names returns every registered region name.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	return names
}
