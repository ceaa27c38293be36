package core

import (
	"image"
	"image/color"
)

// Sprite shapes are drawn procedurally; there are no image assets on disk.
// All colors are written premultiplied.

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1.0 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func premul(r, g, b, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(r) * uint16(a) / 255),
		G: uint8(uint16(g) * uint16(a) / 255),
		B: uint8(uint16(b) * uint16(a) / 255),
		A: a,
	}
}

func drawBird(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)

	// body
	fillEllipse(img, fw*0.45, fh*0.5, fw*0.42, fh*0.46, color.RGBA{248, 208, 56, 255})
	// belly
	fillEllipse(img, fw*0.40, fh*0.68, fw*0.30, fh*0.24, color.RGBA{250, 234, 178, 255})
	// wing
	fillEllipse(img, fw*0.30, fh*0.52, fw*0.18, fh*0.14, color.RGBA{222, 168, 32, 255})
	// eye
	fillEllipse(img, fw*0.62, fh*0.34, fw*0.13, fh*0.17, color.RGBA{255, 255, 255, 255})
	fillEllipse(img, fw*0.67, fh*0.34, fw*0.05, fh*0.08, color.RGBA{20, 20, 20, 255})
	// beak
	fillEllipse(img, fw*0.82, fh*0.58, fw*0.14, fh*0.11, color.RGBA{236, 112, 32, 255})

	return img
}

func drawPipeBody(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	border := color.RGBA{32, 80, 24, 255}
	fillRect(img, 0, 0, w, h, color.RGBA{92, 186, 50, 255})
	// left highlight and right shadow strips
	fillRect(img, w/8, 0, w/3, h, color.RGBA{150, 218, 100, 255})
	fillRect(img, w-w/4, 0, w-w/16, h, color.RGBA{64, 140, 38, 255})
	fillRect(img, 0, 0, w/16, h, border)
	fillRect(img, w-w/16, 0, w, h, border)

	return img
}

func drawPipeCap(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	border := color.RGBA{32, 80, 24, 255}
	fillRect(img, 0, 0, w, h, color.RGBA{104, 198, 58, 255})
	fillRect(img, w/10, h/6, w/3, h-h/6, color.RGBA{160, 226, 110, 255})
	fillRect(img, w-w/4, h/6, w-w/10, h-h/6, color.RGBA{70, 148, 42, 255})
	// border on all four edges
	fillRect(img, 0, 0, w, h/8, border)
	fillRect(img, 0, h-h/8, w, h, border)
	fillRect(img, 0, 0, w/20+1, h, border)
	fillRect(img, w-w/20-1, 0, w, h, border)

	return img
}

func drawCloud(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)

	puff := premul(255, 255, 255, 235)
	fillEllipse(img, fw*0.30, fh*0.62, fw*0.22, fh*0.30, puff)
	fillEllipse(img, fw*0.52, fh*0.45, fw*0.24, fh*0.38, puff)
	fillEllipse(img, fw*0.72, fh*0.62, fw*0.20, fh*0.28, puff)

	return img
}

func drawGround(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	grassH := h / 5
	fillRect(img, 0, 0, w, grassH, color.RGBA{112, 218, 92, 255})
	fillRect(img, 0, grassH, w, grassH+h/16+1, color.RGBA{78, 166, 62, 255})
	fillRect(img, 0, grassH+h/16+1, w, h, color.RGBA{222, 216, 149, 255})

	// deterministic dirt speckles
	for y := grassH + h/8; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x*7+y*13)%29 == 0 {
				img.SetRGBA(x, y, color.RGBA{196, 186, 115, 255})
			}
		}
	}

	return img
}

func drawParticle(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	r := float64(w) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := (dx*dx + dy*dy) / (r * r)
			if d >= 1.0 {
				continue
			}
			fade := (1.0 - d) * (1.0 - d)
			v := uint8(fade * 255)
			// premultiplied warm white
			img.SetRGBA(x, y, color.RGBA{v, v, uint8(fade * 215), v})
		}
	}

	return img
}

// Seven-segment layout, segments indexed a..g.
var digitSegments = [10][7]bool{
	{true, true, true, true, true, true, false},     // 0
	{false, true, true, false, false, false, false}, // 1
	{true, true, false, true, true, false, true},    // 2
	{true, true, true, true, false, false, true},    // 3
	{false, true, true, false, false, true, true},   // 4
	{true, false, true, true, false, true, true},    // 5
	{true, false, true, true, true, true, true},     // 6
	{true, true, true, false, false, false, false},  // 7
	{true, true, true, true, true, true, true},      // 8
	{true, true, true, true, false, true, true},     // 9
}

func drawDigit(d int) shapeFunc {
	return func(w, h int) *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		white := color.RGBA{255, 255, 255, 255}
		t := w / 5
		seg := digitSegments[d]

		if seg[0] { // a: top
			fillRect(img, t/2, 0, w-t/2, t, white)
		}
		if seg[1] { // b: top right
			fillRect(img, w-t, t/2, w, h/2, white)
		}
		if seg[2] { // c: bottom right
			fillRect(img, w-t, h/2, w, h-t/2, white)
		}
		if seg[3] { // d: bottom
			fillRect(img, t/2, h-t, w-t/2, h, white)
		}
		if seg[4] { // e: bottom left
			fillRect(img, 0, h/2, t, h-t/2, white)
		}
		if seg[5] { // f: top left
			fillRect(img, 0, t/2, t, h/2, white)
		}
		if seg[6] { // g: middle
			fillRect(img, t/2, (h-t)/2, w-t/2, (h+t)/2, white)
		}

		return img
	}
}
