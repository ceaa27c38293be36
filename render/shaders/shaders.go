// Package shaders embeds the WGSL sources for the sprite and
// post-process pipelines.
package shaders

import _ "embed"

//go:embed sprite.wgsl
var Sprite string

//go:embed post.wgsl
var Post string
