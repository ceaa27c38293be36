package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/wieslawsoltes/FlappyBird/render/core"
	"github.com/wieslawsoltes/FlappyBird/render/shaders"
)

// skyBlue is the scene clear color.
var skyBlue = wgpu.Color{R: 0.47, G: 0.74, B: 0.89, A: 1}

// Renderer draws one frame in two passes: all sprites instanced into
// an offscreen target, then a fullscreen post pass onto the swapchain.
type Renderer struct {
	window *glfw.Window
	ctx    *Context

	atlas     *core.Atlas
	batch     *core.Batch
	particles *core.Particles

	spritePipeline *wgpu.RenderPipeline
	postPipeline   *wgpu.RenderPipeline

	quadBuffer     *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	sceneUniform   *wgpu.Buffer
	postUniform    *wgpu.Buffer

	atlasView *wgpu.TextureView
	sampler   *wgpu.Sampler

	sceneTexture    *wgpu.Texture
	sceneView       *wgpu.TextureView
	sceneWidth      uint32
	sceneHeight     uint32
	sceneGeneration int

	spriteBindGroup *wgpu.BindGroup
	postBindGroup   *wgpu.BindGroup
}

// NewRenderer builds the full GPU state for the window: device,
// atlas texture, both pipelines, static buffers and bind groups.
func NewRenderer(window *glfw.Window, seed int64) (*Renderer, error) {
	ctx, err := NewContext(window)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		window:    window,
		ctx:       ctx,
		atlas:     core.BuildAtlas(),
		particles: core.NewParticles(seed),
	}
	r.batch = core.NewBatch(r.atlas)

	if err := r.setup(); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) setup() error {
	device := r.ctx.Device

	var err error
	r.sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("create sampler: %w", err)
	}

	if err := r.uploadAtlas(); err != nil {
		return err
	}
	if err := r.createPipelines(); err != nil {
		return err
	}
	if err := r.createBuffers(); err != nil {
		return err
	}
	if err := r.ensureSceneTarget(r.ctx.Config.Width, r.ctx.Config.Height); err != nil {
		return err
	}
	return r.createSpriteBindGroup()
}

func (r *Renderer) uploadAtlas() error {
	img := r.atlas.Image
	w := uint32(img.Bounds().Dx())
	h := uint32(img.Bounds().Dy())

	tex, err := r.ctx.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Sprite Atlas",
		Size:          wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create atlas texture: %w", err)
	}
	r.ctx.Queue.WriteTexture(tex.AsImageCopy(), img.Pix, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  4 * w,
		RowsPerImage: h,
	}, &wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1})

	r.atlasView, err = tex.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create atlas view: %w", err)
	}
	tex.Release()
	return nil
}

// premultiplied source-over
var premulBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}

func (r *Renderer) createPipelines() error {
	device := r.ctx.Device

	spriteMod, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Sprite Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.Sprite},
	})
	if err != nil {
		return fmt.Errorf("sprite shader: %w", err)
	}
	postMod, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Post Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.Post},
	})
	if err != nil {
		return fmt.Errorf("post shader: %w", err)
	}

	r.spritePipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Sprite Pipeline",
		Vertex: wgpu.VertexState{
			Module:     spriteMod,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: 8,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					},
				},
				{
					ArrayStride: core.InstanceStride,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 3},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     spriteMod,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    wgpu.TextureFormatRGBA8Unorm,
				Blend:     &premulBlend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleStrip,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("sprite pipeline: %w", err)
	}

	r.postPipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Post Pipeline",
		Vertex: wgpu.VertexState{
			Module:     postMod,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     postMod,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    r.ctx.Config.Format,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("post pipeline: %w", err)
	}
	return nil
}

func (r *Renderer) createBuffers() error {
	device := r.ctx.Device

	quad := []float32{
		-0.5, -0.5,
		0.5, -0.5,
		-0.5, 0.5,
		0.5, 0.5,
	}
	var err error
	r.quadBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Quad VB",
		Contents: wgpu.ToBytes(quad),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return fmt.Errorf("quad buffer: %w", err)
	}

	r.instanceBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Instance VB",
		Size:  core.MaxInstances * core.InstanceStride,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("instance buffer: %w", err)
	}

	r.sceneUniform, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Scene Uniform",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("scene uniform: %w", err)
	}

	r.postUniform, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Post Uniform",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("post uniform: %w", err)
	}
	return nil
}

// ensureSceneTarget recreates the offscreen color target when the
// framebuffer size changes, and the post bind group with it since it
// samples the target.
func (r *Renderer) ensureSceneTarget(width, height uint32) error {
	if !sceneTargetStale(r.sceneTexture != nil, r.sceneWidth, r.sceneHeight, width, height) {
		return nil
	}

	if r.sceneView != nil {
		r.sceneView.Release()
	}
	if r.sceneTexture != nil {
		r.sceneTexture.Release()
	}

	var err error
	r.sceneTexture, err = r.ctx.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Scene Target",
		Size:          wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
	})
	if err != nil {
		return fmt.Errorf("scene target: %w", err)
	}
	r.sceneView, err = r.sceneTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("scene target view: %w", err)
	}
	r.sceneWidth = width
	r.sceneHeight = height
	r.sceneGeneration++

	if r.postBindGroup != nil {
		r.postBindGroup.Release()
	}
	r.postBindGroup, err = r.ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: r.postPipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: r.sceneView},
			{Binding: 1, Sampler: r.sampler},
			{Binding: 2, Buffer: r.postUniform, Size: uniformSize},
		},
	})
	if err != nil {
		return fmt.Errorf("post bind group: %w", err)
	}
	return nil
}

// sceneTargetStale reports whether the offscreen target must be
// (re)created for the given framebuffer size. Zero sizes never force a
// recreation; a minimized window keeps the old target.
func sceneTargetStale(exists bool, curW, curH, newW, newH uint32) bool {
	if newW == 0 || newH == 0 {
		return false
	}
	return !exists || newW != curW || newH != curH
}

// SceneTargetGeneration counts offscreen target recreations, one per
// effective resize.
func (r *Renderer) SceneTargetGeneration() int { return r.sceneGeneration }

func (r *Renderer) createSpriteBindGroup() error {
	var err error
	r.spriteBindGroup, err = r.ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: r.spritePipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: r.atlasView},
			{Binding: 1, Sampler: r.sampler},
			{Binding: 2, Buffer: r.sceneUniform, Size: uniformSize},
		},
	})
	if err != nil {
		return fmt.Errorf("sprite bind group: %w", err)
	}
	return nil
}

// SpawnParticles emits a flap burst at (x, y).
func (r *Renderer) SpawnParticles(x, y float32, n int) {
	r.particles.Spawn(x, y, n)
}

// Dropped reports sprites rejected for capacity in the last frame.
func (r *Renderer) Dropped() int { return r.batch.Dropped() }

// Render composes the snapshot into the instance batch and draws the
// frame. A mismatch between the swapchain and the framebuffer size is
// fixed here, lazily, before drawing.
func (r *Renderer) Render(snap core.Snapshot) error {
	fbWidth, fbHeight := r.window.GetFramebufferSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return nil
	}
	if uint32(fbWidth) != r.ctx.Config.Width || uint32(fbHeight) != r.ctx.Config.Height {
		r.ctx.Resize(fbWidth, fbHeight)
	}
	if err := r.ensureSceneTarget(r.ctx.Config.Width, r.ctx.Config.Height); err != nil {
		return err
	}

	// compose in window coordinates; the framebuffer may be larger on
	// hidpi displays and NDC bridges the two
	winWidth, winHeight := r.window.GetSize()
	width := float32(winWidth)
	height := float32(winHeight)
	r.ctx.Queue.WriteBuffer(r.sceneUniform, 0, packSceneUniform(width, height))
	r.ctx.Queue.WriteBuffer(r.postUniform, 0, packPostUniform(width, height, float32(glfw.GetTime())))

	core.ComposeScene(r.batch, snap, width, height, r.particles)
	instances := r.batch.Instances()
	if len(instances) > 0 {
		size := len(instances) * core.InstanceStride
		data := unsafe.Slice((*byte)(unsafe.Pointer(&instances[0])), size)
		r.ctx.Queue.WriteBuffer(r.instanceBuffer, 0, data)
	}

	surfaceTex, err := r.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	defer surfaceTex.Release()

	surfaceView, err := surfaceTex.CreateView(nil)
	if err != nil {
		return fmt.Errorf("surface view: %w", err)
	}
	defer surfaceView.Release()

	encoder, err := r.ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}

	scenePass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       r.sceneView,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: skyBlue,
		}},
	})
	if len(instances) > 0 {
		scenePass.SetPipeline(r.spritePipeline)
		scenePass.SetBindGroup(0, r.spriteBindGroup, nil)
		scenePass.SetVertexBuffer(0, r.quadBuffer, 0, r.quadBuffer.GetSize())
		scenePass.SetVertexBuffer(1, r.instanceBuffer, 0, uint64(len(instances)*core.InstanceStride))
		scenePass.Draw(4, uint32(len(instances)), 0, 0)
	}
	if err := scenePass.End(); err != nil {
		return fmt.Errorf("scene pass: %w", err)
	}

	postPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       surfaceView,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	postPass.SetPipeline(r.postPipeline)
	postPass.SetBindGroup(0, r.postBindGroup, nil)
	postPass.Draw(6, 1, 0, 0)
	if err := postPass.End(); err != nil {
		return fmt.Errorf("post pass: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("encoder finish: %w", err)
	}
	r.ctx.Queue.Submit(cmd)
	r.ctx.Surface.Present()
	return nil
}

func (r *Renderer) Release() {
	if r.postBindGroup != nil {
		r.postBindGroup.Release()
	}
	if r.spriteBindGroup != nil {
		r.spriteBindGroup.Release()
	}
	if r.sceneView != nil {
		r.sceneView.Release()
	}
	if r.sceneTexture != nil {
		r.sceneTexture.Release()
	}
	if r.postUniform != nil {
		r.postUniform.Release()
	}
	if r.sceneUniform != nil {
		r.sceneUniform.Release()
	}
	if r.instanceBuffer != nil {
		r.instanceBuffer.Release()
	}
	if r.quadBuffer != nil {
		r.quadBuffer.Release()
	}
	if r.atlasView != nil {
		r.atlasView.Release()
	}
	if r.sampler != nil {
		r.sampler.Release()
	}
	if r.ctx != nil {
		r.ctx.Release()
	}
}
