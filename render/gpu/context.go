// Package gpu owns the WebGPU device, swapchain and the two render
// pipelines the game draws with.
package gpu

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrUnsupported reports that no usable WebGPU adapter or device is
// available on this machine. Callers are expected to treat it as a
// capability signal rather than a crash.
var ErrUnsupported = errors.New("gpu: webgpu is not supported on this system")

// Context bundles the WebGPU objects whose lifetime matches the
// window's.
type Context struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration
}

// NewContext requests an adapter and device for the window's surface
// and configures the swapchain at the current framebuffer size.
// Adapter and device failures come back wrapped in ErrUnsupported.
func NewContext(window *glfw.Window) (*Context, error) {
	ctx := &Context{}
	ctx.Instance = wgpu.CreateInstance(nil)

	ctx.Surface = ctx.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	adapter, err := ctx.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: ctx.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("%w: no adapter: %v", ErrUnsupported, err)
	}
	ctx.Adapter = adapter

	ctx.Device, err = adapter.RequestDevice(nil)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("%w: no device: %v", ErrUnsupported, err)
	}
	ctx.Queue = ctx.Device.GetQueue()

	width, height := window.GetFramebufferSize()
	caps := ctx.Surface.GetCapabilities(adapter)
	ctx.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	ctx.Surface.Configure(adapter, ctx.Device, ctx.Config)

	return ctx, nil
}

// Resize reconfigures the swapchain. Zero sizes (minimized window) are
// ignored.
func (c *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Config.Width = uint32(width)
	c.Config.Height = uint32(height)
	c.Surface.Configure(c.Adapter, c.Device, c.Config)
}

func (c *Context) Release() {
	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}
	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}
	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}
	if c.Instance != nil {
		c.Instance.Release()
		c.Instance = nil
	}
}
