package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// Uniform buffer sizes derive from the GPU struct layouts in the model package.
var (
	transformUniformSize = uint64(unsafe.Sizeof(model.TransformationMatrix{}))
	materialUniformSize  = uint64(unsafe.Sizeof(model.GPUMaterial{}))
	lightUniformSize     = uint64(unsafe.Sizeof(model.GPUDirectionalLight{}))
	cameraUniformSize    = uint64(unsafe.Sizeof(model.GPUCamera{}))
)

// vertexStride is the byte size of one common.Vertex in the vertex buffer.
var vertexStride = uint64(unsafe.Sizeof(common.Vertex{}))

// meshBuffers holds the GPU vertex and index buffers for one uploaded mesh.
type meshBuffers struct {
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	vertexCount  int
	indexCount   int
}

// drawResources holds the per-object uniform buffers and bind group, cached
// by draw call ID. The bind group bakes in the texture view, so it is rebuilt
// when the object's texture changes.
type drawResources struct {
	transformBuffer *wgpu.Buffer
	materialBuffer  *wgpu.Buffer
	lightBuffer     *wgpu.Buffer
	cameraBuffer    *wgpu.Buffer
	bindGroup       *wgpu.BindGroup
	textureName     string
}

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTextureView      *wgpu.TextureView
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode // defaults to PresentModeImmediate (Uncapped)
	sampleCount MSAASampleCount  // MSAA sample count for the main render pass

	pipeline        *wgpu.RenderPipeline
	bindGroupLayout *wgpu.BindGroupLayout
	sampler         *wgpu.Sampler
	fallbackView    *wgpu.TextureView

	meshCache    map[string]*meshBuffers
	textureCache map[string]*wgpu.TextureView
	drawCache    map[uint64]*drawResources

	// Frame state for batched rendering across multiple draw calls
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	Device() *wgpu.Device
	Queue() *wgpu.Queue

	// ConfigureSurface is a wrapper for boilerplate logic required when calling ConfigureSurface on a surface.
	// This is required when the surface size changes, such as when the window is resized.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitMeshBuffers creates GPU vertex and index buffers for the model's
	// mesh data and caches them by model name. Re-initializing an already
	// cached mesh is a no-op.
	//
	// Parameters:
	//   - m: the model whose mesh data to upload
	//
	// Returns:
	//   - error: an error if the buffers could not be created
	InitMeshBuffers(m model.Model) error

	// InitTexture creates a GPU texture and view from staging data and caches
	// the view under the given name for use by draw calls.
	//
	// Parameters:
	//   - name: the key draw calls reference this texture by
	//   - stagingData: the pixel data and dimensions for the texture
	//
	// Returns:
	//   - error: an error if the texture could not be created
	InitTexture(name string, stagingData common.TextureStagingData) error

	// BeginFrame acquires the next swapchain texture, creates a command encoder, and begins
	// the main render pass. Must be paired with EndFrame after all Draw invocations.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// Draw uploads the call's uniform payloads and encodes one draw command
	// within the current render pass started by BeginFrame.
	//
	// Parameters:
	//   - call: the draw call to encode
	//
	// Returns:
	//   - error: an error if GPU resources for the call could not be created
	Draw(call DrawCall) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface; call Present() after EndFrame to display the frame.
	// Must be called after BeginFrame and all Draw invocations.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()
}

var _ wgpuRendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:           &sync.Mutex{},
		instance:     wgpu.CreateInstance(nil),
		presentMode:  wgpu.PresentModeImmediate,
		sampleCount:  sampleCount,
		meshCache:    make(map[string]*meshBuffers),
		textureCache: make(map[string]*wgpu.TextureView),
		drawCache:    make(map[uint64]*drawResources),
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

func (b *wgpuRendererBackendImpl) Device() *wgpu.Device {
	return b.device
}

func (b *wgpuRendererBackendImpl) Queue() *wgpu.Queue {
	return b.queue
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// Create the MSAA texture that the render pass draws into; the resolved
		// result is written to the swapchain view as the ResolveTarget.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        *b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			panic(err)
		}
		b.msaaTextureView, err = msaaTexture.CreateView(nil)
		if err != nil {
			panic(err)
		}
	} else {
		// No MSAA, so the render pass draws directly to the swapchain view.
		b.msaaTextureView = nil
	}

	// Depth texture sample count must match the color attachment.
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	// Build the cached render pass descriptor for the main render target.
	// When MSAA is enabled, View is the MSAA texture and ResolveTarget is
	// set per-frame to the swapchain view. When disabled, View is set
	// per-frame to the swapchain view and ResolveTarget remains nil.
	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard // Don't store MSAA data, just resolve
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:          b.msaaTextureView, // nil when MSAA is off; set in BeginFrame
				ResolveTarget: nil,               // set per-frame when MSAA is on
				LoadOp:        wgpu.LoadOpClear,
				StoreOp:       storeOp,
				ClearValue: wgpu.Color{
					R: 0.1, G: 0.25, B: 0.5, A: 1.0,
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView, // Persistent until resize
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard, // Depth not needed after resolving
			DepthClearValue: 1.0,
		},
	}

	if err := b.ensurePipelineLocked(); err != nil {
		panic(err)
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

// ensurePipelineLocked creates the single forward render pipeline plus the
// shared sampler and fallback texture. Requires the surface format from
// ConfigureSurface; no-op once created. Caller must hold b.mu.
func (b *wgpuRendererBackendImpl) ensurePipelineLocked() error {
	if b.pipeline != nil {
		return nil
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Object Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: objectShaderSource,
		},
	})
	if err != nil {
		return err
	}

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Object Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: transformUniformSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: materialUniformSize,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: lightUniformSize,
				},
			},
			{
				Binding:    3,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraUniformSize,
				},
			},
			{
				Binding:    4,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    5,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group layout: %w", err)
	}
	b.bindGroupLayout = layout

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Object Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return err
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Object Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 24, ShaderLocation: 2},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: *b.surfaceFormat,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLessEqual,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return err
	}
	b.pipeline = created

	b.sampler, err = b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Object Sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return err
	}

	// White 1x1 fallback for objects with no diffuse texture (no-op multiply).
	b.fallbackView, err = b.createTextureViewLocked("Fallback Texture", common.TextureStagingData{
		Pixels: []byte{255, 255, 255, 255},
		Width:  1,
		Height: 1,
	})
	return err
}

func (b *wgpuRendererBackendImpl) InitMeshBuffers(m model.Model) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initMeshBuffersLocked(m)
}

func (b *wgpuRendererBackendImpl) initMeshBuffersLocked(m model.Model) error {
	if _, exists := b.meshCache[m.Name()]; exists {
		return nil
	}

	mesh := &meshBuffers{
		vertexCount: m.VertexCount(),
		indexCount:  m.IndexCount(),
	}

	vertexData := m.VertexData()
	if len(vertexData) == 0 {
		return fmt.Errorf("model %q has no vertex data", m.Name())
	}
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            m.Name() + " Vertex Buffer",
		Size:             uint64(len(vertexData)),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(buf, 0, vertexData)
	mesh.vertexBuffer = buf

	if indexData := m.IndexData(); len(indexData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            m.Name() + " Index Buffer",
			Size:             uint64(len(indexData)),
			Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, indexData)
		mesh.indexBuffer = buf
	}

	b.meshCache[m.Name()] = mesh
	return nil
}

func (b *wgpuRendererBackendImpl) InitTexture(name string, stagingData common.TextureStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.textureCache[name]; exists {
		return nil
	}

	view, err := b.createTextureViewLocked(name+" Texture", stagingData)
	if err != nil {
		return err
	}
	b.textureCache[name] = view
	return nil
}

// createTextureViewLocked uploads RGBA pixel data into a new 2D texture and
// returns its view. Caller must hold b.mu.
func (b *wgpuRendererBackendImpl) createTextureViewLocked(label string, stagingData common.TextureStagingData) (*wgpu.TextureView, error) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     label,
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		stagingData.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  stagingData.Width * 4,
			RowsPerImage: stagingData.Height,
		},
		&wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
	)

	return tex.CreateView(nil)
}

// drawResourcesLocked returns the per-object uniform buffers and bind group
// for the call, creating or rebuilding them as needed. Resources are keyed by
// the call's ID rather than its model so objects sharing a model do not alias
// each other's uniforms. Caller must hold b.mu.
func (b *wgpuRendererBackendImpl) drawResourcesLocked(call DrawCall) (*drawResources, error) {
	name := call.Model.Name()
	res := b.drawCache[call.ID]
	if res != nil && res.textureName == call.TexturePath {
		return res, nil
	}

	if res == nil {
		res = &drawResources{}
		uniforms := []struct {
			target **wgpu.Buffer
			label  string
			size   uint64
		}{
			{&res.transformBuffer, " Transform Buffer", transformUniformSize},
			{&res.materialBuffer, " Material Buffer", materialUniformSize},
			{&res.lightBuffer, " Light Buffer", lightUniformSize},
			{&res.cameraBuffer, " Camera Buffer", cameraUniformSize},
		}
		for _, u := range uniforms {
			buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
				Label: name + u.label,
				Size:  u.size,
				Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
			})
			if err != nil {
				return nil, err
			}
			*u.target = buf
		}
	}

	textureView := b.fallbackView
	if view, ok := b.textureCache[call.TexturePath]; ok {
		textureView = view
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  name + " Bind Group",
		Layout: b.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: res.transformBuffer, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: res.materialBuffer, Size: wgpu.WholeSize},
			{Binding: 2, Buffer: res.lightBuffer, Size: wgpu.WholeSize},
			{Binding: 3, Buffer: res.cameraBuffer, Size: wgpu.WholeSize},
			{Binding: 4, TextureView: textureView},
			{Binding: 5, Sampler: b.sampler},
		},
	})
	if err != nil {
		return nil, err
	}

	if res.bindGroup != nil {
		res.bindGroup.Release()
	}
	res.bindGroup = bindGroup
	res.textureName = call.TexturePath
	b.drawCache[call.ID] = res
	return res, nil
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A surface texture can only be acquired once per present. Holding one
	// from a previous frame means Present was skipped.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	// When MSAA is enabled, the MSAA texture is the color attachment View and
	// the swapchain view is the ResolveTarget. When MSAA is off, the swapchain
	// view is the color attachment View directly and ResolveTarget is nil.
	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) Draw(call DrawCall) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.initMeshBuffersLocked(call.Model); err != nil {
		return err
	}
	mesh := b.meshCache[call.Model.Name()]

	res, err := b.drawResourcesLocked(call)
	if err != nil {
		return err
	}

	b.queue.WriteBuffer(res.transformBuffer, 0, common.StructToBytes(&call.Transform))
	b.queue.WriteBuffer(res.materialBuffer, 0, common.StructToBytes(&call.Material))
	b.queue.WriteBuffer(res.lightBuffer, 0, common.StructToBytes(&call.Light))
	b.queue.WriteBuffer(res.cameraBuffer, 0, common.StructToBytes(&call.Camera))

	b.framePass.SetPipeline(b.pipeline)
	b.framePass.SetBindGroup(0, res.bindGroup, nil)
	b.framePass.SetVertexBuffer(0, mesh.vertexBuffer, 0, wgpu.WholeSize)

	if mesh.indexBuffer != nil {
		b.framePass.SetIndexBuffer(mesh.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		b.framePass.DrawIndexed(uint32(mesh.indexCount), 1, 0, 0, 0)
	} else {
		b.framePass.Draw(uint32(mesh.vertexCount), 1, 0, 0)
	}

	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If no frame surface is held, nothing to present.
	if b.frameSurface == nil {
		return
	}

	// Present the acquired surface image and release local references.
	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}
