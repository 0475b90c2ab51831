package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"

	"cubescene/scene"
)

//go:generate glslangValidator -V shaders/cube.vert -o shaders/cube.vert.spv
//go:generate glslangValidator -V shaders/cube.frag -o shaders/cube.frag.spv

func getVertexBindingDescription() []core1_0.VertexInputBindingDescription {
	v := scene.Vertex{}
	return []core1_0.VertexInputBindingDescription{
		{
			Binding:   0,
			Stride:    int(unsafe.Sizeof(v)),
			InputRate: core1_0.VertexInputRateVertex,
		},
	}
}

func getVertexAttributeDescriptions() []core1_0.VertexInputAttributeDescription {
	v := scene.Vertex{}
	return []core1_0.VertexInputAttributeDescription{
		{
			Binding:  0,
			Location: 0,
			Format:   core1_0.FormatR32G32B32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Position)),
		},
		{
			Binding:  0,
			Location: 1,
			Format:   core1_0.FormatR32G32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.TexCoord)),
		},
	}
}

func (app *App) createDescriptorSetLayout() error {
	var err error
	app.descriptorSetLayout, _, err = app.deviceDriver.CreateDescriptorSetLayout(nil, core1_0.DescriptorSetLayoutCreateInfo{
		Bindings: []core1_0.DescriptorSetLayoutBinding{
			{
				Binding:         0,
				DescriptorType:  core1_0.DescriptorTypeUniformBufferDynamic,
				DescriptorCount: 1,

				StageFlags: core1_0.StageVertex,
			},
			{
				Binding:         1,
				DescriptorType:  core1_0.DescriptorTypeCombinedImageSampler,
				DescriptorCount: 1,

				StageFlags: core1_0.StageFragment,
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "createDescriptorSetLayout")
	}

	return nil
}

func bytesToBytecode(b []byte) []uint32 {
	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = 0
		byteCode[i] |= uint32(b[byteIndex])
		byteCode[i] |= uint32(b[byteIndex+1]) << 8
		byteCode[i] |= uint32(b[byteIndex+2]) << 16
		byteCode[i] |= uint32(b[byteIndex+3]) << 24
	}

	return byteCode
}

// pipelineCacheHeader is the device fingerprint at the front of every
// serialized pipeline cache, in the layout mandated by the Vulkan spec
// (each field little-endian).
type pipelineCacheHeader struct {
	Length   uint32
	Version  core1_0.PipelineCacheHeaderVersion
	VendorID uint32
	DeviceID uint32
	CacheID  uuid.UUID
}

func parsePipelineCacheHeader(data []byte) (pipelineCacheHeader, error) {
	var header pipelineCacheHeader
	reader := bytes.NewReader(data)

	err := binary.Read(reader, common.ByteOrder, &header.Length)
	if err != nil {
		return header, err
	}
	err = binary.Read(reader, common.ByteOrder, &header.Version)
	if err != nil {
		return header, err
	}
	err = binary.Read(reader, common.ByteOrder, &header.VendorID)
	if err != nil {
		return header, err
	}
	err = binary.Read(reader, common.ByteOrder, &header.DeviceID)
	if err != nil {
		return header, err
	}
	err = binary.Read(reader, common.ByteOrder, &header.CacheID)
	return header, err
}

func (h pipelineCacheHeader) matches(properties *core1_0.PhysicalDeviceProperties) bool {
	return h.Length > 0 &&
		h.Version == core1_0.PipelineCacheHeaderVersionOne &&
		h.VendorID == properties.VendorID &&
		h.DeviceID == properties.DeviceID &&
		h.CacheID == properties.PipelineCacheUUID
}

func (app *App) createPipelineCache() error {
	var initialData []byte

	if app.config.PipelineCachePath != "" {
		data, err := os.ReadFile(app.config.PipelineCachePath)
		if err == nil {
			header, headerErr := parsePipelineCacheHeader(data)
			if headerErr == nil && header.matches(app.gpuProperties) {
				initialData = data
			} else {
				// A cache from another device or driver cannot be
				// submitted, start fresh and overwrite on exit.
				log.Printf("ignoring stale pipeline cache %s", app.config.PipelineCachePath)
			}
		}
	}

	var err error
	app.pipelineCache, _, err = app.deviceDriver.CreatePipelineCache(nil, core1_0.PipelineCacheCreateInfo{
		InitialData: initialData,
	})
	if err != nil {
		return errors.Wrap(err, "createPipelineCache")
	}

	return nil
}

func (app *App) savePipelineCache() {
	if app.config.PipelineCachePath == "" || !app.pipelineCache.Initialized() {
		return
	}

	data, _, err := app.deviceDriver.GetPipelineCacheData(app.pipelineCache)
	if err != nil {
		log.Printf("failed to read pipeline cache data: %v", err)
		return
	}

	err = os.WriteFile(app.config.PipelineCachePath, data, 0666)
	if err != nil {
		log.Printf("failed to write %s: %v", app.config.PipelineCachePath, err)
	}
}

func (app *App) createGraphicsPipeline() error {
	vertShader, _, err := app.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: bytesToBytecode(app.assets.vertexShader),
	})
	if err != nil {
		return errors.Wrap(err, "createGraphicsPipeline: vertex shader")
	}
	defer app.deviceDriver.DestroyShaderModule(vertShader, nil)

	fragShader, _, err := app.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: bytesToBytecode(app.assets.fragmentShader),
	})
	if err != nil {
		return errors.Wrap(err, "createGraphicsPipeline: fragment shader")
	}
	defer app.deviceDriver.DestroyShaderModule(fragShader, nil)

	vertexInput := &core1_0.PipelineVertexInputStateCreateInfo{
		VertexBindingDescriptions:   getVertexBindingDescription(),
		VertexAttributeDescriptions: getVertexAttributeDescriptions(),
	}

	inputAssembly := &core1_0.PipelineInputAssemblyStateCreateInfo{
		Topology:               core1_0.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: false,
	}

	vertStage := core1_0.PipelineShaderStageCreateInfo{
		Stage:  core1_0.StageVertex,
		Module: vertShader,
		Name:   "main",
	}

	fragStage := core1_0.PipelineShaderStageCreateInfo{
		Stage:  core1_0.StageFragment,
		Module: fragShader,
		Name:   "main",
	}

	viewport := &core1_0.PipelineViewportStateCreateInfo{
		Viewports: []core1_0.Viewport{
			{
				X:        0,
				Y:        0,
				Width:    float32(app.swapchainExtent.Width),
				Height:   float32(app.swapchainExtent.Height),
				MinDepth: 0,
				MaxDepth: 1,
			},
		},
		Scissors: []core1_0.Rect2D{
			{
				Offset: core1_0.Offset2D{X: 0, Y: 0},
				Extent: app.swapchainExtent,
			},
		},
	}

	rasterization := &core1_0.PipelineRasterizationStateCreateInfo{
		DepthClampEnable:        false,
		RasterizerDiscardEnable: false,

		// The clip correction flips Y, which reverses the winding of
		// every front face.
		PolygonMode: core1_0.PolygonModeFill,
		CullMode:    core1_0.CullModeBack,
		FrontFace:   core1_0.FrontFaceClockwise,

		DepthBiasEnable: false,

		LineWidth: 1.0,
	}

	multisample := &core1_0.PipelineMultisampleStateCreateInfo{
		SampleShadingEnable:  false,
		RasterizationSamples: core1_0.Samples1,
		MinSampleShading:     1.0,
	}

	depthStencil := &core1_0.PipelineDepthStencilStateCreateInfo{
		DepthTestEnable:  true,
		DepthWriteEnable: true,
		DepthCompareOp:   core1_0.CompareOpLess,
	}

	colorBlend := &core1_0.PipelineColorBlendStateCreateInfo{
		LogicOpEnabled: false,
		LogicOp:        core1_0.LogicOpCopy,

		BlendConstants: [4]float32{0, 0, 0, 0},
		Attachments: []core1_0.PipelineColorBlendAttachmentState{
			{
				BlendEnabled:   false,
				ColorWriteMask: core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha,
			},
		},
	}

	app.pipelineLayout, _, err = app.deviceDriver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{
		SetLayouts: []core1_0.DescriptorSetLayout{
			app.descriptorSetLayout,
		},
	})
	if err != nil {
		return errors.Wrap(err, "createGraphicsPipeline: layout")
	}

	start := hrtime.Now()
	pipelines, _, err := app.deviceDriver.CreateGraphicsPipelines(&app.pipelineCache, nil,
		core1_0.GraphicsPipelineCreateInfo{
			Stages: []core1_0.PipelineShaderStageCreateInfo{
				vertStage,
				fragStage,
			},
			VertexInputState:   vertexInput,
			InputAssemblyState: inputAssembly,
			ViewportState:      viewport,
			RasterizationState: rasterization,
			MultisampleState:   multisample,
			DepthStencilState:  depthStencil,
			ColorBlendState:    colorBlend,
			Layout:             app.pipelineLayout,
			RenderPass:         app.renderPass,
			Subpass:            0,
			BasePipelineIndex:  -1,
		},
	)
	if err != nil {
		return errors.Wrap(err, "createGraphicsPipeline")
	}
	log.Printf("vkCreateGraphicsPipelines: %s", hrtime.Now()-start)

	app.graphicsPipeline = pipelines[0]

	return nil
}
