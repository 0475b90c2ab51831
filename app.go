package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"cubescene/scene"
)

const MaxFramesInFlight = 2

// Config carries the command-line options.
type Config struct {
	Width, Height     int
	TexturePath       string
	ShaderDir         string
	MeshPath          string
	PipelineCachePath string
	EnableValidation  bool
}

// App owns the window and every Vulkan object of the demo. Resources are
// created once in initVulkan, except the swapchain-sized set which is
// rebuilt on window resize.
type App struct {
	config Config
	assets assets

	window *sdl.Window

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugDriver      ext_debug_utils.ExtensionDriver
	debugMessenger   ext_debug_utils.DebugUtilsMessenger
	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface

	physicalDevice core1_0.PhysicalDevice
	gpuProperties  *core1_0.PhysicalDeviceProperties

	graphicsQueue core1_0.Queue
	presentQueue  core1_0.Queue

	swapchainExtension    khr_swapchain.ExtensionDriver
	swapchain             khr_swapchain.Swapchain
	swapchainImages       []core1_0.Image
	swapchainImageFormat  core1_0.Format
	swapchainExtent       core1_0.Extent2D
	swapchainImageViews   []core1_0.ImageView
	swapchainFramebuffers []core1_0.Framebuffer

	renderPass          core1_0.RenderPass
	descriptorPool      core1_0.DescriptorPool
	descriptorSets      []core1_0.DescriptorSet
	descriptorSetLayout core1_0.DescriptorSetLayout
	pipelineLayout      core1_0.PipelineLayout
	pipelineCache       core1_0.PipelineCache
	graphicsPipeline    core1_0.Pipeline

	commandPool    core1_0.CommandPool
	commandBuffers []core1_0.CommandBuffer

	imageAvailableSemaphore []core1_0.Semaphore
	renderFinishedSemaphore []core1_0.Semaphore
	inFlightFence           []core1_0.Fence
	imagesInFlight          []core1_0.Fence
	currentFrame            int

	vertexBuffer       core1_0.Buffer
	vertexBufferMemory core1_0.DeviceMemory
	indexBuffer        core1_0.Buffer
	indexBufferMemory  core1_0.DeviceMemory

	// One dynamic uniform buffer per swapchain image, holding an aligned
	// transform slot for each cube.
	uniformBuffers       []core1_0.Buffer
	uniformBuffersMemory []core1_0.DeviceMemory
	uniformStride        int

	mipLevels          int
	textureImage       core1_0.Image
	textureImageMemory core1_0.DeviceMemory
	textureImageView   core1_0.ImageView
	textureSampler     core1_0.Sampler

	depthImage       core1_0.Image
	depthImageMemory core1_0.DeviceMemory
	depthImageView   core1_0.ImageView
}

func (app *App) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.loadAssets()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.mainLoop()
}

func (app *App) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	window, err := sdl.CreateWindow("Textured Cubes",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(app.config.Width), int32(app.config.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return err
	}
	app.window = window

	app.globalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}

	return nil
}

func (app *App) initVulkan() error {
	err := app.createInstance()
	if err != nil {
		return err
	}

	err = app.setupDebugMessenger()
	if err != nil {
		return err
	}

	err = app.createSurface()
	if err != nil {
		return err
	}

	err = app.pickPhysicalDevice()
	if err != nil {
		return err
	}

	err = app.createLogicalDevice()
	if err != nil {
		return err
	}

	err = app.createSwapchain()
	if err != nil {
		return err
	}

	err = app.createImageViews()
	if err != nil {
		return err
	}

	err = app.createRenderPass()
	if err != nil {
		return err
	}

	err = app.createDescriptorSetLayout()
	if err != nil {
		return err
	}

	err = app.createPipelineCache()
	if err != nil {
		return err
	}

	err = app.createGraphicsPipeline()
	if err != nil {
		return err
	}

	err = app.createCommandPool()
	if err != nil {
		return err
	}

	err = app.createDepthResources()
	if err != nil {
		return err
	}

	err = app.createFramebuffers()
	if err != nil {
		return err
	}

	err = app.createTextureImage()
	if err != nil {
		return err
	}

	err = app.createTextureImageView()
	if err != nil {
		return err
	}

	err = app.createSampler()
	if err != nil {
		return err
	}

	err = app.createVertexBuffer()
	if err != nil {
		return err
	}

	err = app.createIndexBuffer()
	if err != nil {
		return err
	}

	err = app.createUniformBuffers()
	if err != nil {
		return err
	}

	err = app.createDescriptorPool()
	if err != nil {
		return err
	}

	err = app.createDescriptorSets()
	if err != nil {
		return err
	}

	err = app.createCommandBuffers()
	if err != nil {
		return err
	}

	return app.createSyncObjects()
}

func (app *App) mainLoop() error {
	rendering := true

appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_MINIMIZED:
					rendering = false
				case sdl.WINDOWEVENT_RESTORED:
					rendering = true
				case sdl.WINDOWEVENT_RESIZED:
					w, h := app.window.GetSize()
					if w > 0 && h > 0 {
						rendering = true
						err := app.recreateSwapchain()
						if err != nil {
							return err
						}
					} else {
						rendering = false
					}
				}
			}
		}
		if rendering {
			err := app.drawFrame()
			if err != nil {
				return err
			}
		}
	}

	_, err := app.deviceDriver.DeviceWaitIdle()
	return err
}

func (app *App) recreateSwapchain() error {
	w, h := app.window.VulkanGetDrawableSize()
	if w == 0 || h == 0 {
		return nil
	}
	if (app.window.GetFlags() & sdl.WINDOW_MINIMIZED) != 0 {
		return nil
	}

	_, err := app.deviceDriver.DeviceWaitIdle()
	if err != nil {
		return err
	}

	app.cleanupSwapchain()

	err = app.createSwapchain()
	if err != nil {
		return err
	}

	err = app.createImageViews()
	if err != nil {
		return err
	}

	err = app.createRenderPass()
	if err != nil {
		return err
	}

	err = app.createGraphicsPipeline()
	if err != nil {
		return err
	}

	err = app.createDepthResources()
	if err != nil {
		return err
	}

	err = app.createFramebuffers()
	if err != nil {
		return err
	}

	err = app.createUniformBuffers()
	if err != nil {
		return err
	}

	err = app.createDescriptorPool()
	if err != nil {
		return err
	}

	err = app.createDescriptorSets()
	if err != nil {
		return err
	}

	err = app.createCommandBuffers()
	if err != nil {
		return err
	}

	app.imagesInFlight = []core1_0.Fence{}
	for i := 0; i < len(app.swapchainImages); i++ {
		app.imagesInFlight = append(app.imagesInFlight, core1_0.Fence{})
	}

	return nil
}

func (app *App) cleanupSwapchain() {
	if app.depthImageView.Initialized() {
		app.deviceDriver.DestroyImageView(app.depthImageView, nil)
		app.depthImageView = core1_0.ImageView{}
	}

	if app.depthImage.Initialized() {
		app.deviceDriver.DestroyImage(app.depthImage, nil)
		app.depthImage = core1_0.Image{}
	}

	if app.depthImageMemory.Initialized() {
		app.deviceDriver.FreeMemory(app.depthImageMemory, nil)
		app.depthImageMemory = core1_0.DeviceMemory{}
	}

	for _, framebuffer := range app.swapchainFramebuffers {
		app.deviceDriver.DestroyFramebuffer(framebuffer, nil)
	}
	app.swapchainFramebuffers = []core1_0.Framebuffer{}

	if len(app.commandBuffers) > 0 {
		app.deviceDriver.FreeCommandBuffers(app.commandBuffers...)
		app.commandBuffers = []core1_0.CommandBuffer{}
	}

	if app.graphicsPipeline.Initialized() {
		app.deviceDriver.DestroyPipeline(app.graphicsPipeline, nil)
		app.graphicsPipeline = core1_0.Pipeline{}
	}

	if app.pipelineLayout.Initialized() {
		app.deviceDriver.DestroyPipelineLayout(app.pipelineLayout, nil)
		app.pipelineLayout = core1_0.PipelineLayout{}
	}

	if app.renderPass.Initialized() {
		app.deviceDriver.DestroyRenderPass(app.renderPass, nil)
		app.renderPass = core1_0.RenderPass{}
	}

	for _, imageView := range app.swapchainImageViews {
		app.deviceDriver.DestroyImageView(imageView, nil)
	}
	app.swapchainImageViews = []core1_0.ImageView{}

	if app.swapchain.Initialized() {
		app.swapchainExtension.DestroySwapchain(app.swapchain, nil)
		app.swapchain = khr_swapchain.Swapchain{}
	}

	for i := 0; i < len(app.uniformBuffers); i++ {
		app.deviceDriver.DestroyBuffer(app.uniformBuffers[i], nil)
	}
	app.uniformBuffers = app.uniformBuffers[:0]

	for i := 0; i < len(app.uniformBuffersMemory); i++ {
		app.deviceDriver.FreeMemory(app.uniformBuffersMemory[i], nil)
	}
	app.uniformBuffersMemory = app.uniformBuffersMemory[:0]

	if app.descriptorPool.Initialized() {
		app.deviceDriver.DestroyDescriptorPool(app.descriptorPool, nil)
		app.descriptorPool = core1_0.DescriptorPool{}
	}
}

func (app *App) cleanup() {
	app.cleanupSwapchain()

	app.savePipelineCache()
	if app.pipelineCache.Initialized() {
		app.deviceDriver.DestroyPipelineCache(app.pipelineCache, nil)
	}

	if app.textureSampler.Initialized() {
		app.deviceDriver.DestroySampler(app.textureSampler, nil)
	}

	if app.textureImageView.Initialized() {
		app.deviceDriver.DestroyImageView(app.textureImageView, nil)
	}

	if app.textureImage.Initialized() {
		app.deviceDriver.DestroyImage(app.textureImage, nil)
	}

	if app.textureImageMemory.Initialized() {
		app.deviceDriver.FreeMemory(app.textureImageMemory, nil)
	}

	if app.descriptorSetLayout.Initialized() {
		app.deviceDriver.DestroyDescriptorSetLayout(app.descriptorSetLayout, nil)
	}

	if app.indexBuffer.Initialized() {
		app.deviceDriver.DestroyBuffer(app.indexBuffer, nil)
	}

	if app.indexBufferMemory.Initialized() {
		app.deviceDriver.FreeMemory(app.indexBufferMemory, nil)
	}

	if app.vertexBuffer.Initialized() {
		app.deviceDriver.DestroyBuffer(app.vertexBuffer, nil)
	}

	if app.vertexBufferMemory.Initialized() {
		app.deviceDriver.FreeMemory(app.vertexBufferMemory, nil)
	}

	for _, fence := range app.inFlightFence {
		app.deviceDriver.DestroyFence(fence, nil)
	}

	for _, semaphore := range app.renderFinishedSemaphore {
		app.deviceDriver.DestroySemaphore(semaphore, nil)
	}

	for _, semaphore := range app.imageAvailableSemaphore {
		app.deviceDriver.DestroySemaphore(semaphore, nil)
	}

	if app.commandPool.Initialized() {
		app.deviceDriver.DestroyCommandPool(app.commandPool, nil)
	}

	if app.deviceDriver != nil {
		app.deviceDriver.DestroyDevice(nil)
	}

	if app.debugMessenger.Initialized() {
		app.debugDriver.DestroyDebugUtilsMessenger(app.debugMessenger, nil)
	}

	if app.surface.Initialized() {
		app.surfaceExtension.DestroySurface(app.surface, nil)
	}

	if app.instanceDriver != nil {
		app.instanceDriver.DestroyInstance(nil)
	}

	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()
}

// drawsPerFrame is the fixed number of indexed draw calls recorded per
// frame, one per cube.
const drawsPerFrame = scene.CubeCount
