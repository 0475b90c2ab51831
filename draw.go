package main

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/loov/hrtime"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"cubescene/scene"
)

func (app *App) createCommandBuffers() error {
	buffers, _, err := app.deviceDriver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        app.commandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: len(app.swapchainImages),
	})
	if err != nil {
		return err
	}
	app.commandBuffers = buffers

	for bufferIdx, buffer := range buffers {
		_, err = app.deviceDriver.BeginCommandBuffer(buffer, core1_0.CommandBufferBeginInfo{})
		if err != nil {
			return err
		}

		err = app.deviceDriver.CmdBeginRenderPass(buffer, core1_0.SubpassContentsInline,
			core1_0.RenderPassBeginInfo{
				RenderPass:  app.renderPass,
				Framebuffer: app.swapchainFramebuffers[bufferIdx],
				RenderArea: core1_0.Rect2D{
					Offset: core1_0.Offset2D{X: 0, Y: 0},
					Extent: app.swapchainExtent,
				},
				ClearValues: []core1_0.ClearValue{
					core1_0.ClearValueFloat{0.35, 0.35, 0.35, 1},
					core1_0.ClearValueDepthStencil{Depth: 1.0, Stencil: 0},
				},
			})
		if err != nil {
			return err
		}

		app.deviceDriver.CmdBindPipeline(buffer, core1_0.PipelineBindPointGraphics, app.graphicsPipeline)
		app.deviceDriver.CmdBindVertexBuffers(buffer, 0, []core1_0.Buffer{app.vertexBuffer}, []int{0})
		app.deviceDriver.CmdBindIndexBuffer(buffer, app.indexBuffer, 0, core1_0.IndexTypeUInt32)

		// One draw per cube, each rebinding the same descriptor set at
		// that cube's slot in the dynamic uniform buffer.
		for draw := 0; draw < drawsPerFrame; draw++ {
			app.deviceDriver.CmdBindDescriptorSets(buffer, core1_0.PipelineBindPointGraphics, app.pipelineLayout, 0, []core1_0.DescriptorSet{
				app.descriptorSets[bufferIdx],
			}, []int{draw * app.uniformStride})
			app.deviceDriver.CmdDrawIndexed(buffer, len(app.assets.indices), 1, 0, 0, 0)
		}

		app.deviceDriver.CmdEndRenderPass(buffer)

		_, err = app.deviceDriver.EndCommandBuffer(buffer)
		if err != nil {
			return err
		}
	}

	return nil
}

func (app *App) createSyncObjects() error {
	for i := 0; i < MaxFramesInFlight; i++ {
		semaphore, _, err := app.deviceDriver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return err
		}

		app.imageAvailableSemaphore = append(app.imageAvailableSemaphore, semaphore)

		fence, _, err := app.deviceDriver.CreateFence(nil, core1_0.FenceCreateInfo{
			Flags: core1_0.FenceCreateSignaled,
		})
		if err != nil {
			return err
		}

		app.inFlightFence = append(app.inFlightFence, fence)
	}

	for i := 0; i < len(app.swapchainImages); i++ {
		semaphore, _, err := app.deviceDriver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return err
		}

		app.renderFinishedSemaphore = append(app.renderFinishedSemaphore, semaphore)

		app.imagesInFlight = append(app.imagesInFlight, core1_0.Fence{})
	}

	return nil
}

func (app *App) drawFrame() error {
	fences := []core1_0.Fence{app.inFlightFence[app.currentFrame]}

	_, err := app.deviceDriver.WaitForFences(true, common.NoTimeout, fences...)
	if err != nil {
		return err
	}

	imageIndex, res, err := app.swapchainExtension.AcquireNextImage(app.swapchain, common.NoTimeout, &app.imageAvailableSemaphore[app.currentFrame], nil)
	if res == khr_swapchain.VKErrorOutOfDate {
		return app.recreateSwapchain()
	} else if err != nil {
		return err
	}

	if app.imagesInFlight[imageIndex].Initialized() {
		_, err := app.deviceDriver.WaitForFences(true, common.NoTimeout, app.imagesInFlight[imageIndex])
		if err != nil {
			return err
		}
	}
	app.imagesInFlight[imageIndex] = app.inFlightFence[app.currentFrame]

	_, err = app.deviceDriver.ResetFences(fences...)
	if err != nil {
		return err
	}

	err = app.updateUniformBuffer(imageIndex)
	if err != nil {
		return err
	}

	_, err = app.deviceDriver.QueueSubmit(app.graphicsQueue, &app.inFlightFence[app.currentFrame],
		core1_0.SubmitInfo{
			WaitSemaphores:   []core1_0.Semaphore{app.imageAvailableSemaphore[app.currentFrame]},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
			CommandBuffers:   []core1_0.CommandBuffer{app.commandBuffers[imageIndex]},
			SignalSemaphores: []core1_0.Semaphore{app.renderFinishedSemaphore[imageIndex]},
		},
	)
	if err != nil {
		return err
	}

	res, err = app.swapchainExtension.QueuePresent(app.presentQueue, khr_swapchain.PresentInfo{
		WaitSemaphores: []core1_0.Semaphore{app.renderFinishedSemaphore[imageIndex]},
		Swapchains:     []khr_swapchain.Swapchain{app.swapchain},
		ImageIndices:   []int{imageIndex},
	})
	if res == khr_swapchain.VKErrorOutOfDate || res == khr_swapchain.VKSuboptimal {
		return app.recreateSwapchain()
	} else if err != nil {
		return err
	}

	app.currentFrame = (app.currentFrame + 1) % MaxFramesInFlight

	return nil
}

// updateUniformBuffer recomputes every cube's world-view-projection from
// the current clock and writes each matrix into its aligned slot.
func (app *App) updateUniformBuffer(currentImage int) error {
	currentTime := hrtime.Now().Seconds()
	aspectRatio := float32(app.swapchainExtent.Width) / float32(app.swapchainExtent.Height)

	transforms := scene.WorldViewProjections(currentTime, aspectRatio)

	matrixSize := int(unsafe.Sizeof(mgl32.Mat4{}))
	padding := make([]byte, app.uniformStride-matrixSize)

	buf := &bytes.Buffer{}
	for _, transform := range transforms {
		err := binary.Write(buf, common.ByteOrder, transform)
		if err != nil {
			return err
		}
		buf.Write(padding)
	}

	return writeBytes(app.deviceDriver, app.uniformBuffersMemory[currentImage], 0, buf.Bytes())
}
