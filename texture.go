package main

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func (app *App) createTextureImage() error {
	width := app.assets.textureWidth
	height := app.assets.textureHeight
	imageSize := width * height * 4

	app.mipLevels = int(math.Floor(math.Log2(math.Max(float64(width), float64(height))))) + 1

	stagingBuffer, stagingMemory, err := app.createBuffer(imageSize, core1_0.BufferUsageTransferSrc, core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent)
	if err != nil {
		return err
	}

	defer app.deviceDriver.DestroyBuffer(stagingBuffer, nil)
	defer app.deviceDriver.FreeMemory(stagingMemory, nil)

	err = writeBytes(app.deviceDriver, stagingMemory, 0, app.assets.texturePixels)
	if err != nil {
		return err
	}

	app.textureImage, app.textureImageMemory, err = app.createImage(width,
		height,
		app.mipLevels,
		core1_0.FormatR8G8B8A8SRGB,
		core1_0.ImageTilingOptimal,
		core1_0.ImageUsageTransferSrc|core1_0.ImageUsageTransferDst|core1_0.ImageUsageSampled,
		core1_0.MemoryPropertyDeviceLocal)
	if err != nil {
		return err
	}

	err = app.transitionImageLayout(app.textureImage, core1_0.FormatR8G8B8A8SRGB, core1_0.ImageLayoutUndefined, core1_0.ImageLayoutTransferDstOptimal, app.mipLevels)
	if err != nil {
		return err
	}
	err = app.copyBufferToImage(stagingBuffer, app.textureImage, width, height)
	if err != nil {
		return err
	}

	// Leaves every mip level in ShaderReadOnlyOptimal.
	return app.generateMipmaps(app.textureImage, core1_0.FormatR8G8B8A8SRGB, width, height, app.mipLevels)
}

func (app *App) generateMipmaps(image core1_0.Image, imageFormat core1_0.Format, width, height int, mipLevels int) error {
	properties := app.instanceDriver.GetPhysicalDeviceFormatProperties(app.physicalDevice, imageFormat)

	if (properties.OptimalTilingFeatures & core1_0.FormatFeatureSampledImageFilterLinear) == 0 {
		return errors.Errorf("texture image format %s does not support linear blitting", imageFormat)
	}

	commandBuffer, err := app.beginSingleTimeCommands()
	if err != nil {
		return err
	}

	barrier := core1_0.ImageMemoryBarrier{
		Image:               image,
		SrcQueueFamilyIndex: -1,
		DstQueueFamilyIndex: -1,
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     core1_0.ImageAspectColor,
			BaseArrayLayer: 0,
			LayerCount:     1,
			LevelCount:     1,
		},
	}

	mipWidth := width
	mipHeight := height
	for i := 1; i < mipLevels; i++ {
		barrier.SubresourceRange.BaseMipLevel = i - 1
		barrier.OldLayout = core1_0.ImageLayoutTransferDstOptimal
		barrier.NewLayout = core1_0.ImageLayoutTransferSrcOptimal
		barrier.SrcAccessMask = core1_0.AccessTransferWrite
		barrier.DstAccessMask = core1_0.AccessTransferRead

		err = app.deviceDriver.CmdPipelineBarrier(commandBuffer, core1_0.PipelineStageTransfer, core1_0.PipelineStageTransfer, 0, nil, nil, []core1_0.ImageMemoryBarrier{barrier})
		if err != nil {
			return err
		}

		nextMipWidth := mipWidth
		nextMipHeight := mipHeight

		if nextMipWidth > 1 {
			nextMipWidth /= 2
		}
		if nextMipHeight > 1 {
			nextMipHeight /= 2
		}
		err = app.deviceDriver.CmdBlitImage(commandBuffer, image, core1_0.ImageLayoutTransferSrcOptimal, image, core1_0.ImageLayoutTransferDstOptimal, []core1_0.ImageBlit{
			{
				SrcSubresource: core1_0.ImageSubresourceLayers{
					AspectMask:     core1_0.ImageAspectColor,
					MipLevel:       i - 1,
					BaseArrayLayer: 0,
					LayerCount:     1,
				},
				SrcOffsets: [2]core1_0.Offset3D{
					{X: 0, Y: 0, Z: 0},
					{X: mipWidth, Y: mipHeight, Z: 1},
				},

				DstSubresource: core1_0.ImageSubresourceLayers{
					AspectMask:     core1_0.ImageAspectColor,
					MipLevel:       i,
					BaseArrayLayer: 0,
					LayerCount:     1,
				},
				DstOffsets: [2]core1_0.Offset3D{
					{X: 0, Y: 0, Z: 0},
					{X: nextMipWidth, Y: nextMipHeight, Z: 1},
				},
			},
		}, core1_0.FilterLinear)
		if err != nil {
			return err
		}

		barrier.OldLayout = core1_0.ImageLayoutTransferSrcOptimal
		barrier.NewLayout = core1_0.ImageLayoutShaderReadOnlyOptimal
		barrier.SrcAccessMask = core1_0.AccessTransferRead
		barrier.DstAccessMask = core1_0.AccessShaderRead
		err = app.deviceDriver.CmdPipelineBarrier(commandBuffer, core1_0.PipelineStageTransfer, core1_0.PipelineStageFragmentShader, 0, nil, nil, []core1_0.ImageMemoryBarrier{barrier})
		if err != nil {
			return err
		}

		mipWidth = nextMipWidth
		mipHeight = nextMipHeight
	}

	barrier.SubresourceRange.BaseMipLevel = mipLevels - 1
	barrier.OldLayout = core1_0.ImageLayoutTransferDstOptimal
	barrier.NewLayout = core1_0.ImageLayoutShaderReadOnlyOptimal
	barrier.SrcAccessMask = core1_0.AccessTransferWrite
	barrier.DstAccessMask = core1_0.AccessShaderRead

	err = app.deviceDriver.CmdPipelineBarrier(
		commandBuffer,
		core1_0.PipelineStageTransfer,
		core1_0.PipelineStageFragmentShader,
		0, nil, nil,
		[]core1_0.ImageMemoryBarrier{barrier})
	if err != nil {
		return err
	}

	return app.endSingleTimeCommands(commandBuffer)
}

func (app *App) createTextureImageView() error {
	var err error
	app.textureImageView, err = app.createImageView(app.textureImage, core1_0.FormatR8G8B8A8SRGB, core1_0.ImageAspectColor, app.mipLevels)
	return err
}

func (app *App) createSampler() error {
	var err error
	app.textureSampler, _, err = app.deviceDriver.CreateSampler(nil, core1_0.SamplerCreateInfo{
		MagFilter:    core1_0.FilterLinear,
		MinFilter:    core1_0.FilterLinear,
		AddressModeU: core1_0.SamplerAddressModeClampToEdge,
		AddressModeV: core1_0.SamplerAddressModeClampToEdge,
		AddressModeW: core1_0.SamplerAddressModeClampToEdge,

		BorderColor: core1_0.BorderColorIntOpaqueBlack,

		MipmapMode: core1_0.SamplerMipmapModeLinear,
		MinLod:     0,
		MaxLod:     float32(app.mipLevels),
	})

	return err
}

func (app *App) transitionImageLayout(image core1_0.Image, format core1_0.Format, oldLayout core1_0.ImageLayout, newLayout core1_0.ImageLayout, mipLevels int) error {
	buffer, err := app.beginSingleTimeCommands()
	if err != nil {
		return err
	}

	var sourceStage, destStage core1_0.PipelineStageFlags
	var sourceAccess, destAccess core1_0.AccessFlags

	if oldLayout == core1_0.ImageLayoutUndefined && newLayout == core1_0.ImageLayoutTransferDstOptimal {
		sourceAccess = 0
		destAccess = core1_0.AccessTransferWrite
		sourceStage = core1_0.PipelineStageTopOfPipe
		destStage = core1_0.PipelineStageTransfer
	} else if oldLayout == core1_0.ImageLayoutTransferDstOptimal && newLayout == core1_0.ImageLayoutShaderReadOnlyOptimal {
		sourceAccess = core1_0.AccessTransferWrite
		destAccess = core1_0.AccessShaderRead
		sourceStage = core1_0.PipelineStageTransfer
		destStage = core1_0.PipelineStageFragmentShader
	} else {
		return errors.Errorf("unexpected layout transition: %s -> %s", oldLayout, newLayout)
	}

	err = app.deviceDriver.CmdPipelineBarrier(buffer, sourceStage, destStage, 0, nil, nil, []core1_0.ImageMemoryBarrier{
		{
			OldLayout:           oldLayout,
			NewLayout:           newLayout,
			SrcQueueFamilyIndex: -1,
			DstQueueFamilyIndex: -1,
			Image:               image,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     mipLevels,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			SrcAccessMask: sourceAccess,
			DstAccessMask: destAccess,
		},
	})
	if err != nil {
		return err
	}

	return app.endSingleTimeCommands(buffer)
}

func (app *App) copyBufferToImage(buffer core1_0.Buffer, image core1_0.Image, width, height int) error {
	cmdBuffer, err := app.beginSingleTimeCommands()
	if err != nil {
		return err
	}

	err = app.deviceDriver.CmdCopyBufferToImage(cmdBuffer, buffer, image, core1_0.ImageLayoutTransferDstOptimal,
		core1_0.BufferImageCopy{
			BufferOffset:      0,
			BufferRowLength:   0,
			BufferImageHeight: 0,

			ImageSubresource: core1_0.ImageSubresourceLayers{
				AspectMask:     core1_0.ImageAspectColor,
				MipLevel:       0,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			ImageOffset: core1_0.Offset3D{X: 0, Y: 0, Z: 0},
			ImageExtent: core1_0.Extent3D{Width: width, Height: height, Depth: 1},
		},
	)
	if err != nil {
		return err
	}

	return app.endSingleTimeCommands(cmdBuffer)
}
