package main

import (
	"flag"
	"log"
	"runtime"
)

func main() {
	var config Config
	flag.IntVar(&config.Width, "width", 800, "initial window width")
	flag.IntVar(&config.Height, "height", 600, "initial window height")
	flag.StringVar(&config.TexturePath, "texture", "assets/crate.png", "texture applied to every cube")
	flag.StringVar(&config.ShaderDir, "shaders", "shaders", "directory holding cube.vert.spv and cube.frag.spv")
	flag.StringVar(&config.MeshPath, "mesh", "", "optional OBJ mesh drawn in place of the cube")
	flag.StringVar(&config.PipelineCachePath, "pipeline-cache", "pipeline_cache.bin", "pipeline cache file; empty disables persistence")
	flag.BoolVar(&config.EnableValidation, "validation", true, "enable the Khronos validation layer")
	flag.Parse()

	// SDL and the swapchain must stay on the startup thread.
	runtime.LockOSThread()

	app := &App{config: config}
	err := app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
