package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/df07/go-voxel-core/pkg/engine"
	"github.com/df07/go-voxel-core/pkg/loaders"
	"github.com/df07/go-voxel-core/pkg/scene"
	"github.com/pkg/errors"
)

// scenesDir holds scene files that can be selected by name
const scenesDir = "scenes"

type options struct {
	sceneName  string
	configPath string
	frames     int
	fps        int
	exportPath string
}

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "flat", "Built-in scene name, scene file name in scenes/, or path to a .yaml scene")
	configPath := flag.String("config", "", "Path to a YAML engine config (optional)")
	frames := flag.Int("frames", 240, "Maximum number of frames to simulate")
	fps := flag.Int("fps", 60, "Simulated frames per second")
	exportPath := flag.String("export", "", "Write the scene to a .glb or .gltf file when done")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Voxel Core")
		fmt.Println("Usage: voxel-core [options]")
		fmt.Println()
		fmt.Println("Runs a headless session: selects the block under the crosshair,")
		fmt.Println("focuses the camera on it and steps frames until the transition ends.")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	logger := engine.NewDefaultLogger()

	if *list {
		if err := listScenes(logger); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := options{
		sceneName:  *sceneName,
		configPath: *configPath,
		frames:     *frames,
		fps:        *fps,
		exportPath: *exportPath,
	}

	startTime := time.Now()
	stats, err := run(opts, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Session completed in %v: %d frames, %d transitions\n",
		time.Since(startTime), stats.Frames, stats.Transitions)
}

func listScenes(logger core.Logger) error {
	groups, err := scene.ListAllScenes(scenesDir, logger)
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-12s %s\n", info.ID, info.Description)
		}
	}
	return nil
}

// createScene resolves a scene name: built-in scenes first, then scenes/<name>.yaml,
// then the argument as a path
func createScene(name string, logger core.Logger) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("empty scene name")
	}
	s, err := scene.CreateScene(name, logger)
	if err == nil || !errors.Is(err, scene.ErrUnknownScene) {
		return s, err
	}

	path := filepath.Join(scenesDir, name+".yaml")
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, err
	}
	return scene.CreateScene(path, logger)
}

// run executes a headless session and optionally exports the final scene
func run(opts options, logger core.Logger) (engine.SessionStats, error) {
	var stats engine.SessionStats
	if opts.frames <= 0 || opts.fps <= 0 {
		return stats, errors.Errorf("frames and fps must be positive, got %d and %d", opts.frames, opts.fps)
	}

	config := engine.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := engine.LoadConfig(opts.configPath)
		if err != nil {
			return stats, err
		}
		config = loaded
	}

	s, err := createScene(opts.sceneName, logger)
	if err != nil {
		return stats, errors.Wrapf(err, "failed to create scene %q", opts.sceneName)
	}
	logger.Printf("Scene %s: %d blocks\n", s.Name, s.Store.Len())

	eng, err := engine.NewEngine(s, config, logger)
	if err != nil {
		return stats, err
	}

	frameTime := time.Second / time.Duration(opts.fps)
	focused := false
	for i := 1; i <= opts.frames; i++ {
		in := engine.FrameInput{
			Elapsed: time.Duration(i) * frameTime,
			Delta:   frameTime,
		}
		frame := eng.Step(in)
		stats.Add(frame)

		if frame.TransitionFinished {
			logger.Printf("Frame %d: camera at %v facing %v\n", frame.Frame, frame.Pose.Position, frame.Pose.Direction())
			break
		}
		if !focused && frame.Selected {
			if err := eng.FocusSelection(in.Elapsed); err != nil {
				return stats, err
			}
			focused = true
		}
		if !focused && i == 1 {
			logger.Printf("Nothing under the crosshair from %v\n", frame.Pose.Position)
		}
	}

	if opts.exportPath != "" {
		if err := export(eng, opts.exportPath); err != nil {
			return stats, err
		}
		logger.Printf("Scene exported to %s\n", opts.exportPath)
	}
	return stats, nil
}

func export(eng *engine.Engine, path string) error {
	meshes, err := eng.Scene().Meshes()
	if err != nil {
		return err
	}
	if pick, ok := eng.Selection(); ok {
		if wire, ok := eng.Scene().SelectionMesh(pick.Entity); ok {
			meshes = append(meshes, wire)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create export directory")
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create export file")
	}
	defer file.Close()

	binary := !strings.EqualFold(filepath.Ext(path), ".gltf")
	return loaders.ExportGLTF(file, meshes, binary)
}
