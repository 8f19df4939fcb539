package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-voxel-core/pkg/core"
	"github.com/df07/go-voxel-core/pkg/loaders"
	"github.com/pkg/errors"
)

// ErrUnknownScene is returned by CreateScene for names that are neither built-in nor a file
var ErrUnknownScene = errors.New("unknown scene")

const builtInGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `yaml:"id"`          // Unique identifier
	Name        string `yaml:"name"`        // Scene name
	DisplayName string `yaml:"displayName"` // Display name
	Description string `yaml:"description"` // Optional description
	Group       string `yaml:"group"`       // Grouping category
	Type        string `yaml:"type"`        // "builtin" or "yaml"
	FilePath    string `yaml:"filePath"`    // Path to scene file (yaml type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `yaml:"name"`
	Scenes []SceneInfo `yaml:"scenes"`
}

var builtIns = map[string]func() *loaders.SceneFile{
	"flat":    NewFlatScene,
	"pyramid": NewPyramidScene,
	"pillars": NewPillarsScene,
}

// ListBuiltInScenes returns the built-in scenes sorted by id
func ListBuiltInScenes() []SceneInfo {
	var scenes []SceneInfo
	for id, create := range builtIns {
		f := create()
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        f.Name,
			DisplayName: titleCase(f.Name),
			Description: f.Description,
			Group:       builtInGroup,
			Type:        "builtin",
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ListYAMLScenes scans dir for scene files. A missing directory yields an empty list.
func ListYAMLScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan scenes directory")
		}
		files = append(files, matches...)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Skip broken files but keep going
			logger.Printf("Warning: failed to read scene %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseSceneMetadata loads a scene file and describes it. The name falls back to the
// file name when the file does not set one.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:          "yaml:" + base,
		Name:        titleCase(base),
		DisplayName: titleCase(base),
		Group:       "Scene Files",
		Type:        "yaml",
		FilePath:    filePath,
	}

	f, err := loaders.LoadSceneFile(filePath)
	if err != nil {
		return info, err
	}
	if f.Name != "" {
		info.Name = f.Name
		info.DisplayName = titleCase(f.Name)
	}
	info.Description = f.Description
	return info, nil
}

// ListAllScenes returns built-in scenes first, then the scene files found in dir
func ListAllScenes(dir string, logger core.Logger) ([]SceneGroup, error) {
	groups := []SceneGroup{{Name: builtInGroup, Scenes: ListBuiltInScenes()}}

	files, err := ListYAMLScenes(dir, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scene files")
	}
	if len(files) > 0 {
		groups = append(groups, SceneGroup{Name: files[0].Group, Scenes: files})
	}
	return groups, nil
}

// CreateScene builds a built-in scene by id, or loads a scene file when nameOrPath ends
// in .yaml or .yml
func CreateScene(nameOrPath string, logger core.Logger) (*Scene, error) {
	var f *loaders.SceneFile
	switch ext := strings.ToLower(filepath.Ext(nameOrPath)); {
	case ext == ".yaml" || ext == ".yml":
		loaded, err := loaders.LoadSceneFile(nameOrPath)
		if err != nil {
			return nil, err
		}
		f = loaded
	default:
		create, ok := builtIns[nameOrPath]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownScene, "%q", nameOrPath)
		}
		f = create()
	}

	s, err := FromFile(f)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		s.SetLogger(logger)
	}
	return s, nil
}

// titleCase converts a filename-style string to title case
// e.g., "stone-steps" -> "Stone Steps"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
