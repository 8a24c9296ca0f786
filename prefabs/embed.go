package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where on-disk overrides are looked up. Files found there win over
// the embedded copies so edits show up without a rebuild.
var Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

// ScriptPath normalizes a script reference to its "scripts/<file>" form.
func ScriptPath(name string) string {
	return cleanScriptPath(name)
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	s = strings.TrimPrefix(s, "scripts/")
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
