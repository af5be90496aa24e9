// Where: apkbuild/internal/infra/config/presets.go
// What: Recognized wrapper-script build presets.
// Why: Offer named goal/artifact combinations instead of free-form edits for common builds.
package config

import "sort"

// DefaultPresetName is applied when a config does not name a preset.
const DefaultPresetName = "android-debug"

// Preset is a named build convention. An empty Wrapper means the platform's
// default Gradle wrapper.
type Preset struct {
	Name         string
	Description  string
	Wrapper      string
	Goal         string
	ArtifactDir  string
	ArtifactName string
	ProjectKind  string
}

var presets = map[string]Preset{
	"android-debug": {
		Name:         "android-debug",
		Description:  "Debug APK via gradlew assembleDebug",
		Goal:         "assembleDebug",
		ArtifactDir:  "app/build/outputs/apk/debug/",
		ArtifactName: "APK",
		ProjectKind:  "Android",
	},
	"android-release": {
		Name:         "android-release",
		Description:  "Release APK via gradlew assembleRelease",
		Goal:         "assembleRelease",
		ArtifactDir:  "app/build/outputs/apk/release/",
		ArtifactName: "APK",
		ProjectKind:  "Android",
	},
	"android-bundle": {
		Name:         "android-bundle",
		Description:  "Debug App Bundle via gradlew bundleDebug",
		Goal:         "bundleDebug",
		ArtifactDir:  "app/build/outputs/bundle/debug/",
		ArtifactName: "AAB",
		ProjectKind:  "Android",
	},
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	preset, ok := presets[name]
	return preset, ok
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, preset := range presets {
		out = append(out, preset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresetNames returns the sorted preset names.
func PresetNames() []string {
	list := Presets()
	names := make([]string, len(list))
	for i, preset := range list {
		names[i] = preset.Name
	}
	return names
}
