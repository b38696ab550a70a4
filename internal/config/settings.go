package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed settings.schema.json
var schemaJSON string

var settingsSchema = jsonschema.MustCompileString("settings.schema.json", schemaJSON)

// Settings is the user-editable configuration of the placement controller.
// Density values are descriptors such as "Medium"; they are checked when
// applied, not here.
type Settings struct {
	Dataset             string        `yaml:"dataset"`
	SpawnDelay          time.Duration `yaml:"spawn_delay"`
	TreeDensity         string        `yaml:"tree_density"`
	GroundcoverDensity  string        `yaml:"groundcover_density"`
	WorldScene          string        `yaml:"world_scene"`
	Anchor              string        `yaml:"anchor"`
	TreeTemplate        string        `yaml:"tree_template"`
	GroundcoverTemplate string        `yaml:"groundcover_template"`
	HomeRegion          string        `yaml:"home_region"`
	SourceRegion        string        `yaml:"source_region"`
	Seed                int64         `yaml:"seed"`
}

// Defaults returns the stock configuration.
func Defaults() Settings {
	return Settings{
		Dataset:             "Assets/treeSpawnData.json",
		SpawnDelay:          3 * time.Second,
		TreeDensity:         "Medium",
		GroundcoverDensity:  "Medium",
		WorldScene:          "SolarSystem",
		Anchor:              "TimberHearth_Body",
		TreeTemplate:        "QuantumMoon_Body/Sector_QuantumMoon/State_TH/Interactables_THState/Crater_Surface/Surface_AlpineTrees_Single/QAlpine_Tree_.25 (1)/",
		GroundcoverTemplate: "TimberHearth_Body/Sector_TH/Sector_Village/Sector_LowerVillage/DetailPatches_LowerVillage/LandingGeyserVillageArea/Foliage_TH_GrassPatch (10)/",
		HomeRegion:          "TimberHearth",
		SourceRegion:        "QuantumMoon",
	}
}

// Load reads a YAML settings file over the defaults. An empty path returns
// the defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Defaults(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := Parse(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates a YAML document against the settings schema and decodes it
// over the defaults.
func Parse(raw []byte) (Settings, error) {
	if err := validate(raw); err != nil {
		return Settings{}, err
	}
	s := Defaults()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("could not decode settings: %w", err)
	}
	if s.SpawnDelay < 0 {
		return Settings{}, fmt.Errorf("spawn_delay must not be negative, got %v", s.SpawnDelay)
	}
	return s, nil
}

// validate checks the document shape. The YAML tree is normalised through
// JSON so the validator only sees JSON value types.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("could not decode settings: %w", err)
	}
	if doc == nil {
		return nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("settings are not representable as JSON: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var normalised any
	if err := dec.Decode(&normalised); err != nil {
		return err
	}
	if err := settingsSchema.Validate(normalised); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Marshal encodes settings as YAML, the inverse of Parse.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}
