package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"riftlane/server/internal/content"
)

// Document shapes mirrored from the content loader so designers get a
// machine-readable schema per YAML file for validation and editor tooling.
type ChampionsDoc struct {
	Champions []*content.ChampionDef `json:"champions" jsonschema:"description=Playable champion definitions"`
}

type AbilitiesDoc struct {
	Abilities []*content.AbilityDef `json:"abilities" jsonschema:"description=Ability definitions referenced by champion kits"`
}

type PassivesDoc struct {
	Passives []*content.PassiveDef `json:"passives" jsonschema:"description=Champion passive definitions"`
}

type ItemsDoc struct {
	Items []*content.ItemDef `json:"items" jsonschema:"description=Purchasable item definitions"`
}

type UnitsDoc struct {
	Units []*content.UnitDef `json:"units" jsonschema:"description=Minion and neutral unit definitions"`
}

type MapsDoc struct {
	Maps []*content.MapDef `json:"maps" jsonschema:"description=Map layouts with lanes, structures, and terrain"`
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for name, schema := range buildSchemas() {
		if err := writeSchema(filepath.Join(outDir, name+".schema.json"), schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s schema: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func buildSchemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	describe := func(target any, title, description string) *jsonschema.Schema {
		schema := reflector.Reflect(target)
		schema.Title = title
		schema.Description = description
		return schema
	}
	return map[string]*jsonschema.Schema{
		"champions": describe(new(ChampionsDoc), "Riftlane Champions", "Validates champions.yaml in the content directory"),
		"abilities": describe(new(AbilitiesDoc), "Riftlane Abilities", "Validates abilities.yaml in the content directory"),
		"passives":  describe(new(PassivesDoc), "Riftlane Passives", "Validates passives.yaml in the content directory"),
		"items":     describe(new(ItemsDoc), "Riftlane Items", "Validates items.yaml in the content directory"),
		"units":     describe(new(UnitsDoc), "Riftlane Units", "Validates units.yaml in the content directory"),
		"maps":      describe(new(MapsDoc), "Riftlane Maps", "Validates maps.yaml in the content directory"),
		"constants": describe(new(content.Constants), "Riftlane Constants", "Validates constants.yaml in the content directory"),
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
