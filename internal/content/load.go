package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Table file names recognized inside a content directory. Every file is
// optional; entries overlay the compiled-in defaults by id.
const (
	championsFile = "champions.yaml"
	abilitiesFile = "abilities.yaml"
	passivesFile  = "passives.yaml"
	itemsFile     = "items.yaml"
	unitsFile     = "units.yaml"
	mapsFile      = "maps.yaml"
	constantsFile = "constants.yaml"
)

type championsDoc struct {
	Champions []*ChampionDef `yaml:"champions"`
}

type abilitiesDoc struct {
	Abilities []*AbilityDef `yaml:"abilities"`
}

type passivesDoc struct {
	Passives []*PassiveDef `yaml:"passives"`
}

type itemsDoc struct {
	Items []*ItemDef `yaml:"items"`
}

type unitsDoc struct {
	Units []*UnitDef `yaml:"units"`
}

type mapsDoc struct {
	Maps []*MapDef `yaml:"maps"`
}

// Load builds the registry from the compiled-in defaults plus any YAML tables
// found in dir. An empty dir returns the defaults. The caller must Validate
// the result before use.
func Load(dir string) (*Registry, error) {
	r := Default()
	if dir == "" {
		return r, nil
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("content dir %s does not exist", dir)
		}
		return nil, fmt.Errorf("content dir %s: %w", dir, err)
	}

	if err := loadTable(dir, championsFile, func(data []byte) error {
		var doc championsDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		for _, c := range doc.Champions {
			r.Champions[c.ID] = c
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadTable(dir, abilitiesFile, func(data []byte) error {
		var doc abilitiesDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		for _, a := range doc.Abilities {
			r.Abilities[a.ID] = a
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadTable(dir, passivesFile, func(data []byte) error {
		var doc passivesDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		for _, p := range doc.Passives {
			r.Passives[p.ID] = p
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadTable(dir, itemsFile, func(data []byte) error {
		var doc itemsDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		for _, i := range doc.Items {
			r.Items[i.ID] = i
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadTable(dir, unitsFile, func(data []byte) error {
		var doc unitsDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		for _, u := range doc.Units {
			r.Units[u.ID] = u
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadTable(dir, mapsFile, func(data []byte) error {
		var doc mapsDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		for _, m := range doc.Maps {
			r.Maps[m.ID] = m
		}
		return nil
	}); err != nil {
		return nil, err
	}

	// Constants overlay field-wise: absent keys keep their defaults.
	if err := loadTable(dir, constantsFile, func(data []byte) error {
		return yaml.Unmarshal(data, &r.Constants)
	}); err != nil {
		return nil, err
	}

	return r, nil
}

func loadTable(dir, name string, apply func([]byte) error) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := apply(data); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
