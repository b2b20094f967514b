package world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDungeonFile is the top-level YAML structure for dungeon files.
type yamlDungeonFile struct {
	Dungeon yamlDungeon `yaml:"dungeon"`
}

// yamlDungeon is the YAML representation of a dungeon.
type yamlDungeon struct {
	Name  string     `yaml:"name"`
	Rooms []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string       `yaml:"id"`
	Description string       `yaml:"description"`
	Item        string       `yaml:"item"`
	Challenge   string       `yaml:"challenge"`
	Outcome     *yamlOutcome `yaml:"outcome"`
}

// yamlOutcome is the YAML representation of a room outcome.
type yamlOutcome struct {
	Success     string `yaml:"success"`
	Failure     string `yaml:"failure"`
	HealthDelta int    `yaml:"health_delta"`
}

// LoadDungeonFromFile reads a dungeon YAML file.
//
// Precondition: path must point to a valid YAML dungeon file.
// Postcondition: Returns a Dungeon or a non-nil error.
func LoadDungeonFromFile(path string) (*Dungeon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dungeon file %s: %w", path, err)
	}
	return LoadDungeonFromBytes(data)
}

// LoadDungeonFromBytes parses a dungeon from YAML bytes.
//
// Malformed rooms are kept in place so the traversal can report and skip
// them; use Dungeon.Problems to inspect them up front.
//
// Postcondition: Returns a Dungeon with at least one room or a non-nil error.
func LoadDungeonFromBytes(data []byte) (*Dungeon, error) {
	var file yamlDungeonFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing dungeon YAML: %w", err)
	}
	if file.Dungeon.Name == "" {
		return nil, errors.New("validating dungeon: name must not be empty")
	}
	if len(file.Dungeon.Rooms) == 0 {
		return nil, fmt.Errorf("validating dungeon %q: must contain at least one room", file.Dungeon.Name)
	}
	return convertYAMLDungeon(file.Dungeon), nil
}

// convertYAMLDungeon converts the parsed YAML structures into domain types.
func convertYAMLDungeon(yd yamlDungeon) *Dungeon {
	d := &Dungeon{
		Name:  yd.Name,
		Rooms: make([]Room, 0, len(yd.Rooms)),
	}
	for i, yr := range yd.Rooms {
		room := Room{
			ID:          yr.ID,
			Description: yr.Description,
			Item:        yr.Item,
			Challenge:   Challenge(yr.Challenge),
		}
		if room.ID == "" {
			room.ID = fmt.Sprintf("room_%d", i+1)
		}
		if room.Challenge == "" {
			room.Challenge = None
		}
		if yr.Outcome != nil {
			room.Outcome = &Outcome{
				Success:     yr.Outcome.Success,
				Failure:     yr.Outcome.Failure,
				HealthDelta: yr.Outcome.HealthDelta,
			}
		}
		d.Rooms = append(d.Rooms, room)
	}
	return d
}
