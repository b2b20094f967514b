// Package content embeds the built-in dungeon, artifact and clue definitions.
package content

import _ "embed"

// Dungeon is the built-in room sequence.
//
//go:embed dungeon.yaml
var Dungeon []byte

// Artifacts is the built-in artifact registry.
//
//go:embed artifacts.yaml
var Artifacts []byte

// Clues is the built-in library clue pool.
//
//go:embed clues.yaml
var Clues []byte
