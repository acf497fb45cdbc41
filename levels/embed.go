package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidDimensions = errors.New("level: invalid dimensions")

// Entity is a placement record in a level file.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// LoadLevelFromFS loads an embedded level by file name.
func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, normalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", name, err)
	}
	return Parse(data)
}

// LoadLevel reads a level from disk, falling back to the embedded copy.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadLevelFromFS(path)
	}
	return Parse(data)
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	if err := lvl.build(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func normalizeName(name string) string {
	name = strings.TrimPrefix(name, "levels/")
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
