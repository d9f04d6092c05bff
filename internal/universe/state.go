package universe

import (
	"encoding/json"
	"os"
	"time"

	"MoveRadar/internal/model"
)

// LoadState reads the cached universe from a JSON file. Returns an empty
// state if the file doesn't exist.
func LoadState(filePath string) (*model.SymbolUniverse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.SymbolUniverse{}, nil
		}
		return nil, err
	}
	var state model.SymbolUniverse
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the cached universe to a JSON file.
func SaveState(filePath string, state *model.SymbolUniverse) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
