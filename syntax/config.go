package syntax

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads keyword sets from a YAML file. Sets absent from the file
// keep their default words, so a file can replace a single class without
// restating the others. The loaded configuration is validated before it is
// returned; a bad file never reaches Compile.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
