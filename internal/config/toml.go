package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// TOMLParser adapts BurntSushi/toml to the koanf.Parser interface.
type TOMLParser struct{}

// TOML returns a koanf parser for TOML config files.
func TOML() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) Unmarshal(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *TOMLParser) Marshal(m map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
