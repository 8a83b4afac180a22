package scene

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("kind", string(KindFixed))
	v.SetDefault("anchor", "center")
}

// Load reads a scene file. The format follows the file extension
// (.yaml, .yml, .json, .toml).
func Load(path string) (*Scene, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse reads a scene from data in the given format ("yaml", "json", "toml").
func Parse(data []byte, format string) (*Scene, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Scene, error) {
	var s Scene
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
