package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings — настройки запуска фронтендов. Характеристики юнитов и оружия
// сюда не входят, это константы выше.
type Settings struct {
	Seed        int64   `yaml:"seed"`         // 0 - сид от текущего времени
	Weapon      string  `yaml:"weapon"`       // оружие, выбранное по умолчанию на экране снаряжения
	SkipLoadout bool    `yaml:"skip_loadout"` // сразу начинать бой
	Audio       bool    `yaml:"audio"`
	WindowScale float64 `yaml:"window_scale"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Seed:        0,
		Weapon:      "",
		SkipLoadout: false,
		Audio:       true,
		WindowScale: 1.0,
	}
}

// LoadSettings читает YAML-файл настроек. Отсутствующий файл не ошибка:
// возвращаются значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1.0
	}
	return s, nil
}
