package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора текстур.

type Config struct {
	Output OutputConfig `yaml:"output"`
	Noise  NoiseConfig  `yaml:"noise"`
}

type OutputConfig struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type NoiseConfig struct {
	Preset    string  `yaml:"preset"`
	Seed      uint32  `yaml:"seed"`
	Frequency float64 `yaml:"frequency"`
	Layers    int     `yaml:"layers"`
}

// GetPath возвращает путь выходного файла с поддержкой fallback значений
func (o *OutputConfig) GetPath() string {
	if o.Path != "" {
		return o.Path
	}
	if envVal := os.Getenv("NOISEGEN_OUTPUT"); envVal != "" {
		return envVal
	}
	return "noise.png"
}

// GetWidth возвращает ширину изображения с поддержкой fallback значений
func (o *OutputConfig) GetWidth() int {
	return getIntWithEnvFallback(o.Width, "NOISEGEN_WIDTH", 512)
}

// GetHeight возвращает высоту изображения с поддержкой fallback значений
func (o *OutputConfig) GetHeight() int {
	return getIntWithEnvFallback(o.Height, "NOISEGEN_HEIGHT", 512)
}

// GetPreset возвращает имя пресета с поддержкой fallback значений
func (n *NoiseConfig) GetPreset() string {
	if n.Preset != "" {
		return n.Preset
	}
	if envVal := os.Getenv("NOISEGEN_PRESET"); envVal != "" {
		return envVal
	}
	return "perlin"
}

// GetSeed возвращает сид генератора с поддержкой fallback значений
func (n *NoiseConfig) GetSeed() uint32 {
	if n.Seed > 0 {
		return n.Seed
	}
	if envVal := os.Getenv("NOISEGEN_SEED"); envVal != "" {
		if seed, err := strconv.ParseUint(envVal, 10, 32); err == nil {
			return uint32(seed)
		}
	}
	return 0
}

// GetFrequency возвращает базовую частоту; по умолчанию 1.0
func (n *NoiseConfig) GetFrequency() float64 {
	if n.Frequency > 0 {
		return n.Frequency
	}
	return 1.0
}

// GetLayers возвращает число слоёв фрактальных пресетов; по умолчанию 6
func (n *NoiseConfig) GetLayers() int {
	return getIntWithEnvFallback(n.Layers, "NOISEGEN_LAYERS", 6)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configValue > 0 {
		return configValue
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultValue
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV NOISEGEN_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("NOISEGEN_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации: %w", err)
	}

	return &cfg, nil
}
