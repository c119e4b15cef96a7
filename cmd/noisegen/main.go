package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/annel0/noise-gen/internal/config"
	"github.com/annel0/noise-gen/internal/logging"
	"github.com/annel0/noise-gen/internal/presets"
	"github.com/annel0/noise-gen/render"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML-конфигурации")
	preset := flag.String("preset", "", "имя пресета (перекрывает конфиг)")
	seed := flag.Uint("seed", 0, "сид генератора (перекрывает конфиг)")
	output := flag.String("out", "", "путь выходного PNG (перекрывает конфиг)")
	terrainColors := flag.Bool("terrain-colors", false, "палитра высот вместо градаций серого")
	listPresets := flag.Bool("list", false, "показать доступные пресеты и выйти")
	flag.Parse()

	if *listPresets {
		fmt.Println("Доступные пресеты:", strings.Join(presets.Names(), ", "))
		return
	}

	// Инициализируем систему логирования
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()
	logger := logging.GetComponentLogger("noisegen")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	// Флаги перекрывают конфиг
	if *preset != "" {
		cfg.Noise.Preset = *preset
	}
	if *seed != 0 {
		cfg.Noise.Seed = uint32(*seed)
	}
	if *output != "" {
		cfg.Output.Path = *output
	}

	name := cfg.Noise.GetPreset()
	width := cfg.Output.GetWidth()
	height := cfg.Output.GetHeight()
	path := cfg.Output.GetPath()

	logger.Info("🎨 Генерация текстуры: пресет=%s, сид=%d, %dx%d",
		name, cfg.Noise.GetSeed(), width, height)

	source, err := presets.Build(name, presets.Params{
		Seed:      cfg.Noise.GetSeed(),
		Frequency: cfg.Noise.GetFrequency(),
		Layers:    cfg.Noise.GetLayers(),
	})
	if err != nil {
		logger.Error("Ошибка сборки пресета: %v", err)
		log.Fatalf("❌ %v", err)
	}

	logger.RenderStart(name, width, height)
	started := time.Now()

	noiseMap := render.NewPlaneMapBuilder(source).
		WithSize(width, height).
		WithBounds(-2.0, 2.0, -2.0, 2.0).
		Build()

	renderer := render.NewImageRenderer()
	if *terrainColors {
		renderer = renderer.WithGradient(render.NewTerrainGradient())
	}
	if err := renderer.WritePNG(path, noiseMap); err != nil {
		logger.Error("Ошибка записи изображения: %v", err)
		log.Fatalf("❌ Ошибка записи изображения: %v", err)
	}

	logger.RenderDone(path, time.Since(started))
	fmt.Printf("✅ %s записан (%dx%d, пресет %s)\n", path, width, height, name)
}
