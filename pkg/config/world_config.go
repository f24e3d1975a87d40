package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig 世界生成配置
//
// 控制网格尺寸与一次性地形生成的全部概率参数。
//
// 配置文件位置: data/world.yaml
type WorldConfig struct {
	// Width 网格宽度（格）
	Width int `yaml:"width"`
	// Height 网格高度（格）
	Height int `yaml:"height"`

	// GroundRatio 基准地面高度占网格高度的比例（0~1，从顶部算起）
	GroundRatio float64 `yaml:"groundRatio"`
	// WaveAmplitude 地形起伏振幅（格）
	WaveAmplitude float64 `yaml:"waveAmplitude"`
	// WaveFrequency 地形起伏频率（低频正弦，对 x 取值）
	WaveFrequency float64 `yaml:"waveFrequency"`

	// StoneDepth 距地表多少格以下才可能出现石头
	StoneDepth int `yaml:"stoneDepth"`
	// StoneChance 足够深时单格替换为石头的概率
	StoneChance float64 `yaml:"stoneChance"`

	// PlantChance 合格柱顶生成植物堆的概率
	PlantChance float64 `yaml:"plantChance"`
	// PlantMaxHeight 植物堆最大高度（1~该值，格）
	PlantMaxHeight int `yaml:"plantMaxHeight"`

	// Platforms 浮空平台（草皮盖顶的泥土矩形）配置
	Platforms DecorationConfig `yaml:"platforms"`
	// Pillars 垂直石柱配置
	Pillars DecorationConfig `yaml:"pillars"`
}

// DecorationConfig 可选装饰物的数量与尺寸范围
type DecorationConfig struct {
	Count   int `yaml:"count"`   // 尝试放置的数量，0 表示关闭
	MinSize int `yaml:"minSize"` // 最小尺寸（平台为宽度，石柱为高度）
	MaxSize int `yaml:"maxSize"` // 最大尺寸
}

// DefaultWorldConfig 返回默认世界配置
func DefaultWorldConfig() *WorldConfig {
	return &WorldConfig{
		Width:          GameWindowWidth / CellPixels,
		Height:         GameWindowHeight / CellPixels,
		GroundRatio:    0.6,
		WaveAmplitude:  8,
		WaveFrequency:  0.05,
		StoneDepth:     6,
		StoneChance:    0.4,
		PlantChance:    0.06,
		PlantMaxHeight: 3,
		Platforms:      DecorationConfig{Count: 4, MinSize: 6, MaxSize: 14},
		Pillars:        DecorationConfig{Count: 3, MinSize: 4, MaxSize: 10},
	}
}

// LoadWorldConfig 加载世界生成配置
//
// 参数:
//   - path: 配置文件路径（如 "data/world.yaml"）
//
// 返回:
//   - *WorldConfig: 加载成功后的配置结构
//   - error: 加载或校验失败时返回错误
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config: %w", err)
	}

	cfg := DefaultWorldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置有效性
//
// 返回:
//   - error: 校验失败时返回错误，成功返回 nil
func (c *WorldConfig) Validate() error {
	if c.Width < 20 || c.Height < 20 {
		return fmt.Errorf("grid size too small: %dx%d (min 20x20)", c.Width, c.Height)
	}
	if c.GroundRatio <= 0 || c.GroundRatio >= 1 {
		return fmt.Errorf("groundRatio must be in (0,1), got %.2f", c.GroundRatio)
	}
	if c.WaveAmplitude < 0 {
		return fmt.Errorf("waveAmplitude must not be negative, got %.2f", c.WaveAmplitude)
	}
	if c.StoneChance < 0 || c.StoneChance > 1 {
		return fmt.Errorf("stoneChance must be in [0,1], got %.2f", c.StoneChance)
	}
	if c.PlantChance < 0 || c.PlantChance > 1 {
		return fmt.Errorf("plantChance must be in [0,1], got %.2f", c.PlantChance)
	}
	if c.PlantMaxHeight < 1 {
		return fmt.Errorf("plantMaxHeight must be >= 1, got %d", c.PlantMaxHeight)
	}
	for name, d := range map[string]DecorationConfig{"platforms": c.Platforms, "pillars": c.Pillars} {
		if d.Count > 0 && (d.MinSize < 1 || d.MinSize > d.MaxSize) {
			return fmt.Errorf("%s size range invalid: min(%d) > max(%d)", name, d.MinSize, d.MaxSize)
		}
	}
	return nil
}
