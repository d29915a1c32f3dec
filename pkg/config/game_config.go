package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏配置数据结构
// 对应 data/config.yaml，缺省字段使用 layout_config.go 中的常量
type GameConfig struct {
	Grid     GridConfig     `yaml:"grid"`     // 棋盘配置
	Window   WindowConfig   `yaml:"window"`   // 窗口配置
	Sidebar  SidebarConfig  `yaml:"sidebar"`  // "下一个方块"预览配置
	GameOver GameOverConfig `yaml:"gameOver"` // 终局画面配置
	Storage  StorageConfig  `yaml:"storage"`  // 最高分存储配置
	Verbose  bool           `yaml:"verbose"`  // 是否输出日志，默认 false
	Seed     uint64         `yaml:"seed"`     // 随机种子，0 表示使用进程级随机源
}

// GridConfig 棋盘配置
type GridConfig struct {
	Size     int `yaml:"size"`     // 棋盘边长（格子数），默认 10
	CellSize int `yaml:"cellSize"` // 格子边长（像素），默认 50
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 默认 800
	Height int    `yaml:"height"` // 默认 700
	Title  string `yaml:"title"`  // 默认 "Block Puzzle Game"
}

// SidebarConfig 预览区配置
type SidebarConfig struct {
	MarginX  int `yaml:"marginX"`  // 预览区距棋盘右边缘的距离，默认 20
	OffsetY  int `yaml:"offsetY"`  // 预览区起点 Y，默认 50
	LabelGap int `yaml:"labelGap"` // 标签在预览区上方的距离，默认 30
}

// GameOverConfig 终局画面配置
type GameOverConfig struct {
	HoldSeconds float64 `yaml:"holdSeconds"` // 终局画面停留秒数，默认 3；显式写 0 表示立即退出
}

// StorageConfig 最高分存储配置
type StorageConfig struct {
	AppName      string `yaml:"appName"`      // gdata 应用名，默认 "blockpuzzle"
	Object       string `yaml:"object"`       // gdata 对象名，默认 "scores"
	Property     string `yaml:"property"`     // gdata 属性名，默认 "high_score"
	FallbackFile string `yaml:"fallbackFile"` // gdata 不可用时的纯文本文件，默认 "high_score.txt"
}

// DefaultGameConfig 返回全部使用默认值的配置
func DefaultGameConfig() *GameConfig {
	cfg := newGameConfig()
	applyDefaults(cfg)
	return cfg
}

// newGameConfig 返回预填了"零值有意义"字段默认值的配置
//
// 这些字段不能在解析后按零值补默认值，否则无法配置为 0；
// 解码前预填，YAML 中缺省的键会保留预填值。
func newGameConfig() *GameConfig {
	return &GameConfig{
		GameOver: GameOverConfig{HoldSeconds: GameOverHoldSeconds},
	}
}

// LoadGameConfig 从YAML文件加载游戏配置
// 参数：
//
//	path - 配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*GameConfig - 解析后的配置对象（已应用默认值）
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 从YAML数据解析游戏配置
// 用于嵌入资源（embedded.ReadFile 读取的数据）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := newGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// applyDefaults 为 GameConfig 中缺失的可选字段设置默认值
func applyDefaults(cfg *GameConfig) {
	if cfg.Grid.Size == 0 {
		cfg.Grid.Size = GridSize
	}
	if cfg.Grid.CellSize == 0 {
		cfg.Grid.CellSize = CellSize
	}

	if cfg.Window.Width == 0 {
		cfg.Window.Width = ScreenWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = ScreenHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = WindowTitle
	}

	if cfg.Sidebar.MarginX == 0 {
		cfg.Sidebar.MarginX = PreviewMarginX
	}
	if cfg.Sidebar.OffsetY == 0 {
		cfg.Sidebar.OffsetY = PreviewOffsetY
	}
	if cfg.Sidebar.LabelGap == 0 {
		cfg.Sidebar.LabelGap = PreviewLabelGap
	}

	if cfg.Storage.AppName == "" {
		cfg.Storage.AppName = "blockpuzzle"
	}
	if cfg.Storage.Object == "" {
		cfg.Storage.Object = "scores"
	}
	if cfg.Storage.Property == "" {
		cfg.Storage.Property = "high_score"
	}
	if cfg.Storage.FallbackFile == "" {
		cfg.Storage.FallbackFile = "high_score.txt"
	}

	// Verbose 默认为 false（bool 零值），Seed 默认为 0，无需处理
}

// validateGameConfig 验证游戏配置的合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Grid.Size < 1 {
		return fmt.Errorf("grid size must be positive, got %d", cfg.Grid.Size)
	}
	if cfg.Grid.CellSize < 2 {
		return fmt.Errorf("cell size must be at least 2, got %d", cfg.Grid.CellSize)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	side := cfg.Grid.Size * cfg.Grid.CellSize
	if side > cfg.Window.Width || side > cfg.Window.Height {
		return fmt.Errorf("grid (%dpx) does not fit window %dx%d", side, cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.Sidebar.MarginX < 0 || cfg.Sidebar.OffsetY < 0 || cfg.Sidebar.LabelGap < 0 {
		return fmt.Errorf("sidebar offsets cannot be negative")
	}

	if cfg.GameOver.HoldSeconds < 0 {
		return fmt.Errorf("gameOver holdSeconds cannot be negative, got %v", cfg.GameOver.HoldSeconds)
	}

	if cfg.Storage.Object == "" || cfg.Storage.Property == "" {
		return fmt.Errorf("storage object and property are required")
	}
	return nil
}

// GridPixels 返回棋盘边长（像素）
func (c *GameConfig) GridPixels() int {
	return c.Grid.Size * c.Grid.CellSize
}

// PreviewOrigin 返回"下一个方块"预览区起点
func (c *GameConfig) PreviewOrigin() (x, y int) {
	return c.GridPixels() + c.Sidebar.MarginX, c.Sidebar.OffsetY
}

// ScoreLabelPos 返回当前分数标签位置
func (c *GameConfig) ScoreLabelPos() (x, y int) {
	return ScoreLabelX, c.GridPixels() + LabelGapBelowGrid
}

// HighScoreLabelPos 返回最高分标签位置
func (c *GameConfig) HighScoreLabelPos() (x, y int) {
	return c.Window.Width - HighScoreRightInset, c.GridPixels() + LabelGapBelowGrid
}
