//go:build ignore

// 校验游戏配置文件
//
// 用法：go run tools/validate_config.go [data/config.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/decker502/blockpuzzle/pkg/config"
)

func main() {
	path := "data/config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确: %s\n", path)
	fmt.Printf("✅ 棋盘: %dx%d, 格子 %dpx\n", cfg.Grid.Size, cfg.Grid.Size, cfg.Grid.CellSize)
	fmt.Printf("✅ 窗口: %dx%d %q\n", cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	fmt.Printf("✅ 最高分存储: %s/%s.%s (回退文件 %s)\n",
		cfg.Storage.AppName, cfg.Storage.Object, cfg.Storage.Property, cfg.Storage.FallbackFile)
	if cfg.Seed != 0 {
		fmt.Printf("✅ 固定随机种子: %d\n", cfg.Seed)
	}
}
