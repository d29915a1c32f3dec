package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blockpuzzle/pkg/app"
	"github.com/decker502/blockpuzzle/pkg/embedded"
)

func main() {
	// 初始化嵌入资源（必须在任何配置加载之前）
	embedded.Init(dataFS)

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game, err := app.NewApp(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(30)

	// 终局画面停留结束后 Update 返回 ebiten.Termination，RunGame 返回 nil
	if err := ebiten.RunGame(game); err != nil {
		// 非 verbose 模式下 NewApp 已关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
