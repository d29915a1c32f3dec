// blockpuzzle-term 在终端中运行方块拼图
//
// 与桌面版共用会话逻辑和最高分存储，使用 tcell 绘制。
// 若工作目录下存在 data/config.yaml 则读取，否则使用默认配置。
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/blockpuzzle/pkg/config"
	"github.com/decker502/blockpuzzle/pkg/game"
	"github.com/decker502/blockpuzzle/pkg/shapes"
)

const (
	configPath = "data/config.yaml"
	logPath    = "blockpuzzle-term.log"
)

func main() {
	cfg := loadConfig()

	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if cfg.Verbose {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	store := game.OpenScoreStore(cfg.Storage.AppName, cfg.Storage.Object, cfg.Storage.Property, cfg.Storage.FallbackFile)

	var source shapes.Source
	if cfg.Seed != 0 {
		source = shapes.NewRandomSource(cfg.Seed)
	}
	session := game.NewSession(cfg.Grid.Size, source, store)

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	s.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	s.HideCursor()

	hold := time.Duration(cfg.GameOver.HoldSeconds * float64(time.Second))
	ui := newTermUI(s, session, hold)
	run(s, ui)
	s.Fini()

	if summary, ok := session.Summary(); ok {
		fmt.Printf("Game Over! Your Score: %d  High Score: %d\n", summary.Score, summary.HighScore)
	}
}

// loadConfig 读取工作目录下的配置，失败时使用默认配置
func loadConfig() *config.GameConfig {
	if _, err := os.Stat(configPath); err != nil {
		return config.DefaultGameConfig()
	}
	cfg, err := config.LoadGameConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		return config.DefaultGameConfig()
	}
	return cfg
}

// run 事件循环：后台 goroutine 读取事件，主循环按 30 FPS 重绘
func run(s tcell.Screen, ui *termUI) {
	events := make(chan tcell.Event, 32)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	ui.draw()
	for {
		select {
		case ev := <-events:
			if ui.handleEvent(ev) {
				return
			}
			ui.draw()
		case <-tick.C:
			if ui.done() {
				return
			}
			ui.draw()
		}
	}
}
