package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blockpuzzle/pkg/config"
	"github.com/decker502/blockpuzzle/pkg/game"
)

// GameOverScene 终局场景
// 显示本局分数和最高分，停留 GameOver.HoldSeconds 秒后请求退出
type GameOverScene struct {
	summary      game.Summary
	sceneManager *SceneManager
	renderer     *Renderer
	hold         float64
	elapsed      float64
	quit         bool
}

// NewGameOverScene 创建终局场景
func NewGameOverScene(summary game.Summary, sceneManager *SceneManager, renderer *Renderer) *GameOverScene {
	return &GameOverScene{
		summary:      summary,
		sceneManager: sceneManager,
		renderer:     renderer,
		hold:         renderer.Config.GameOver.HoldSeconds,
	}
}

// Update 累计停留时间，到时请求退出
func (s *GameOverScene) Update(deltaTime float64) {
	if s.quit {
		return
	}
	s.elapsed += deltaTime
	if s.elapsed >= s.hold {
		s.quit = true
		log.Printf("[GameOverScene] Hold time %.1fs elapsed, quitting", s.hold)
		s.sceneManager.RequestQuit()
	}
}

// Draw 绘制终局画面
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	ctx := s.renderer.Begin(screen)
	ctx.DrawCenteredText("Game Over!", config.GameOverTitleY, true)
	ctx.DrawCenteredText(fmt.Sprintf("Your Score: %d", s.summary.Score), config.GameOverScoreY, false)
	ctx.DrawCenteredText(fmt.Sprintf("High Score: %d", s.summary.HighScore), config.GameOverHighScoreY, false)
}

// Summary 返回终局总结
func (s *GameOverScene) Summary() game.Summary {
	return s.summary
}

// Elapsed 返回已停留时间（秒）
func (s *GameOverScene) Elapsed() float64 {
	return s.elapsed
}
