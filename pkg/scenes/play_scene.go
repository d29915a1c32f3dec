package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blockpuzzle/pkg/game"
	"github.com/decker502/blockpuzzle/pkg/utils"
)

// PlayScene 棋盘场景
//
// 玩家把当前形状从棋盘内拖到目标位置释放，释放点所在格子即锚点。
// 终局时切换到 GameOverScene。
type PlayScene struct {
	session      *game.Session
	sceneManager *SceneManager
	renderer     *Renderer
	drag         *utils.DragTracker
	input        *PointerInput
}

// NewPlayScene 创建棋盘场景
//
// 参数：
//   - session: 本局会话
//   - sceneManager: 场景管理器，终局时用于切换场景
//   - renderer: 共用绘制资源
func NewPlayScene(session *game.Session, sceneManager *SceneManager, renderer *Renderer) *PlayScene {
	s := &PlayScene{
		session:      session,
		sceneManager: sceneManager,
		renderer:     renderer,
		drag:         utils.NewDragTracker(renderer.Layout),
		input:        NewPointerInput(),
	}
	session.SetGameOverHandler(s.onGameOver)
	return s
}

// Update 读取指针输入并处理放置
func (s *PlayScene) Update(deltaTime float64) {
	s.HandlePointer(s.input.Poll())
}

// HandlePointer 处理一帧指针输入，释放时发起一次放置尝试
func (s *PlayScene) HandlePointer(frame PointerFrame) {
	if !s.session.Running() {
		return
	}

	row, col, released := frame.Apply(s.drag)
	if !released {
		return
	}

	out := s.session.Attempt(row, col)
	if out.SaveErr != nil {
		log.Printf("[PlayScene] Warning: high score not saved: %v", out.SaveErr)
	}
}

// onGameOver 会话终局回调
func (s *PlayScene) onGameOver(summary game.Summary) {
	s.drag.Reset()
	log.Printf("[PlayScene] Switching to game over scene (score=%d)", summary.Score)
	s.sceneManager.SwitchTo(NewGameOverScene(summary, s.sceneManager, s.renderer))
}

// Draw 绘制棋盘、拖拽预览、侧边栏预览和分数
func (s *PlayScene) Draw(screen *ebiten.Image) {
	ctx := s.renderer.Begin(screen)
	cfg := ctx.Config

	ctx.DrawBoard(s.session.Board())

	if row, col, ok := s.drag.Hover(); ok {
		ctx.DrawDragPreview(s.session.Shape(), s.session.Color(), row, col)
	}

	ctx.DrawNextBlock(s.session.Shape(), s.session.Color())

	x, y := cfg.ScoreLabelPos()
	ctx.DrawText(fmt.Sprintf("Score: %d", s.session.Score()), x, y)
	x, y = cfg.HighScoreLabelPos()
	ctx.DrawText(fmt.Sprintf("High Score: %d", s.session.HighScore()), x, y)
}

// Session 返回本局会话
func (s *PlayScene) Session() *game.Session {
	return s.session
}
