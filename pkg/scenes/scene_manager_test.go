package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene 记录调用情况的场景
type recordingScene struct {
	updates   int
	draws     int
	lastDelta float64
}

func (r *recordingScene) Update(deltaTime float64) {
	r.updates++
	r.lastDelta = deltaTime
}

func (r *recordingScene) Draw(*ebiten.Image) {
	r.draws++
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("expected no active scene initially")
	}
	if sm.QuitRequested() {
		t.Error("expected no quit request initially")
	}
}

func TestSceneManagerForwardsUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	scene := &recordingScene{}
	sm.SwitchTo(scene)

	sm.Update(1.0 / 30.0)
	sm.Draw(nil)

	if scene.updates != 1 || scene.draws != 1 {
		t.Errorf("expected 1 update and 1 draw, got %d and %d", scene.updates, scene.draws)
	}
	if scene.lastDelta != 1.0/30.0 {
		t.Errorf("expected deltaTime %.4f, got %.4f", 1.0/30.0, scene.lastDelta)
	}
}

// TestSceneManagerNoScene 没有活动场景时 Update/Draw 不做任何事
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 30.0)
	sm.Draw(nil)
}

// TestSceneManagerSwitchBetweenScenes 从棋盘场景切到终局场景后只更新新场景
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	play := &recordingScene{}
	over := &recordingScene{}

	sm.SwitchTo(play)
	sm.Update(0.033)
	sm.SwitchTo(over)
	sm.Update(0.033)
	sm.Update(0.033)

	if play.updates != 1 {
		t.Errorf("play scene updated %d times, want 1", play.updates)
	}
	if over.updates != 2 {
		t.Errorf("game over scene updated %d times, want 2", over.updates)
	}
	if sm.GetCurrentScene() != over {
		t.Error("GetCurrentScene did not return the active scene")
	}
}

// TestSceneManagerRequestQuit 退出请求一旦设置就保持
func TestSceneManagerRequestQuit(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&recordingScene{})
	sm.RequestQuit()
	sm.RequestQuit()

	if !sm.QuitRequested() {
		t.Error("expected QuitRequested to be true")
	}
}
