package game

import (
	"log"

	"github.com/decker502/blockpuzzle/pkg/board"
	"github.com/decker502/blockpuzzle/pkg/shapes"
)

// State 回合控制器状态
type State int

const (
	// StateAwaitingInput 等待放置尝试
	StateAwaitingInput State = iota
	// StateEvaluating 正在校验并应用一次放置尝试
	StateEvaluating
	// StateContinuing 放置成功且仍有落点，正在抽取下一个形状
	StateContinuing
	// StateGameOver 终局，不再离开此状态
	StateGameOver
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "AwaitingInput"
	case StateEvaluating:
		return "Evaluating"
	case StateContinuing:
		return "Continuing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Stats 会话统计
type Stats struct {
	Placements   int // 成功放置次数
	LinesCleared int // 累计消除行列数
	Rejected     int // 被拒绝的放置尝试次数
}

// Summary 终局总结
type Summary struct {
	Score     int
	HighScore int
	NewRecord bool
	Stats     Stats
}

// Outcome 一次放置尝试的结果
type Outcome struct {
	Accepted   bool          // 是否放置成功
	Cleared    board.Cleared // 本次消除的行列
	ScoreDelta int           // 本次得分
	GameOver   bool          // 本次尝试后是否终局（或会话早已终局）
	SaveErr    error         // 终局写入最高分失败时的错误，不影响会话
}

// Snapshot 会话只读快照，渲染层使用
type Snapshot struct {
	Grid      [][]shapes.ColorTag
	Shape     shapes.Shape
	Color     shapes.ColorTag
	Score     int
	HighScore int
	State     State
	Running   bool
	Summary   *Summary
}

// Session 一局游戏的回合控制器
//
// 状态机：AwaitingInput → Evaluating → (Continuing | GameOver)。
// Session 独占棋盘，是棋盘唯一的写入方；所有操作同步执行。
type Session struct {
	board  *board.Board
	source shapes.Source
	store  ScoreStore

	shape shapes.Shape
	color shapes.ColorTag

	score     int
	highScore int
	state     State
	stats     Stats
	summary   *Summary

	onGameOver func(Summary)
}

// NewSession 创建新会话
//
// 参数：
//   - size: 棋盘边长
//   - source: 形状/颜色来源，nil 时使用进程级随机来源
//   - store: 最高分存储，nil 时使用内存存储
func NewSession(size int, source shapes.Source, store ScoreStore) *Session {
	return newSession(board.New(size), source, store)
}

func newSession(b *board.Board, source shapes.Source, store ScoreStore) *Session {
	if source == nil {
		source = shapes.DefaultSource
	}
	if store == nil {
		store = &MemoryScoreStore{}
	}

	s := &Session{
		board:     b,
		source:    source,
		store:     store,
		highScore: store.ReadHighScore(),
		state:     StateAwaitingInput,
	}
	s.drawNext()

	log.Printf("[Session] New session: board=%dx%d, highScore=%d, first shape=%s",
		b.Size(), b.Size(), s.highScore, s.shape.Name())
	return s
}

// SetGameOverHandler 设置终局回调，终局时以总结调用一次
func (s *Session) SetGameOverHandler(fn func(Summary)) {
	s.onGameOver = fn
}

// Attempt 处理一次放置尝试
//
// 参数：
//   - row, col: 形状左上角锚点所在格子
//
// 放不下时拒绝，棋盘、形状、颜色、分数都不变；只有当前形状已无任何落点时才终局。
// 放下后消除满行满列并计分，然后检查刚放下的形状在棋盘上是否还有落点：
// 没有则终局，有则抽取下一个形状。
func (s *Session) Attempt(row, col int) Outcome {
	if s.state == StateGameOver {
		return Outcome{GameOver: true}
	}

	s.state = StateEvaluating
	if !s.board.Fits(s.shape, row, col) {
		s.stats.Rejected++
		log.Printf("[Session] Rejected %s at (%d, %d)", s.shape.Name(), row, col)

		// 每次尝试后都做终局检测：被拒绝且当前形状已无落点时同样终局
		if !s.board.HasAnyValidMove(s.shape) {
			return Outcome{GameOver: true, SaveErr: s.finish()}
		}
		s.state = StateAwaitingInput
		return Outcome{}
	}

	s.board.Place(s.shape, row, col, s.color)
	cleared := s.board.ClearLines()
	s.score += cleared.Count()
	s.stats.Placements++
	s.stats.LinesCleared += cleared.Count()

	out := Outcome{
		Accepted:   true,
		Cleared:    cleared,
		ScoreDelta: cleared.Count(),
	}
	if cleared.Count() > 0 {
		log.Printf("[Session] Cleared rows=%v cols=%v, score=%d", cleared.Rows, cleared.Cols, s.score)
	}

	// 终局检测针对刚放下的形状，而不是下一个要给出的形状；
	// 下一个形状若已无落点，要到玩家再次尝试被拒绝时才终局
	if !s.board.HasAnyValidMove(s.shape) {
		out.GameOver = true
		out.SaveErr = s.finish()
		return out
	}

	s.state = StateContinuing
	s.drawNext()
	s.state = StateAwaitingInput
	return out
}

// finish 进入终局：必要时更新并持久化最高分，记录总结
func (s *Session) finish() error {
	var saveErr error
	newRecord := s.score > s.highScore
	if newRecord {
		s.highScore = s.score
		if err := s.store.WriteHighScore(s.highScore); err != nil {
			log.Printf("[Session] Warning: failed to save high score: %v", err)
			saveErr = err
		}
	}

	s.state = StateGameOver
	s.summary = &Summary{
		Score:     s.score,
		HighScore: s.highScore,
		NewRecord: newRecord,
		Stats:     s.stats,
	}
	log.Printf("[Session] Game over: score=%d, highScore=%d, placements=%d, lines=%d, rejected=%d",
		s.score, s.highScore, s.stats.Placements, s.stats.LinesCleared, s.stats.Rejected)

	if s.onGameOver != nil {
		s.onGameOver(*s.summary)
	}
	return saveErr
}

func (s *Session) drawNext() {
	s.shape = s.source.NextShape()
	s.color = s.source.NextColor()
}

// Board 返回棋盘只读视图
func (s *Session) Board() board.View {
	return s.board
}

// Shape 返回当前形状
func (s *Session) Shape() shapes.Shape {
	return s.shape
}

// Color 返回当前颜色
func (s *Session) Color() shapes.ColorTag {
	return s.color
}

// Score 返回当前分数
func (s *Session) Score() int {
	return s.score
}

// HighScore 返回最高分（终局后包含本局刷新）
func (s *Session) HighScore() int {
	return s.highScore
}

// State 返回当前状态
func (s *Session) State() State {
	return s.state
}

// Running 报告会话是否尚未终局
func (s *Session) Running() bool {
	return s.state != StateGameOver
}

// Stats 返回会话统计
func (s *Session) Stats() Stats {
	return s.stats
}

// Summary 返回终局总结，未终局时第二个返回值为 false
func (s *Session) Summary() (Summary, bool) {
	if s.summary == nil {
		return Summary{}, false
	}
	return *s.summary, true
}

// CanPlace 检查当前形状能否放在 (row, col)，不修改状态（用于拖拽预览）
func (s *Session) CanPlace(row, col int) bool {
	return s.state != StateGameOver && s.board.Fits(s.shape, row, col)
}

// Hint 返回当前形状按行优先顺序的第一个可放置锚点，终局或无落点时 ok 为 false
func (s *Session) Hint() (row, col int, ok bool) {
	if s.state == StateGameOver {
		return 0, 0, false
	}
	return s.board.FirstFit(s.shape)
}

// Snapshot 返回渲染用快照
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:      s.board.Snapshot(),
		Shape:     s.shape,
		Color:     s.color,
		Score:     s.score,
		HighScore: s.highScore,
		State:     s.state,
		Running:   s.Running(),
	}
	if s.summary != nil {
		summary := *s.summary
		snap.Summary = &summary
	}
	return snap
}
