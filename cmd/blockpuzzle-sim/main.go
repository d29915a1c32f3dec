// blockpuzzle-sim 无界面批量模拟对局
//
// 每局使用独立种子的随机来源，按行优先顺序把形状放到第一个可放置位置，
// 直到终局。用于验证引擎在长对局下的行为并输出统计。
//
// 用法：
//
//	go run ./cmd/blockpuzzle-sim -games 100 -seed 1
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/blockpuzzle/pkg/board"
	"github.com/decker502/blockpuzzle/pkg/game"
	"github.com/decker502/blockpuzzle/pkg/shapes"
)

var (
	games    = flag.Int("games", 20, "模拟对局数")
	seed     = flag.Uint64("seed", 1, "第一局的随机种子，后续对局依次加 1")
	size     = flag.Int("size", board.DefaultSize, "棋盘边长")
	maxTurns = flag.Int("max-turns", 100000, "单局最大回合数")
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
)

// result 单局结果
type result struct {
	seed    uint64
	summary game.Summary
	turns   int
	capped  bool
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *games <= 0 || *size <= 0 {
		fmt.Fprintln(os.Stderr, "games and size must be positive")
		os.Exit(2)
	}

	results := make([]result, 0, *games)
	for i := 0; i < *games; i++ {
		r := simulate(*seed+uint64(i), *size, *maxTurns)
		results = append(results, r)
		fmt.Printf("game %3d  seed=%-6d score=%-5d placements=%-5d lines=%-5d%s\n",
			i+1, r.seed, r.summary.Score, r.summary.Stats.Placements, r.summary.Stats.LinesCleared,
			cappedMark(r.capped))
	}

	printSummary(results)
}

// simulate 用首个可放置位置策略跑完一局
func simulate(seed uint64, size, maxTurns int) result {
	store := &game.MemoryScoreStore{}
	session := game.NewSession(size, shapes.NewRandomSource(seed), store)

	turns := 0
	for session.Running() && turns < maxTurns {
		row, col, ok := session.Hint()
		if !ok {
			// 当前形状无处可放，任意尝试都会被拒绝并终局
			row, col = 0, 0
		}
		session.Attempt(row, col)
		turns++
	}

	summary, ok := session.Summary()
	if !ok {
		summary = game.Summary{Score: session.Score(), HighScore: session.HighScore(), Stats: session.Stats()}
	}
	return result{seed: seed, summary: summary, turns: turns, capped: !ok}
}

func cappedMark(capped bool) string {
	if capped {
		return "  (turn limit reached)"
	}
	return ""
}

func printSummary(results []result) {
	if len(results) == 0 {
		return
	}
	total, best := 0, results[0]
	placements := 0
	for _, r := range results {
		total += r.summary.Score
		placements += r.summary.Stats.Placements
		if r.summary.Score > best.summary.Score {
			best = r
		}
	}
	n := float64(len(results))
	fmt.Println()
	fmt.Printf("games:           %d\n", len(results))
	fmt.Printf("average score:   %.2f\n", float64(total)/n)
	fmt.Printf("average pieces:  %.2f\n", float64(placements)/n)
	fmt.Printf("best:            %d (seed %d)\n", best.summary.Score, best.seed)
}
