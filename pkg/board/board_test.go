package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/blockpuzzle/pkg/shapes"
)

func mustShape(t *testing.T, name string) shapes.Shape {
	t.Helper()
	s, ok := shapes.ShapeByName(name)
	require.True(t, ok, "shape %s not in catalog", name)
	return s
}

func mustBoard(t *testing.T, rows [][]int) *Board {
	t.Helper()
	b, err := FromRows(rows)
	require.NoError(t, err)
	return b
}

func TestNewBoardEmpty(t *testing.T) {
	b := New(DefaultSize)
	assert.Equal(t, 10, b.Size())
	assert.Equal(t, 0, b.Filled())
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			assert.Equal(t, shapes.Empty, b.Cell(r, c))
		}
	}
}

func TestNewBoardPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { New(0) })
}

func TestFromRowsValidation(t *testing.T) {
	_, err := FromRows(nil)
	assert.Error(t, err)

	_, err = FromRows([][]int{{0, 0}, {0}})
	assert.Error(t, err, "non-square grid")

	_, err = FromRows([][]int{{0, 9}, {0, 0}})
	assert.Error(t, err, "invalid color tag")
}

// TestFitsOutOfBounds 任意占用格子越界都不能放置
func TestFitsOutOfBounds(t *testing.T) {
	b := New(DefaultSize)

	for _, s := range shapes.AllShapes() {
		for _, anchor := range [][2]int{
			{-1, 0}, {0, -1}, {-5, -5},
			{b.Size() - s.Rows() + 1, 0},
			{0, b.Size()},
			{b.Size(), b.Size()},
		} {
			outside := false
			for _, off := range s.Cells() {
				r, c := anchor[0]+off.Row, anchor[1]+off.Col
				if r < 0 || r >= b.Size() || c < 0 || c >= b.Size() {
					outside = true
				}
			}
			if outside {
				assert.False(t, b.Fits(s, anchor[0], anchor[1]), "%s at %v", s.Name(), anchor)
			}
		}
	}
}

// TestFitsExhaustiveBounds 空棋盘上 Fits 恰好等价于"所有格子都在界内"
func TestFitsExhaustiveBounds(t *testing.T) {
	b := New(4)
	for _, s := range shapes.AllShapes() {
		for r := -4; r < 8; r++ {
			for c := -4; c < 8; c++ {
				inside := true
				for _, off := range s.Cells() {
					rr, cc := r+off.Row, c+off.Col
					if rr < 0 || rr >= 4 || cc < 0 || cc >= 4 {
						inside = false
					}
				}
				assert.Equal(t, inside, b.Fits(s, r, c), "%s at (%d,%d)", s.Name(), r, c)
			}
		}
	}
}

// TestFitsCollision 任何一个格子冲突都使放置无效，只看占用格子
func TestFitsCollision(t *testing.T) {
	b := mustBoard(t, [][]int{
		{0, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})

	square := mustShape(t, "square")
	assert.False(t, b.Fits(square, 0, 0))
	assert.False(t, b.Fits(square, 1, 1))

	// z 形在 (0,0) 的空洞落在 (1,0)、(0,2)，占用格 (1,1) 冲突
	z := mustShape(t, "z")
	assert.False(t, b.Fits(z, 0, 0))

	// t-extended 在 (0,0)：占用 (0,1)(0,2)(1,1)(2,0)，冲突
	assert.False(t, b.Fits(mustShape(t, "t-extended"), 0, 0))

	single := mustShape(t, "single")
	assert.True(t, b.Fits(single, 0, 0))
	assert.False(t, b.Fits(single, 1, 1))

	// 空洞可以覆盖已占用格子
	hole := mustBoard(t, [][]int{
		{0, 0, 0},
		{5, 0, 0},
		{0, 0, 0},
	})
	assert.True(t, hole.Fits(mustShape(t, "t"), 0, 0))
}

// TestFitsIdempotent 不修改棋盘时重复调用 Fits 结果一致
func TestFitsIdempotent(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
	})
	before := b.Snapshot()

	for _, s := range shapes.AllShapes() {
		for r := -1; r < 5; r++ {
			for c := -1; c < 5; c++ {
				first := b.Fits(s, r, c)
				for i := 0; i < 3; i++ {
					assert.Equal(t, first, b.Fits(s, r, c))
				}
			}
		}
	}
	assert.Equal(t, before, b.Snapshot())
}

// TestPlaceWritesOnlyTargetCells 放置后目标格为颜色标签，其余格子不变
func TestPlaceWritesOnlyTargetCells(t *testing.T) {
	for _, s := range shapes.AllShapes() {
		t.Run(s.Name(), func(t *testing.T) {
			b := mustBoard(t, [][]int{
				{0, 0, 0, 0, 0, 7},
				{0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0},
				{6, 0, 0, 0, 0, 0},
			})
			before := b.Snapshot()
			row, col := 1, 1
			require.True(t, b.Fits(s, row, col))

			b.Place(s, row, col, shapes.ColorTag(4))

			targets := make(map[[2]int]bool)
			for _, off := range s.Cells() {
				targets[[2]int{row + off.Row, col + off.Col}] = true
			}
			for r := 0; r < b.Size(); r++ {
				for c := 0; c < b.Size(); c++ {
					if targets[[2]int{r, c}] {
						assert.Equal(t, shapes.ColorTag(4), b.Cell(r, c))
					} else {
						assert.Equal(t, before[r][c], b.Cell(r, c))
					}
				}
			}
		})
	}
}

// TestPlaceDoesNotRevalidate 未检查 Fits 直接放置会覆盖已有格子
func TestPlaceDoesNotRevalidate(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 0},
		{0, 0},
	})
	b.Place(mustShape(t, "horizontal"), 0, 0, shapes.ColorTag(2))
	assert.Equal(t, shapes.ColorTag(2), b.Cell(0, 0))
	assert.Equal(t, shapes.ColorTag(2), b.Cell(0, 1))
}

func TestCellOutOfBounds(t *testing.T) {
	b := New(3)
	assert.Equal(t, shapes.Empty, b.Cell(-1, 0))
	assert.Equal(t, shapes.Empty, b.Cell(0, 3))
}

func TestSnapshotIsCopy(t *testing.T) {
	b := New(2)
	snap := b.Snapshot()
	snap[0][0] = 3
	assert.Equal(t, shapes.Empty, b.Cell(0, 0))
}

// TestHasAnyValidMove 1×1 空棋盘只能放下单格形状
func TestHasAnyValidMove(t *testing.T) {
	b := New(1)
	for _, s := range shapes.AllShapes() {
		if s.Size() > 1 {
			assert.False(t, b.HasAnyValidMove(s), s.Name())
		} else {
			assert.True(t, b.HasAnyValidMove(s), s.Name())
		}
	}

	b.Place(mustShape(t, "single"), 0, 0, 1)
	assert.False(t, b.HasAnyValidMove(mustShape(t, "single")))
}

func TestHasAnyValidMoveSingleGap(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	assert.True(t, b.HasAnyValidMove(mustShape(t, "single")))
	assert.False(t, b.HasAnyValidMove(mustShape(t, "vertical")))
	assert.False(t, b.HasAnyValidMove(mustShape(t, "horizontal")))
}

// TestEmptyBoardMonominoAtOrigin 空 10×10 棋盘左上角放单格：无消除，仍有落点
func TestEmptyBoardMonominoAtOrigin(t *testing.T) {
	b := New(DefaultSize)
	single := mustShape(t, "single")

	require.True(t, b.Fits(single, 0, 0))
	b.Place(single, 0, 0, shapes.ColorTag(1))
	assert.Equal(t, 0, b.ClearCompletedLines())
	assert.NotEqual(t, shapes.Empty, b.Cell(0, 0))

	for _, s := range shapes.AllShapes() {
		assert.True(t, b.HasAnyValidMove(s), s.Name())
	}
}

// TestFirstFit 行优先返回第一个可放置锚点
func TestFirstFit(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	row, col, ok := b.FirstFit(mustShape(t, "single"))
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, [2]int{row, col})

	row, col, ok = b.FirstFit(mustShape(t, "horizontal"))
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 0}, [2]int{row, col})

	_, _, ok = b.FirstFit(mustShape(t, "square"))
	assert.False(t, ok)
}
