// Package board 管理方块拼图的网格状态
//
// Board 是网格占用状态的唯一修改者：放置检测、放置、整行整列消除、
// 以及无可用落点（终局）检测都在这里完成。
package board

import (
	"fmt"

	"github.com/decker502/blockpuzzle/pkg/shapes"
)

// DefaultSize 默认网格边长
const DefaultSize = 10

// View 棋盘只读视图，供渲染层使用
type View interface {
	Size() int
	Cell(row, col int) shapes.ColorTag
}

// Board N×N 网格
//
// 每个格子存储颜色标签，0 表示空格子。尺寸在创建后不变。
type Board struct {
	size  int
	cells [][]shapes.ColorTag
}

// New 创建空棋盘
//
// 参数：
//   - size: 网格边长，必须为正数
func New(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("board size must be positive, got %d", size))
	}
	b := &Board{size: size, cells: make([][]shapes.ColorTag, size)}
	for r := range b.cells {
		b.cells[r] = make([]shapes.ColorTag, size)
	}
	return b
}

// FromRows 根据现有网格数据创建棋盘（用于测试和回放）
//
// 返回：
//   - error: 网格不是正方形，或存在无效的颜色标签
func FromRows(rows [][]int) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board has no rows")
	}
	b := New(len(rows))
	for r, line := range rows {
		if len(line) != b.size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(line), b.size)
		}
		for c, v := range line {
			tag := shapes.ColorTag(v)
			if tag != shapes.Empty && !tag.Valid() {
				return nil, fmt.Errorf("cell (%d, %d) has invalid color tag %d", r, c, v)
			}
			b.cells[r][c] = tag
		}
	}
	return b, nil
}

// Size 返回网格边长
func (b *Board) Size() int {
	return b.size
}

// Cell 返回格子的颜色标签，越界返回 Empty
func (b *Board) Cell(row, col int) shapes.ColorTag {
	if !b.inBounds(row, col) {
		return shapes.Empty
	}
	return b.cells[row][col]
}

// Snapshot 返回网格的深拷贝
func (b *Board) Snapshot() [][]shapes.ColorTag {
	out := make([][]shapes.ColorTag, b.size)
	for r := range b.cells {
		out[r] = make([]shapes.ColorTag, b.size)
		copy(out[r], b.cells[r])
	}
	return out
}

// Filled 返回非空格子数量
func (b *Board) Filled() int {
	n := 0
	for _, line := range b.cells {
		for _, v := range line {
			if v != shapes.Empty {
				n++
			}
		}
	}
	return n
}

// Fits 检查形状能否以 (row, col) 为锚点放下
//
// 形状的每个占用格子映射到 (row+r, col+c)，必须位于网格内且目标格为空。
// 任意一个格子越界或冲突都会使整次放置无效。不修改棋盘。
func (b *Board) Fits(shape shapes.Shape, row, col int) bool {
	if shape.IsZero() {
		return false
	}
	for _, off := range shape.Cells() {
		r, c := row+off.Row, col+off.Col
		if !b.inBounds(r, c) || b.cells[r][c] != shapes.Empty {
			return false
		}
	}
	return true
}

// Place 将形状以 (row, col) 为锚点写入棋盘
//
// 前置条件：Fits(shape, row, col) 为 true。本方法不再校验，
// 冲突格子会被直接覆盖；越界格子被跳过。
func (b *Board) Place(shape shapes.Shape, row, col int, tag shapes.ColorTag) {
	for _, off := range shape.Cells() {
		r, c := row+off.Row, col+off.Col
		if b.inBounds(r, c) {
			b.cells[r][c] = tag
		}
	}
}

// HasAnyValidMove 检查形状在当前棋盘上是否还有任意可放置的锚点
func (b *Board) HasAnyValidMove(shape shapes.Shape) bool {
	_, _, ok := b.FirstFit(shape)
	return ok
}

// FirstFit 按行优先顺序返回第一个可放置的锚点
func (b *Board) FirstFit(shape shapes.Shape) (row, col int, ok bool) {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.Fits(shape, r, c) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}
