package board

import "github.com/decker502/blockpuzzle/pkg/shapes"

// Cleared 一次消除的结果
type Cleared struct {
	Rows []int // 被消除的行索引
	Cols []int // 被消除的列索引
}

// Count 返回消除的行数与列数之和
func (c Cleared) Count() int {
	return len(c.Rows) + len(c.Cols)
}

// ClearCompletedLines 消除所有填满的行和列，返回消除数量
func (b *Board) ClearCompletedLines() int {
	return b.ClearLines().Count()
}

// ClearLines 消除所有填满的行和列，返回详细结果
//
// 顺序很重要：先扫描并清空所有满行，然后在"已清空行之后"的网格上检查列。
// 只因满行中的格子才显得填满的列，在行清空后不再是满列，不会被计数。
// 方形网格中每一列都与每一行相交，因此同一次消除里只要有行被清空，就不会再有列被清空。
// 颜色不同不影响判定，只要格子非空即可。
func (b *Board) ClearLines() Cleared {
	var result Cleared

	for r := 0; r < b.size; r++ {
		if b.rowFull(r) {
			for c := 0; c < b.size; c++ {
				b.cells[r][c] = shapes.Empty
			}
			result.Rows = append(result.Rows, r)
		}
	}

	for c := 0; c < b.size; c++ {
		if b.colFull(c) {
			for r := 0; r < b.size; r++ {
				b.cells[r][c] = shapes.Empty
			}
			result.Cols = append(result.Cols, c)
		}
	}

	return result
}

func (b *Board) rowFull(r int) bool {
	for c := 0; c < b.size; c++ {
		if b.cells[r][c] == shapes.Empty {
			return false
		}
	}
	return true
}

func (b *Board) colFull(c int) bool {
	for r := 0; r < b.size; r++ {
		if b.cells[r][c] == shapes.Empty {
			return false
		}
	}
	return true
}
