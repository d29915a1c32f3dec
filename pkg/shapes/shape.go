// Package shapes 定义方块形状目录、调色板以及随机来源
//
// 形状是只读的二维占用图案，所有会话共享同一份目录。
package shapes

import "fmt"

// Offset 表示形状内部一个被占用格子的相对位置
type Offset struct {
	Row int
	Col int
}

// Shape 方块形状（不可变）
//
// 占用图案按行存储，行与行之间长度可以不同（与原始目录保持一致），
// 越出某行长度的位置视为未占用。
type Shape struct {
	name  string
	rows  [][]bool
	cols  int
	cells []Offset
}

// NewShape 根据 0/1 行数据创建形状
//
// 参数：
//   - name: 形状名称，用于日志和调试
//   - pattern: 占用图案，非 0 表示占用
//
// 返回：
//   - Shape: 新形状
//   - error: 图案为空或没有任何占用格子时返回错误
func NewShape(name string, pattern [][]int) (Shape, error) {
	if len(pattern) == 0 {
		return Shape{}, fmt.Errorf("shape %q has no rows", name)
	}

	s := Shape{name: name, rows: make([][]bool, len(pattern))}
	for r, line := range pattern {
		s.rows[r] = make([]bool, len(line))
		if len(line) > s.cols {
			s.cols = len(line)
		}
		for c, v := range line {
			if v != 0 {
				s.rows[r][c] = true
				s.cells = append(s.cells, Offset{Row: r, Col: c})
			}
		}
	}

	if len(s.cells) == 0 {
		return Shape{}, fmt.Errorf("shape %q has no occupied cells", name)
	}
	return s, nil
}

// MustShape 与 NewShape 相同，但出错时 panic，仅用于静态目录
func MustShape(name string, pattern [][]int) Shape {
	s, err := NewShape(name, pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Name 返回形状名称
func (s Shape) Name() string {
	return s.name
}

// Rows 返回图案行数
func (s Shape) Rows() int {
	return len(s.rows)
}

// Cols 返回图案最宽一行的列数
func (s Shape) Cols() int {
	return s.cols
}

// Occupied 检查相对位置 (r, c) 是否被占用，越界返回 false
func (s Shape) Occupied(r, c int) bool {
	if r < 0 || r >= len(s.rows) || c < 0 || c >= len(s.rows[r]) {
		return false
	}
	return s.rows[r][c]
}

// Cells 返回所有被占用格子的相对位置（按行优先顺序）
//
// 返回的是副本，修改不影响形状本身
func (s Shape) Cells() []Offset {
	out := make([]Offset, len(s.cells))
	copy(out, s.cells)
	return out
}

// Size 返回被占用格子的数量
func (s Shape) Size() int {
	return len(s.cells)
}

// IsZero 报告形状是否为零值（未初始化）
func (s Shape) IsZero() bool {
	return len(s.cells) == 0
}

// String 以 "#"/"." 文本形式输出图案，便于日志查看
func (s Shape) String() string {
	out := s.name + "\n"
	for r := range s.rows {
		for c := 0; c < s.cols; c++ {
			if s.Occupied(r, c) {
				out += "#"
			} else {
				out += "."
			}
		}
		out += "\n"
	}
	return out
}
