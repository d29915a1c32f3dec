package shapes

import "math/rand/v2"

// Source 形状与颜色的来源
//
// 会话每一回合从 Source 取一个形状和一个颜色，二者相互独立。
// 测试中使用 SequenceSource 提供确定序列。
type Source interface {
	NextShape() Shape
	NextColor() ColorTag
}

// RandomSource 基于 math/rand/v2 的均匀随机来源
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource 创建指定种子的随机来源
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextShape 从目录中均匀随机选择一个形状
func (s *RandomSource) NextShape() Shape {
	return catalog[s.rng.IntN(len(catalog))]
}

// NextColor 均匀随机选择一个颜色标签
func (s *RandomSource) NextColor() ColorTag {
	return ColorTag(s.rng.IntN(NumColors) + 1)
}

// globalSource 使用进程级随机源，不需要种子
type globalSource struct{}

// DefaultSource 进程级随机来源
var DefaultSource Source = globalSource{}

func (globalSource) NextShape() Shape    { return PickRandomShape() }
func (globalSource) NextColor() ColorTag { return PickRandomColor() }

// PickRandomShape 使用进程级随机源选择形状
func PickRandomShape() Shape {
	return catalog[rand.IntN(len(catalog))]
}

// PickRandomColor 使用进程级随机源选择颜色
func PickRandomColor() ColorTag {
	return ColorTag(rand.IntN(NumColors) + 1)
}

// SequenceSource 按给定顺序循环返回形状和颜色
// 用于测试和回放
type SequenceSource struct {
	shapes   []Shape
	colors   []ColorTag
	shapeIdx int
	colorIdx int
}

// NewSequenceSource 创建循环序列来源
//
// 参数：
//   - shapes: 形状序列，为空时使用完整目录
//   - colors: 颜色序列，为空时使用全部颜色
func NewSequenceSource(shapes []Shape, colors []ColorTag) *SequenceSource {
	if len(shapes) == 0 {
		shapes = AllShapes()
	}
	if len(colors) == 0 {
		colors = AllColors()
	}
	return &SequenceSource{shapes: shapes, colors: colors}
}

// NextShape 返回序列中的下一个形状，到末尾后从头开始
func (s *SequenceSource) NextShape() Shape {
	shape := s.shapes[s.shapeIdx%len(s.shapes)]
	s.shapeIdx++
	return shape
}

// NextColor 返回序列中的下一个颜色，到末尾后从头开始
func (s *SequenceSource) NextColor() ColorTag {
	c := s.colors[s.colorIdx%len(s.colors)]
	s.colorIdx++
	return c
}
