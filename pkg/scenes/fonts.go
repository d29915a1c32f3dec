package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts 场景使用的字体
type Fonts struct {
	Normal *text.GoTextFace // 分数、标签
	Large  *text.GoTextFace // 终局标题
}

// LoadFonts 从内置 Go 字体创建字体
//
// 参数：
//   - size: 普通字号
//   - largeSize: 标题字号
func LoadFonts(size, largeSize float64) (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &Fonts{
		Normal: &text.GoTextFace{
			Source:    source,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		},
		Large: &text.GoTextFace{
			Source:    source,
			Size:      largeSize,
			Direction: text.DirectionLeftToRight,
		},
	}, nil
}
