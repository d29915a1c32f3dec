package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"

	"github.com/decker502/blockpuzzle/pkg/config"
	"github.com/decker502/blockpuzzle/pkg/shapes"
)

// gridLineColor 格子描边颜色
var gridLineColor = color.RGBA{config.GridLineGray, config.GridLineGray, config.GridLineGray, 255}

// TileCache 缓存按颜色和尺寸预渲染的格子图像
//
// 每个格子是填充色加 1 像素灰色描边
type TileCache struct {
	tiles *intmap.Map[int, *ebiten.Image]
}

// NewTileCache 创建格子缓存
func NewTileCache() *TileCache {
	return &TileCache{
		tiles: intmap.New[int, *ebiten.Image](int(shapes.NumColors+1) * 2),
	}
}

// tileKey 颜色标签与边长组合成缓存键
func tileKey(tag shapes.ColorTag, size int) int {
	return size<<8 | int(tag)
}

// Tile 返回指定颜色和边长的格子图像
func (c *TileCache) Tile(tag shapes.ColorTag, size int) *ebiten.Image {
	key := tileKey(tag, size)
	if img, ok := c.tiles.Get(key); ok {
		return img
	}

	// 空标签和无效标签都是白色
	fill := tag.RGBA()

	img := ebiten.NewImage(size, size)
	vector.DrawFilledRect(img, 0, 0, float32(size), float32(size), fill, false)
	vector.StrokeRect(img, 0.5, 0.5, float32(size)-1, float32(size)-1, 1, gridLineColor, false)
	c.tiles.Put(key, img)
	return img
}

// Len 返回已缓存的格子数量
func (c *TileCache) Len() int {
	return c.tiles.Len()
}
