package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/blockpuzzle/pkg/utils"
)

// ScoreStore 最高分持久化接口
//
// ReadHighScore 在会话开始时调用一次，WriteHighScore 在终局时最多调用一次。
// 读取失败（不存在或格式错误）一律视为 0，不向上报告错误。
type ScoreStore interface {
	ReadHighScore() int
	WriteHighScore(score int) error
}

// parseHighScore 解析纯文本整数，格式错误或负数返回 0
func parseHighScore(data []byte, source string) int {
	raw := strings.TrimSpace(string(data))
	score, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[ScoreStore] Warning: malformed high score in %s: %q (using 0)", source, raw)
		return 0
	}
	if score < 0 {
		log.Printf("[ScoreStore] Warning: negative high score in %s: %d (using 0)", source, score)
		return 0
	}
	return score
}

func formatHighScore(score int) []byte {
	return []byte(strconv.Itoa(score))
}

// GdataScoreStore 基于 gdata 的跨平台最高分存储
//
// gdataManager 可为 nil（降级模式）：分数只保存在内存中，写入不报错
type GdataScoreStore struct {
	gdataManager *gdata.Manager
	object       string
	property     string
	memory       int
}

// NewGdataScoreStore 创建 gdata 最高分存储
//
// 参数：
//   - gdataManager: gdata 管理器，可为 nil（降级模式）
//   - object, property: gdata 中的对象名和属性名
func NewGdataScoreStore(gdataManager *gdata.Manager, object, property string) *GdataScoreStore {
	return &GdataScoreStore{
		gdataManager: gdataManager,
		object:       object,
		property:     property,
	}
}

// ReadHighScore 读取最高分，不存在或损坏返回 0
func (s *GdataScoreStore) ReadHighScore() int {
	if s.gdataManager == nil {
		return s.memory
	}

	if !s.gdataManager.ObjectPropExists(s.object, s.property) {
		return 0
	}

	data, err := s.gdataManager.LoadObjectProp(s.object, s.property)
	if err != nil {
		log.Printf("[ScoreStore] Warning: failed to load high score: %v (using 0)", err)
		return 0
	}
	return parseHighScore(data, s.object+"/"+s.property)
}

// WriteHighScore 覆盖写入最高分
func (s *GdataScoreStore) WriteHighScore(score int) error {
	if s.gdataManager == nil {
		s.memory = score
		return nil
	}

	if err := s.gdataManager.SaveObjectProp(s.object, s.property, formatHighScore(score)); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	log.Printf("[ScoreStore] High score %d saved to gdata", score)
	return nil
}

// FileScoreStore 纯文本文件最高分存储（如 high_score.txt）
type FileScoreStore struct {
	path string
}

// NewFileScoreStore 创建文件最高分存储
func NewFileScoreStore(path string) *FileScoreStore {
	return &FileScoreStore{path: path}
}

// Path 返回存储文件路径
func (s *FileScoreStore) Path() string {
	return s.path
}

// ReadHighScore 读取最高分，文件不存在或内容无效返回 0
func (s *FileScoreStore) ReadHighScore() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[ScoreStore] Warning: failed to read %s: %v (using 0)", s.path, err)
		}
		return 0
	}
	return parseHighScore(data, s.path)
}

// WriteHighScore 覆盖写入最高分，不保证原子性
func (s *FileScoreStore) WriteHighScore(score int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create score directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, formatHighScore(score), 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	log.Printf("[ScoreStore] High score %d saved to %s", score, s.path)
	return nil
}

// MemoryScoreStore 内存最高分存储，用于测试
type MemoryScoreStore struct {
	Score  int
	Writes int
	Err    error // 非 nil 时 WriteHighScore 返回该错误且不更新分数
}

// ReadHighScore 返回内存中的最高分
func (s *MemoryScoreStore) ReadHighScore() int {
	return s.Score
}

// WriteHighScore 写入内存
func (s *MemoryScoreStore) WriteHighScore(score int) error {
	s.Writes++
	if s.Err != nil {
		return s.Err
	}
	s.Score = score
	return nil
}

// OpenScoreStore 打开默认最高分存储
//
// 优先使用 gdata；gdata 初始化失败时降级到纯文本文件。
//
// 参数：
//   - appName: gdata 应用名
//   - object, property: gdata 对象名和属性名
//   - fallbackPath: 降级文件路径
func OpenScoreStore(appName, object, property, fallbackPath string) ScoreStore {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[ScoreStore] Warning: storage dir not ready: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[ScoreStore] Warning: gdata unavailable: %v (falling back to %s)", err, fallbackPath)
		return NewFileScoreStore(fallbackPath)
	}
	log.Printf("[ScoreStore] Using gdata storage (app=%s)", appName)
	return NewGdataScoreStore(manager, object, property)
}
