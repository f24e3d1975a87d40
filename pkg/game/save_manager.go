package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SaveData 持久化的存档数据
// 核心不拥有任何持久化状态，只有外层的最高分走存档
type SaveData struct {
	HighScore int `yaml:"highScore"` // 历史最高分
}

// 存储路径常量
const (
	saveObject   = "save"
	saveProperty = "progress"
)

// SaveManager 存档管理器
//
// 通过 gdata 做跨平台持久化，YAML 序列化与项目其他配置保持一致。
// gdataManager 为 nil 时进入降级模式：仅内存，不持久化也不报错。
type SaveManager struct {
	gdataManager *gdata.Manager
	data         *SaveData
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *SaveManager: 存档管理器实例
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		data:         &SaveData{},
	}
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，从零开始
		log.Printf("[SaveManager] Warning: failed to load save: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载存档
//
// gdataManager 为 nil 或存档不存在时使用零值数据。
//
// 返回：
//   - error: 反序列化失败时返回错误
func (sm *SaveManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return fmt.Errorf("failed to load save: %w", err)
	}

	var loaded SaveData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal save: %w", err)
	}
	sm.data = &loaded
	log.Printf("[SaveManager] Save loaded, high score = %d", loaded.HighScore)
	return nil
}

// Save 保存存档到 gdata
//
// gdataManager 为 nil 时直接返回 nil（降级模式）。
//
// 返回：
//   - error: 序列化或写入失败时返回错误
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	return nil
}

// GetHighScore 返回历史最高分
func (sm *SaveManager) GetHighScore() int {
	return sm.data.HighScore
}

// SubmitScore 提交一局得分
//
// 返回：
//   - bool: 是否刷新了最高分（仅更新内存，持久化需调用 Save）
func (sm *SaveManager) SubmitScore(score int) bool {
	if score <= sm.data.HighScore {
		return false
	}
	sm.data.HighScore = score
	return true
}
