package game

import "log"

// comboWindowTicks 连击保持窗口：窗口内再次击杀则连击数递增
const comboWindowTicks = 150

// GameState 存储跨场景的全局游戏状态
// 这是一个单例，分数/连击/最高分归外层所有，核心只产出事件
type GameState struct {
	Score      int
	Combo      int   // 当前连击倍数（0 表示无连击）
	comboTicks int   // 连击窗口剩余 tick
	HighScore  int   // 本进程已知最高分（由 SaveManager 持久化）
	GameOver   bool

	saveManager *SaveManager
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// resetGlobalGameState 重置单例（仅测试用）
func resetGlobalGameState() {
	globalGameState = nil
}

// SetSaveManager 注入存档管理器
func (gs *GameState) SetSaveManager(sm *SaveManager) {
	gs.saveManager = sm
	if sm != nil {
		gs.HighScore = sm.GetHighScore()
	}
}

// GetSaveManager 返回存档管理器（可能为 nil）
func (gs *GameState) GetSaveManager() *SaveManager {
	return gs.saveManager
}

// AddKill 记一次击杀：连击数递增，得分按连击倍数放大
func (gs *GameState) AddKill(basePoints int) {
	gs.Combo++
	gs.comboTicks = comboWindowTicks
	gs.Score += basePoints * gs.Combo
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}

// TickCombo 每 tick 推进连击窗口，窗口耗尽则连击清零
func (gs *GameState) TickCombo() {
	if gs.comboTicks > 0 {
		gs.comboTicks--
		if gs.comboTicks == 0 {
			gs.Combo = 0
		}
	}
}

// FinishRun 对局结束：提交最高分并落盘
func (gs *GameState) FinishRun() {
	gs.GameOver = true
	if gs.saveManager == nil {
		return
	}
	if gs.saveManager.SubmitScore(gs.Score) {
		log.Printf("[GameState] New high score: %d", gs.Score)
	}
	if err := gs.saveManager.Save(); err != nil {
		log.Printf("[GameState] Warning: failed to save high score: %v", err)
	}
}

// ResetRun 开始新对局：清空本局状态，保留最高分
func (gs *GameState) ResetRun() {
	gs.Score = 0
	gs.Combo = 0
	gs.comboTicks = 0
	gs.GameOver = false
}
