// Package scenes 实现具体的游戏场景
package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/game"
	"github.com/decker502/sandfall/pkg/systems"
	"github.com/decker502/sandfall/pkg/utils"
	"github.com/decker502/sandfall/pkg/world"
)

// 累积器上限，防止窗口失焦后恢复时补帧雪崩
const maxAccumulatedSeconds = 0.25

// 物料调色板
var (
	colorSky    = color.RGBA{R: 40, G: 44, B: 60, A: 255}
	colorDirt   = color.RGBA{R: 134, G: 96, B: 67, A: 255}
	colorGrass  = color.RGBA{R: 106, G: 170, B: 64, A: 255}
	colorPlant  = color.RGBA{R: 70, G: 130, B: 50, A: 255}
	colorStone  = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	colorPlayer = color.RGBA{R: 235, G: 219, B: 178, A: 255}
	colorSlime  = color.RGBA{R: 86, G: 196, B: 104, A: 255}
	colorBat    = color.RGBA{R: 150, G: 100, B: 190, A: 255}
	colorSpider = color.RGBA{R: 200, G: 90, B: 60, A: 255}
	colorSword  = color.RGBA{R: 250, G: 250, B: 210, A: 255}
	colorHPBack = color.RGBA{R: 60, G: 20, B: 20, A: 255}
	colorHPFill = color.RGBA{R: 200, G: 50, B: 50, A: 255}
)

// GameScene 主游戏场景
//
// 拥有一局 Session 并以固定步长驱动它：Update 按真实时间累积，
// 每累积满一个 tick 周期调用一次 Session.Advance。渲染频率与
// 逻辑 tick 率解耦，边沿输入在两次 tick 之间锁存，保证高帧率下
// 不丢按键。
type GameScene struct {
	session      *game.Session
	sceneManager *game.SceneManager
	unitsCfg     *config.UnitsConfig

	accumulator float64
	paused      bool

	// tick 之间锁存的边沿输入
	jumpLatched   bool
	attackLatched bool
}

// NewGameScene 创建一局新游戏
//
// 参数:
//   - worldCfg: 世界生成配置
//   - unitsCfg: 单位配置
//   - rng: 本局使用的随机源
//   - sceneManager: 场景管理器，用于对局结束后重开
func NewGameScene(worldCfg *config.WorldConfig, unitsCfg *config.UnitsConfig,
	rng *rand.Rand, sceneManager *game.SceneManager) *GameScene {
	return &GameScene{
		session:      game.NewSession(worldCfg, unitsCfg, rng),
		sceneManager: sceneManager,
		unitsCfg:     unitsCfg,
	}
}

// Update 推进场景逻辑
//
// 暂停只在两次 tick 之间生效，不会打断 tick 内部的系统次序。
func (s *GameScene) Update(deltaTime float64) {
	in := utils.ReadFrameInput()

	if s.session.GameOver() {
		s.handleGameOver(in)
		return
	}

	if in.PausePressed {
		s.paused = !s.paused
		if s.paused {
			log.Printf("[GameScene] Paused at tick %d", s.session.Tick())
		}
	}
	if s.paused {
		return
	}

	// 锁存边沿输入，直到下一个 tick 消费
	if in.JumpPressed {
		s.jumpLatched = true
	}
	if in.AttackPressed {
		s.attackLatched = true
	}

	s.accumulator += deltaTime
	if s.accumulator > maxAccumulatedSeconds {
		s.accumulator = maxAccumulatedSeconds
	}

	tickSeconds := 1.0 / float64(config.TickRate)
	for s.accumulator >= tickSeconds {
		s.accumulator -= tickSeconds
		s.runTick(in)
	}
}

// runTick 执行一个逻辑 tick 并消费战斗事件
func (s *GameScene) runTick(in utils.FrameInput) {
	intents := systems.Intents{
		MoveLeft:  in.MoveLeft,
		MoveRight: in.MoveRight,
		Sprint:    in.Sprint,
		Jump:      s.jumpLatched,
		Attack:    s.attackLatched,
	}
	s.jumpLatched = false
	s.attackLatched = false

	events := s.session.Advance(intents)

	gs := game.GetGameState()
	for _, ev := range events {
		if ev.Type == systems.EventEnemyKilled {
			gs.AddKill(s.unitsCfg.Spawn.ScorePerKill)
		}
	}
	gs.TickCombo()
}

// handleGameOver 对局结束：结算一次，然后等待重开按键
// GameState.GameOver 即结算锁存，ResetRun 时随之清除
func (s *GameScene) handleGameOver(in utils.FrameInput) {
	gs := game.GetGameState()
	if !gs.GameOver {
		log.Printf("[GameScene] Game over, final score %d", gs.Score)
		gs.FinishRun()
	}
	if in.RestartPressed {
		gs.ResetRun()
		s.sceneManager.Restart()
	}
}

// Draw 渲染场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	s.drawGrid(screen)
	s.drawEnemies(screen)
	s.drawPlayer(screen)
	s.drawHUD(screen)

	if s.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED - press ESC to resume",
			config.GameWindowWidth/2-90, config.GameWindowHeight/2)
	}
	if s.session.GameOver() {
		gs := game.GetGameState()
		msg := fmt.Sprintf("GAME OVER\nScore: %d  Best: %d\nPress R to restart", gs.Score, gs.HighScore)
		ebitenutil.DebugPrintAt(screen, msg,
			config.GameWindowWidth/2-70, config.GameWindowHeight/2-20)
	}
}

// drawGrid 绘制物料网格，一个物料格对应一个像素方块
func (s *GameScene) drawGrid(screen *ebiten.Image) {
	g := s.session.Grid
	px := float32(config.CellPixels)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell, _ := g.Get(x, y)
			var clr color.RGBA
			switch cell.Material {
			case world.MaterialDirt:
				clr = colorDirt
			case world.MaterialGrass:
				clr = colorGrass
			case world.MaterialPlant:
				clr = colorPlant
			case world.MaterialStone:
				clr = colorStone
			default:
				continue
			}
			vector.DrawFilledRect(screen, float32(x)*px, float32(y)*px, px, px, clr, false)
		}
	}
}

// drawEnemies 按原型着色绘制敌人
func (s *GameScene) drawEnemies(screen *ebiten.Image) {
	for _, e := range s.session.Enemies {
		var clr color.RGBA
		switch e.Archetype {
		case entities.ArchetypeBat:
			clr = colorBat
		case entities.ArchetypeSpider:
			clr = colorSpider
		default:
			clr = colorSlime
		}
		drawBodyRect(screen, e, clr)
	}
}

// drawPlayer 绘制玩家与挥剑判定框
func (s *GameScene) drawPlayer(screen *ebiten.Image) {
	p := s.session.Player
	drawBodyRect(screen, p, colorPlayer)

	if x, y, w, h, ok := s.session.SwordHitbox(); ok {
		px := float32(config.CellPixels)
		vector.DrawFilledRect(screen,
			float32(x)*px, float32(y)*px, float32(w)*px, float32(h)*px, colorSword, false)
	}
}

// drawBodyRect 把实体的网格坐标包围盒换算到屏幕坐标绘制
func drawBodyRect(screen *ebiten.Image, e *entities.Entity, clr color.RGBA) {
	px := float32(config.CellPixels)
	vector.DrawFilledRect(screen,
		float32(e.X)*px, float32(e.Y)*px, float32(e.W)*px, float32(e.H)*px, clr, false)
}

// drawHUD 绘制血条与计分信息
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	p := s.session.Player

	// 血条
	const barW, barH = 150, 10
	vector.DrawFilledRect(screen, 10, 10, barW, barH, colorHPBack, false)
	if p.Health > 0 {
		fill := float32(barW) * float32(p.Health) / float32(p.MaxHealth)
		vector.DrawFilledRect(screen, 10, 10, fill, barH, colorHPFill, false)
	}

	gs := game.GetGameState()
	info := fmt.Sprintf("Score: %d  Best: %d", gs.Score, gs.HighScore)
	if gs.Combo > 1 {
		info += fmt.Sprintf("  Combo x%d", gs.Combo)
	}
	ebitenutil.DebugPrintAt(screen, info, 10, 26)
}

// SaveOnExit 窗口关闭时结算当前分数并落盘
func (s *GameScene) SaveOnExit() bool {
	gs := game.GetGameState()
	sm := gs.GetSaveManager()
	if sm == nil {
		return true
	}
	sm.SubmitScore(gs.Score)
	if err := sm.Save(); err != nil {
		log.Printf("[GameScene] Failed to save on exit: %v", err)
		return false
	}
	return true
}
