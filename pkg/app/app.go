// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：配置加载、存档管理器
// 接线、场景管理器装配都在这里完成，main 只负责窗口与启动。
package app

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/game"
	"github.com/decker502/sandfall/pkg/scenes"
	"github.com/decker502/sandfall/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 固定随机种子；0 表示每局随机
	Seed int64
	// WorldConfigPath 世界生成配置文件路径
	WorldConfigPath string
	// UnitsConfigPath 单位配置文件路径
	UnitsConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 配置文件缺失或非法时退回内置默认值，只警告不中止；
// 存档存储打开失败时进入无持久化的降级模式。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载世界与单位配置
	worldCfg, err := config.LoadWorldConfig(cfg.WorldConfigPath)
	if err != nil {
		log.Printf("[App] Warning: world config unavailable (%v), using defaults", err)
		worldCfg = config.DefaultWorldConfig()
	}
	unitsCfg, err := config.LoadUnitsConfig(cfg.UnitsConfigPath)
	if err != nil {
		log.Printf("[App] Warning: units config unavailable (%v), using defaults", err)
		unitsCfg = config.DefaultUnitsConfig()
	}

	// 打开跨平台存档存储
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "sandfall",
	})
	if err != nil {
		log.Printf("[App] Warning: failed to open save storage: %v (running without saves)", err)
		gdataManager = nil
	}

	gameState := game.GetGameState()
	gameState.SetSaveManager(game.NewSaveManager(gdataManager))
	log.Printf("[App] High score loaded: %d", gameState.HighScore)

	// 创建场景管理器与场景工厂
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("[App] New run with seed %d", seed)
		return scenes.NewGameScene(worldCfg, unitsCfg, rand.New(rand.NewSource(seed)), sceneManager)
	})
	sceneManager.Restart()

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口被关闭时先给场景一次存档机会
	if ebiten.IsWindowBeingClosed() {
		if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
			if !saveable.SaveOnExit() {
				log.Printf("[App] Warning: save on exit failed")
			}
		}
		return ebiten.Termination
	}

	// F11 切换全屏
	if utils.IsFullscreenTogglePressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
