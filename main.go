package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/sandfall/pkg/app"
	"github.com/decker502/sandfall/pkg/config"
)

var (
	verbose   = flag.Bool("verbose", false, "启用详细日志输出")
	seed      = flag.Int64("seed", 0, "固定随机种子（0 表示每局随机）")
	worldPath = flag.String("world", "data/world.yaml", "世界生成配置文件路径")
	unitsPath = flag.String("units", "data/units.yaml", "单位配置文件路径")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		Seed:            *seed,
		WorldConfigPath: *worldPath,
		UnitsConfigPath: *unitsPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("落沙")
	// 关闭事件由 App.Update 拦截，以便退出前存档
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
