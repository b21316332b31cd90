package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/robopet/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	petPath := flag.String("pet", "", "宠物定义文件路径（为空使用内置演示宠物）")
	ageGroup := flag.String("age", "", "年龄段覆盖: young / middle / older")
	silent := flag.Bool("silent", false, "禁用音频")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		PetConfigPath: *petPath,
		AgeGroup:      *ageGroup,
		Silent:        *silent,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer game.Shutdown()

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("机器宠物修理站")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
