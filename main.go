package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/decker502/pixelframe/pkg/components"
	"github.com/decker502/pixelframe/pkg/config"
	"github.com/decker502/pixelframe/pkg/ecs"
	"github.com/decker502/pixelframe/pkg/entities"
	"github.com/decker502/pixelframe/pkg/game"
	"github.com/decker502/pixelframe/pkg/systems"
	"github.com/decker502/pixelframe/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// Game 是演示宿主，实现 ebiten.Game 接口
// 每帧处理点击（切换被点中格子的精灵），然后把所有帧绘制到屏幕上
type Game struct {
	frameSystem   *systems.FrameSystem
	renderSystem  *systems.FrameRenderSystem
	brush         *ebiten.Image
	width, height int
}

// Update 点击格子时切换其精灵
func (g *Game) Update() error {
	clicked, x, y := utils.IsJustTouchedOrClicked()
	if !clicked {
		return nil
	}

	id, c, ok := g.renderSystem.FrameAt(x, y)
	if !ok {
		return nil
	}
	p, err := g.frameSystem.ReadPixel(id, c)
	if err != nil {
		return err
	}
	if p.HasSprite() {
		p.Clear()
	} else {
		p.Sprite = g.brush
	}
	return nil
}

// Draw 绘制所有帧
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	g.renderSystem.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸（容纳所有帧的最小表面）
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	layoutPath := flag.String("layout", "", "frame layout YAML (defaults to the saved or embedded layout)")
	termMode := flag.Bool("term", false, "preview the layout in the terminal instead of opening a window")
	save := flag.Bool("save", false, "persist the loaded layout as the new default")
	flag.Parse()

	store := game.NewLayoutStore(openGdata())
	layout := loadLayout(*layoutPath, store)

	if *save {
		if err := store.Save(layout); err != nil {
			log.Printf("[Main] Warning: failed to save layout: %v", err)
		}
	}

	em := ecs.NewEntityManager()
	ids, err := entities.NewFrameEntitiesFromLayout(em, layout)
	if err != nil {
		log.Fatal(err)
	}

	sprites := newDemoSprites(layout.CellWidth, layout.CellHeight)
	frameSystem := systems.NewFrameSystem(em)
	for i, id := range ids {
		paintChecker(frameSystem, id, sprites[i%len(sprites)])
	}

	if *termMode {
		runTerminal(em, layout)
		return
	}

	w, h := layout.SurfaceSize()
	g := &Game{
		frameSystem:  frameSystem,
		renderSystem: systems.NewFrameRenderSystem(em, layout.CellWidth, layout.CellHeight),
		brush:        sprites[0],
		width:        w,
		height:       h,
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("pixelframe")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// openGdata 打开跨平台存储，失败时返回 nil（降级模式）
func openGdata() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: "pixelframe"})
	if err != nil {
		log.Printf("[Main] Warning: gdata unavailable, layouts will not persist: %v", err)
		return nil
	}
	return manager
}

// loadLayout 按优先级加载布局：命令行指定 > 已保存 > 内嵌默认
func loadLayout(path string, store *game.LayoutStore) *config.FrameLayoutConfig {
	if path != "" {
		layout, err := config.LoadFrameLayoutConfig(path)
		if err != nil {
			log.Fatal(err)
		}
		return layout
	}

	fallback, err := config.ParseFrameLayoutConfig(defaultLayoutYAML)
	if err != nil {
		log.Fatalf("embedded layout is invalid: %v", err)
	}
	return store.LoadOrDefault(fallback)
}

// newDemoSprites 生成几个纯色精灵作为演示用的精灵句柄
func newDemoSprites(w, h int) []*ebiten.Image {
	palette := []color.RGBA{
		{R: 144, G: 238, B: 144, A: 255},
		{R: 255, G: 184, B: 108, A: 255},
		{R: 139, G: 233, B: 253, A: 255},
	}
	sprites := make([]*ebiten.Image, 0, len(palette))
	for _, c := range palette {
		img := ebiten.NewImage(w, h)
		img.Fill(c)
		sprites = append(sprites, img)
	}
	return sprites
}

// paintChecker 在帧上按棋盘格写入精灵
func paintChecker(fs *systems.FrameSystem, id ecs.EntityID, sprite *ebiten.Image) {
	frame, err := fs.Frame(id)
	if err != nil {
		log.Printf("[Main] Warning: %v", err)
		return
	}
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			if (x+y)%2 == 0 {
				frame.WritePixel(components.Coordinate{X: x, Y: y}, components.NewSpritePixel(sprite))
			}
		}
	}
}

// runTerminal 在终端中预览布局，按任意键退出
func runTerminal(em *ecs.EntityManager, layout *config.FrameLayoutConfig) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	screen.Clear()
	systems.NewFrameTermRenderSystem(em, layout.CellWidth, layout.CellHeight).Draw(screen)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
