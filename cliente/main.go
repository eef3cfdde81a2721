package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"VoxelVision/cliente/internal/app"
	"VoxelVision/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO.
	runtime.LockOSThread()

	// Flags de linha de comando
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	seed := flag.Int64("seed", 0, "Seed do mundo (0 usa a do config)")
	fly := flag.Bool("fly", false, "Começar em voo livre")
	flag.Parse()

	// Log em arquivo, quando possível
	f, err := os.OpenFile("debug_vv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
		log.Println("--- INICIANDO VOXEL VISION ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("VoxelVision v0.1.0 - cliente voxel")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *fly {
		cfg.StartFreeFly = true
	}

	// Criar e rodar a aplicação
	application := app.New(cfg)
	application.Run()
}
