package app

import (
	"log"
	"runtime"

	"VoxelVision/cliente/internal/camera"
	"VoxelVision/cliente/internal/meshing"
	"VoxelVision/cliente/internal/physics"
	"VoxelVision/cliente/internal/player"
	"VoxelVision/cliente/internal/render"
	"VoxelVision/shared/blocks"
	"VoxelVision/shared/config"
	"VoxelVision/shared/util"
	"VoxelVision/shared/world"

	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é a aplicação principal do VoxelVision.
type App struct {
	Config *config.Config

	Cam      *camera.Controller
	world    *world.World
	gen      *world.Generator
	mesher   *meshing.ChunkMesher
	renderer *render.Renderer
	player   *player.Player

	// Bloco na mão para colocação.
	heldBlock blocks.Type

	// Chunks gerados que ainda precisam de mesh (novos ou editados).
	needsMesh map[util.ChunkPos]bool

	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:    cfg,
		heldBlock: blocks.Stone,
		needsMesh: make(map[util.ChunkPos]bool),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)
	rl.DisableCursor()

	log.Println("[VoxelVision] Janela inicializada com sucesso")
	log.Printf("[VoxelVision] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	if err := physics.Instance().Initialize(a.Config.PhysicsRecorder); err != nil {
		log.Fatalf("[App] Física não inicializou: %v", err)
	}

	a.world = world.New()
	a.gen = world.NewGenerator(a.Config.Seed)

	workers := a.Config.MesherWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log.Printf("[App] Iniciando Mesher com %d workers (CPU Cores: %d)", workers, runtime.NumCPU())
	a.mesher = meshing.NewChunkMesher(a.world, workers)
	a.mesher.SetTileSize(a.Config.TileX, a.Config.TileY, a.Config.TileZ)

	a.renderer = render.NewRenderer()

	// Terreno inicial em volta do spawn, antes do primeiro frame.
	a.generateAround(util.NewChunkPos(0, 0))

	a.Cam = camera.New(a.Config.FOV)
	a.Cam.Sensitivity = a.Config.MouseSensitivity
	half := util.NewBlockPos(a.Config.BridgeHalfX, a.Config.BridgeHalfY, a.Config.BridgeHalfZ)
	a.player = player.New(a.Cam, physics.Instance(), a.world.IsSolidAt, half,
		a.Config.WalkSpeed, a.Config.FlySpeed, a.Config.StartFreeFly)

	spawnY := float32(a.world.SurfaceY(0, 0)) + 1
	spawn := mgl32.Vec3{0.5, spawnY + player.EyeLevel, 0.5}
	if err := a.player.AttachToPhysics(spawn); err != nil {
		log.Fatalf("[App] Jogador sem corpo físico: %v", err)
	}
	log.Printf("[App] Spawn em (0.5, %.1f, 0.5)", spawnY)

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica do jogo a cada frame.
func (a *App) update() {
	a.frameCount++

	a.updateInput()
	a.player.OnUpdate(a.sampleInput(), rl.GetFrameTime())
	a.updateStreaming()
	a.processMesherResults()
}

// shutdown realiza a limpeza de recursos na ordem inversa da criação.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.mesher.Stop()
	a.player.Detach()
	a.renderer.Unload()
	physics.Instance().Shutdown()

	if err := a.Config.Save(); err != nil {
		log.Printf("[VoxelVision] Erro ao salvar configurações: %v", err)
	}
}
