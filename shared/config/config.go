package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do VoxelVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Mundo
	Seed       int64 `json:"seed"`
	ViewRadius int32 `json:"view_radius"` // raio de streaming em chunks

	// Meshing
	MesherWorkers int `json:"mesher_workers"`
	TileX         int `json:"tile_x"`
	TileY         int `json:"tile_y"`
	TileZ         int `json:"tile_z"`

	// Jogador
	FOV              float32 `json:"fov"`
	WalkSpeed        float32 `json:"walk_speed"`
	FlySpeed         float32 `json:"fly_speed"`
	MouseSensitivity float32 `json:"mouse_sensitivity"`
	StartFreeFly     bool    `json:"start_free_fly"`

	// Física
	BridgeHalfX     int32 `json:"bridge_half_x"` // meia-janela de colisores em blocos
	BridgeHalfY     int32 `json:"bridge_half_y"`
	BridgeHalfZ     int32 `json:"bridge_half_z"`
	PhysicsRecorder bool  `json:"physics_recorder"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "VoxelVision",
		Fullscreen:   false,
		TargetFPS:    60,

		Seed:       1337,
		ViewRadius: 8,

		MesherWorkers: 4,
		TileX:         4,
		TileY:         8,
		TileZ:         4,

		FOV:              70.0,
		WalkSpeed:        4.5,
		FlySpeed:         20.0,
		MouseSensitivity: 0.1,
		StartFreeFly:     false,

		BridgeHalfX:     12,
		BridgeHalfY:     8,
		BridgeHalfZ:     12,
		PhysicsRecorder: false,

		ShowDebugInfo: true,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
