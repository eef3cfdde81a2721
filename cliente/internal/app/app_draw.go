package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza um frame: mundo em 3D e HUD por cima.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(120, 170, 230, 255)) // céu

	rl.BeginMode3D(a.Cam.RLCamera())
	a.renderer.Draw()
	rl.EndMode3D()

	a.drawCrosshair()
	if a.Config.ShowDebugInfo {
		a.drawHUD()
	}

	rl.EndDrawing()
}

// drawCrosshair desenha a mira no centro da tela.
func (a *App) drawCrosshair() {
	cx := rl.GetScreenWidth() / 2
	cy := rl.GetScreenHeight() / 2
	rl.DrawLine(int32(cx-8), int32(cy), int32(cx+8), int32(cy), rl.White)
	rl.DrawLine(int32(cx), int32(cy-8), int32(cx), int32(cy+8), rl.White)
}

// drawHUD desenha o painel de depuração.
func (a *App) drawHUD() {
	const x, y = int32(10), int32(10)
	rl.DrawRectangle(x, y, 300, 120, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, 300, 120, rl.NewColor(50, 50, 50, 255))

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), x+10, y+10, 20, rl.Lime)

	eye := a.player.EyePosition()
	rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", eye.X(), eye.Y(), eye.Z()),
		x+10, y+35, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Chunk: %s | Chunks: %d", a.playerChunk().String(), a.world.Len()),
		x+10, y+55, 14, rl.LightGray)

	mode := "físico"
	if a.player.FreeFly() {
		mode = "voo livre"
	}
	ground := ""
	if a.player.OnGround() {
		ground = " [chão]"
	}
	rl.DrawText(fmt.Sprintf("Modo: %s%s", mode, ground), x+10, y+75, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Mão: %s | F: voar | 1-9: bloco", a.heldBlock.String()),
		x+10, y+95, 14, rl.SkyBlue)
}
