package physics

import (
	"testing"

	"VoxelVision/shared/util"
)

// solidSet monta um SolidFunc a partir de um conjunto mutável de células.
type solidSet map[util.BlockPos]bool

func (s solidSet) fn(x, y, z int32) bool {
	return s[util.NewBlockPos(x, y, z)]
}

func TestBridgeWindowSweep(t *testing.T) {
	scene := NewScene()
	cells := solidSet{
		util.NewBlockPos(0, 0, 0): true,
		util.NewBlockPos(5, 0, 0): true,
	}
	b := NewBlockSceneBridge(scene, Material{}, cells.fn)

	b.UpdateWindow(util.NewBlockPos(0, 0, 0), util.NewBlockPos(3, 0, 0))
	if got := b.ActorCount(); got != 1 {
		t.Fatalf("janela em (0,0,0): %d atores, esperado 1", got)
	}
	if !b.Contains(util.NewBlockPos(0, 0, 0)) {
		t.Fatal("ator de (0,0,0) ausente")
	}

	b.UpdateWindow(util.NewBlockPos(5, 0, 0), util.NewBlockPos(3, 0, 0))
	if got := b.ActorCount(); got != 1 {
		t.Fatalf("janela em (5,0,0): %d atores, esperado 1", got)
	}
	if b.Contains(util.NewBlockPos(0, 0, 0)) {
		t.Error("ator de (0,0,0) deveria ter sido liberado")
	}
	if !b.Contains(util.NewBlockPos(5, 0, 0)) {
		t.Error("ator de (5,0,0) ausente")
	}
	if got := scene.ActorCount(); got != 1 {
		t.Errorf("cena com %d atores, esperado 1 (sem vazamento)", got)
	}

	b.Clear()
	if b.ActorCount() != 0 || scene.ActorCount() != 0 {
		t.Errorf("Clear deixou atores: bridge=%d cena=%d", b.ActorCount(), scene.ActorCount())
	}
}

func TestBridgeWindowNoChurn(t *testing.T) {
	scene := NewScene()
	cells := solidSet{util.NewBlockPos(1, 1, 1): true}
	b := NewBlockSceneBridge(scene, Material{}, cells.fn)

	center := util.NewBlockPos(0, 0, 0)
	half := util.NewBlockPos(2, 2, 2)
	b.UpdateWindow(center, half)

	// Centro inalterado: nada muda, nem com o voxel editado por fora.
	cells[util.NewBlockPos(1, 1, 1)] = false
	b.UpdateWindow(center, half)
	if !b.Contains(util.NewBlockPos(1, 1, 1)) {
		t.Error("UpdateWindow sem mudança de centro não deveria varrer")
	}

	// EnsureBlock é quem reconcilia a edição.
	b.EnsureBlock(util.NewBlockPos(1, 1, 1))
	if b.Contains(util.NewBlockPos(1, 1, 1)) {
		t.Error("EnsureBlock não removeu o ator da célula esvaziada")
	}
	if scene.ActorCount() != 0 {
		t.Errorf("cena com %d atores, esperado 0", scene.ActorCount())
	}
}

func TestBridgeEnsureBlock(t *testing.T) {
	scene := NewScene()
	cells := solidSet{}
	b := NewBlockSceneBridge(scene, Material{}, cells.fn)

	b.UpdateWindow(util.NewBlockPos(0, 0, 0), util.NewBlockPos(2, 2, 2))

	p := util.NewBlockPos(1, 0, 1)
	cells[p] = true

	// Idempotente: duas chamadas, um ator.
	b.EnsureBlock(p)
	b.EnsureBlock(p)
	if got := b.ActorCount(); got != 1 {
		t.Fatalf("%d atores após EnsureBlock duplo, esperado 1", got)
	}

	// Fora da janela: não-op mesmo com a célula sólida.
	outside := util.NewBlockPos(10, 0, 0)
	cells[outside] = true
	b.EnsureBlock(outside)
	if b.Contains(outside) {
		t.Error("EnsureBlock criou ator fora da janela")
	}

	// Quebra do bloco remove o ator.
	cells[p] = false
	b.EnsureBlock(p)
	if b.ActorCount() != 0 {
		t.Errorf("%d atores após quebrar o bloco, esperado 0", b.ActorCount())
	}
}

func TestBridgeWindowMirrorsSolids(t *testing.T) {
	scene := NewScene()
	cells := solidSet{}
	for x := int32(-2); x <= 2; x++ {
		for z := int32(-2); z <= 2; z++ {
			cells[util.NewBlockPos(x, 0, z)] = true
		}
	}
	b := NewBlockSceneBridge(scene, Material{}, cells.fn)

	center := util.NewBlockPos(0, 0, 0)
	half := util.NewBlockPos(1, 1, 1)
	b.UpdateWindow(center, half)

	// 3x1x3 células sólidas dentro da janela 3x3x3.
	if got := b.ActorCount(); got != 9 {
		t.Fatalf("%d atores, esperado 9", got)
	}
	for pos := range cells {
		if inWindow(pos, center, half) != b.Contains(pos) {
			t.Errorf("espelho inconsistente em %s", pos.String())
		}
	}

	// Deslizando um bloco em X: mesma contagem, células novas.
	b.UpdateWindow(util.NewBlockPos(1, 0, 0), half)
	if got := b.ActorCount(); got != 9 {
		t.Fatalf("após deslizar: %d atores, esperado 9", got)
	}
	if b.Contains(util.NewBlockPos(-1, 0, -1)) {
		t.Error("ator atrás da janela não foi liberado")
	}
	if got := scene.ActorCount(); got != b.ActorCount() {
		t.Errorf("cena (%d) e bridge (%d) divergem", scene.ActorCount(), b.ActorCount())
	}
}
