package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSystemLifecycle(t *testing.T) {
	sys := Instance()
	if sys != Instance() {
		t.Fatal("Instance deveria devolver sempre a mesma fachada")
	}

	if err := sys.Initialize(false); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer sys.Shutdown()

	if !sys.Initialized() {
		t.Fatal("Initialized deveria reportar true")
	}
	if sys.Scene() == nil || sys.ControllerManager() == nil {
		t.Fatal("cena e gerenciador deveriam existir após Initialize")
	}

	// Initialize repetido é não-op: a cena não é recriada.
	scene := sys.Scene()
	if err := sys.Initialize(true); err != nil {
		t.Fatalf("Initialize repetido: %v", err)
	}
	if sys.Scene() != scene {
		t.Error("Initialize repetido recriou a cena")
	}

	sys.Shutdown()
	if sys.Initialized() || sys.Scene() != nil || sys.ControllerManager() != nil {
		t.Error("Shutdown não liberou tudo")
	}
	// Shutdown repetido é não-op.
	sys.Shutdown()

	// O ciclo pode recomeçar.
	if err := sys.Initialize(false); err != nil {
		t.Fatalf("re-Initialize: %v", err)
	}
}

func TestSystemStepAdvancesClock(t *testing.T) {
	sys := Instance()
	if err := sys.Initialize(false); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer sys.Shutdown()

	// Step antes de Initialize seria não-op; aqui avança o relógio.
	before := sys.Scene().SimTime()
	sys.Step(1.0 / 60.0)
	sys.Step(1.0 / 60.0)
	if got := sys.Scene().SimTime() - before; got < 2.0/60.0-1e-6 {
		t.Errorf("relógio avançou %v, esperado ~%v", got, 2.0/60.0)
	}
}

func TestSceneSimulateFetchPairing(t *testing.T) {
	s := NewScene()
	if s.FetchResults(true) {
		t.Error("FetchResults sem Simulate deveria falhar")
	}
	s.Simulate(0.016)
	if !s.FetchResults(true) {
		t.Error("FetchResults após Simulate deveria ter resultado")
	}

	id := s.AddStaticBox(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, Material{})
	if !s.OverlapBox(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.25, 0.25, 0.25}, 0) {
		t.Error("OverlapBox não viu o ator")
	}
	if s.OverlapBox(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{0.25, 0.25, 0.25}, 0) {
		t.Error("OverlapBox viu ator onde não há")
	}
	// A exclusão tira o próprio ator da consulta.
	if s.OverlapBox(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.25, 0.25, 0.25}, id) {
		t.Error("OverlapBox deveria ignorar o ator excluído")
	}
}
