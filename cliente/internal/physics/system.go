package physics

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// recorderFile é onde o gravador de depuração escreve os eventos da cena.
const recorderFile = "physics_events.log"

// System é a fachada de ciclo de vida da física: dona única da cena, do
// material padrão, do gerenciador de controladores e do gravador
// opcional. Initialize/Shutdown delimitam a vida de tudo que ela possui.
type System struct {
	mu sync.Mutex

	scene    *Scene
	material Material
	manager  *ControllerManager
	recorder *os.File

	initialized bool
}

var (
	instance     *System
	instanceOnce sync.Once
)

// Instance devolve a fachada do processo.
func Instance() *System {
	instanceOnce.Do(func() {
		instance = &System{}
	})
	return instance
}

// Initialize cria a cena, o material padrão e o gerenciador de
// controladores. Chamada repetida é não-op. Com enableRecorder liga o
// gravador de eventos em disco; falha ao abrir o arquivo só desliga o
// gravador, nunca a física.
func (s *System) Initialize(enableRecorder bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	s.scene = NewScene()
	s.material = Material{StaticFriction: 0.5, DynamicFriction: 0.5, Restitution: 0.1}
	s.manager = NewControllerManager(s.scene)

	if enableRecorder {
		f, err := os.Create(recorderFile)
		if err != nil {
			log.Printf("[Physics] AVISO: gravador indisponível: %v", err)
		} else {
			s.recorder = f
			s.record("initialize")
		}
	}

	s.initialized = true
	log.Printf("[Physics] Sistema inicializado (recorder=%v)", s.recorder != nil)
	return nil
}

// Shutdown libera tudo na ordem inversa da criação: controladores,
// atores da cena e por fim o gravador. Chamada sem Initialize é não-op.
func (s *System) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	s.manager.Release()
	s.manager = nil

	s.scene.Release()
	s.scene = nil

	if s.recorder != nil {
		s.record("shutdown")
		if err := s.recorder.Close(); err != nil {
			log.Printf("[Physics] erro ao fechar gravador: %v", err)
		}
		s.recorder = nil
	}

	s.initialized = false
	log.Printf("[Physics] Sistema encerrado")
}

// Initialized reporta se a fachada está ativa.
func (s *System) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Scene devolve a cena, ou nil antes de Initialize.
func (s *System) Scene() *Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// Material devolve o material padrão compartilhado.
func (s *System) Material() Material {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.material
}

// ControllerManager devolve o gerenciador de controladores, ou nil antes
// de Initialize.
func (s *System) ControllerManager() *ControllerManager {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager
}

// Step avança a cena um passo de tempo. Não-op antes de Initialize.
func (s *System) Step(dt float32) {
	s.mu.Lock()
	scene := s.scene
	s.mu.Unlock()

	if scene == nil {
		return
	}
	scene.Simulate(dt)
	scene.FetchResults(true)
	s.mu.Lock()
	s.record(fmt.Sprintf("step dt=%.5f actors=%d", dt, scene.ActorCount()))
	s.mu.Unlock()
}

// record anexa um evento ao gravador. Chamar com s.mu preso.
func (s *System) record(event string) {
	if s.recorder == nil {
		return
	}
	fmt.Fprintf(s.recorder, "%s %s\n", time.Now().Format(time.RFC3339Nano), event)
}
