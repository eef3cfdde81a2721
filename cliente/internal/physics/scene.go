package physics

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Material agrupa os coeficientes de contato usados pelos atores.
type Material struct {
	StaticFriction  float32
	DynamicFriction float32
	Restitution     float32
}

// ActorID é o handle opaco de um ator estático dentro da cena. Quem cria
// é dono: liberar devolve o handle à cena.
type ActorID uint64

// Scene é a cena cinemática: atores-caixa estáticos consultáveis por
// região mais os controladores de cápsula que varrem contra eles. Não há
// dinâmica própria: Simulate/FetchResults só avançam o relógio da cena.
type Scene struct {
	mu      sync.RWMutex
	nextID  ActorID
	statics map[ActorID]box

	simTime  float64
	stepping bool
}

// NewScene cria uma cena vazia.
func NewScene() *Scene {
	return &Scene{
		nextID:  1,
		statics: make(map[ActorID]box),
	}
}

// AddStaticBox cria um ator-caixa estático e devolve o handle.
func (s *Scene) AddStaticBox(center, half mgl32.Vec3, _ Material) ActorID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.statics[id] = boxAt(center, half)
	return id
}

// RemoveActor libera um ator estático. Remover handle desconhecido é
// não-op.
func (s *Scene) RemoveActor(id ActorID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.statics, id)
}

// setActorBox reposiciona o AABB de um ator vivo. É como os
// controladores cinemáticos espelham a própria cápsula na cena.
func (s *Scene) setActorBox(id ActorID, b box) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.statics[id]; ok {
		s.statics[id] = b
	}
}

// ActorCount reporta quantos atores estáticos a cena possui.
func (s *Scene) ActorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.statics)
}

// boxesIn devolve os AABBs dos atores que intersectam a região,
// pulando o ator em exclude (o próprio corpo de quem consulta). É a
// consulta de candidatos dos varridos de cápsula.
func (s *Scene) boxesIn(region box, exclude ActorID) []box {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []box
	for id, b := range s.statics {
		if id == exclude {
			continue
		}
		if b.intersects(region) {
			out = append(out, b)
		}
	}
	return out
}

// OverlapBox reporta se algum ator intersecta o AABB dado, ignorando o
// ator em exclude (zero para não excluir ninguém).
func (s *Scene) OverlapBox(center, half mgl32.Vec3, exclude ActorID) bool {
	region := boxAt(center, half)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, b := range s.statics {
		if id == exclude {
			continue
		}
		if b.intersects(region) {
			return true
		}
	}
	return false
}

// Simulate inicia um passo da cena. Deve ser pareado com FetchResults.
func (s *Scene) Simulate(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simTime += float64(dt)
	s.stepping = true
}

// FetchResults conclui o passo iniciado por Simulate.
func (s *Scene) FetchResults(block bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stepping {
		return false
	}
	s.stepping = false
	return true
}

// SimTime devolve o tempo simulado acumulado.
func (s *Scene) SimTime() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.simTime
}

// Release descarta todos os atores da cena.
func (s *Scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statics = make(map[ActorID]box)
}
