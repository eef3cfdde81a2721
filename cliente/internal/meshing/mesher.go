package meshing

import (
	"log"
	"sync"

	"VoxelVision/shared/util"
	"VoxelVision/shared/world"
)

// Vertex é o registro empacotado enviado à GPU: posição relativa à origem
// do chunk (cabe em bytes), UV quantizado do atlas, luz por vértice vinda
// do grid de luz e sombreamento direcional por face.
type Vertex struct {
	Position [3]uint8
	UV       [2]uint16
	Light    uint8
	Shade    uint8
}

// Result contém os três streams de vértices de um chunk: opaco,
// transparente e modelos. Os dois primeiros são quads (4 vértices por
// face, indexados pelo padrão compartilhado); o de modelos é composto de
// triângulos crus.
type Result struct {
	Pos         util.ChunkPos
	Opaque      []Vertex
	Transparent []Vertex
	Model       []Vertex
}

// Empty reporta se o resultado não tem geometria alguma.
func (r Result) Empty() bool {
	return len(r.Opaque) == 0 && len(r.Transparent) == 0 && len(r.Model) == 0
}

// ChunkMesher transforma chunks em streams de vértices. Além do BuildMesh
// síncrono, mantém um pool de workers alimentado por Enqueue, com dedup de
// pedidos pendentes, entregando resultados pelo canal Results.
type ChunkMesher struct {
	world *world.World

	// Dimensões do tile 3D da fase paralela do build.
	tileX, tileY, tileZ int

	requests  chan util.ChunkPos
	results   chan Result
	stop      chan struct{}
	pending   map[util.ChunkPos]bool
	pendingMu sync.Mutex
}

// NewChunkMesher cria e inicia um mesher com o número de workers dado.
func NewChunkMesher(w *world.World, workers int) *ChunkMesher {
	if workers < 1 {
		workers = 1
	}
	m := &ChunkMesher{
		world:    w,
		tileX:    4,
		tileY:    8,
		tileZ:    4,
		requests: make(chan util.ChunkPos, 1024),
		results:  make(chan Result, 1024),
		stop:     make(chan struct{}),
		pending:  make(map[util.ChunkPos]bool),
	}

	for i := 0; i < workers; i++ {
		go m.worker()
	}
	return m
}

// SetTileSize ajusta a partição 3D da fase paralela. Valores menores que
// 1 são ignorados.
func (m *ChunkMesher) SetTileSize(tx, ty, tz int) {
	if tx > 0 {
		m.tileX = tx
	}
	if ty > 0 {
		m.tileY = ty
	}
	if tz > 0 {
		m.tileZ = tz
	}
}

// Enqueue agenda o rebuild do mesh de um chunk. Retorna false se já havia
// um pedido pendente para a mesma posição ou se a fila estiver cheia.
func (m *ChunkMesher) Enqueue(pos util.ChunkPos) bool {
	m.pendingMu.Lock()
	if m.pending[pos] {
		m.pendingMu.Unlock()
		return false
	}
	m.pending[pos] = true
	m.pendingMu.Unlock()

	select {
	case m.requests <- pos:
		return true
	default:
		// Fila cheia: remove do pendente para tentar depois.
		m.pendingMu.Lock()
		delete(m.pending, pos)
		m.pendingMu.Unlock()
		return false
	}
}

// Results expõe o canal de resultados prontos para upload.
func (m *ChunkMesher) Results() <-chan Result {
	return m.results
}

// Stop encerra os workers.
func (m *ChunkMesher) Stop() {
	close(m.stop)
}

func (m *ChunkMesher) worker() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro no Mesher Worker: %v", r)
		}
	}()
	for {
		select {
		case pos := <-m.requests:
			res, ok := m.BuildMesh(pos)
			m.clearPending(pos)
			if !ok {
				// Chunk descarregado ou vizinhos ausentes: o streaming
				// reagenda quando a borda ficar determinada.
				log.Printf("[Mesher] Chunk %s sem borda determinada, build adiado", pos.String())
				continue
			}
			select {
			case m.results <- res:
			case <-m.stop:
				return
			}
		case <-m.stop:
			return
		}
	}
}

func (m *ChunkMesher) clearPending(pos util.ChunkPos) {
	m.pendingMu.Lock()
	delete(m.pending, pos)
	m.pendingMu.Unlock()
}
