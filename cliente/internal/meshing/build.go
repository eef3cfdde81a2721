package meshing

import (
	"runtime"
	"sync"

	"VoxelVision/shared/blocks"
	"VoxelVision/shared/util"
	"VoxelVision/shared/world"
)

// tile é a origem de um sub-volume da fase paralela do build.
type tile struct {
	x, y, z int
}

// bucket acumula os três streams locais de um worker. Workers só leem da
// vizinhança imutável e só escrevem no próprio bucket, então a fase
// paralela não precisa de sincronização.
type bucket struct {
	opaque      []Vertex
	transparent []Vertex
	model       []Vertex
}

// neighborhood monta a visão de vizinhança a partir de um snapshot do
// mundo.
func neighborhoodOf(r world.Region) Neighborhood {
	return Neighborhood{
		Center: r.Center,
		Left:   r.Left,
		Right:  r.Right,
		Front:  r.Front,
		Back:   r.Back,

		CenterLight: r.CenterLight,
		LeftLight:   r.LeftLight,
		RightLight:  r.RightLight,
		FrontLight:  r.FrontLight,
		BackLight:   r.BackLight,
	}
}

// BuildMesh reconstrói os três streams de vértices do chunk. Retorna
// ok=false quando o chunk não está carregado ou quando algum dos quatro
// vizinhos planares está ausente: um chunk só é meshado com as bordas
// determinadas, e nesse caso nada é produzido. Chunk vazio é sucesso com
// streams de contagem zero.
//
// O build roda sobre um snapshot dos grids, tirado sob o lock do mundo:
// edições concorrentes (SetBlock) não correm com os workers de tile, e
// só aparecem no próximo build.
func (m *ChunkMesher) BuildMesh(pos util.ChunkPos) (Result, bool) {
	reg, ok := m.world.SnapshotRegion(pos)
	if !ok {
		return Result{}, false
	}
	nb := neighborhoodOf(reg)
	if !nb.Complete() {
		return Result{}, false
	}

	tiles := make([]tile, 0, (world.CX/m.tileX+1)*(world.CY/m.tileY+1)*(world.CZ/m.tileZ+1))
	for x := 0; x < world.CX; x += m.tileX {
		for y := 0; y < world.CY; y += m.tileY {
			for z := 0; z < world.CZ; z += m.tileZ {
				tiles = append(tiles, tile{x, y, z})
			}
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(tiles) {
		workers = len(tiles)
	}
	if workers < 1 {
		workers = 1
	}

	buckets := make([]bucket, workers)
	tileCh := make(chan tile)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(b *bucket) {
			defer wg.Done()
			for t := range tileCh {
				m.meshTile(&nb, t, b)
			}
		}(&buckets[i])
	}
	for _, t := range tiles {
		tileCh <- t
	}
	close(tileCh)
	wg.Wait()

	// Concatena os buckets locais. A ordem dos vértices dentro de um
	// stream não é observável: o padrão de índices é uniforme por quad.
	res := Result{Pos: pos}
	for i := range buckets {
		res.Opaque = append(res.Opaque, buckets[i].opaque...)
		res.Transparent = append(res.Transparent, buckets[i].transparent...)
		res.Model = append(res.Model, buckets[i].model...)
	}
	return res, true
}

// meshTile roda o laço por célula dentro de um tile.
func (m *ChunkMesher) meshTile(nb *Neighborhood, t tile, b *bucket) {
	xEnd := min(t.x+m.tileX, world.CX)
	yEnd := min(t.y+m.tileY, world.CY)
	zEnd := min(t.z+m.tileZ, world.CZ)

	for x := t.x; x < xEnd; x++ {
		for y := t.y; y < yEnd; y++ {
			for z := t.z; z < zEnd; z++ {
				m.meshCell(nb, x, y, z, b)
			}
		}
	}
}

// meshCell aplica o algoritmo por célula: pula ar, desvia modelos para o
// stream próprio e emite as faces visíveis das seis direções.
func (m *ChunkMesher) meshCell(nb *Neighborhood, x, y, z int, b *bucket) {
	blk := nb.Center[x][y][z]
	if blk.IsAir() {
		return
	}

	// Luz "do céu": a célula acima quando existe, senão a própria.
	baseLight := nb.CenterLight[x][y][z]
	if y < world.CY-1 {
		baseLight = nb.CenterLight[x][y+1][z]
	}

	if blk.IsModel() {
		emitModel(nb, x, y, z, blk.Type, baseLight, &b.model)
		return
	}

	opaque := blk.IsOpaque()
	for face := blocks.Face(0); face < blocks.FaceCount; face++ {
		off := faceOffsets[face]
		nx, ny, nz := x+off[0], y+off[1], z+off[2]
		if !faceVisible(blk, nb.BlockAt(nx, ny, nz)) {
			continue
		}
		light := nb.LightAt(nx, ny, nz)
		if opaque {
			emitFace(nb, face, x, y, z, blk.Type, light, &b.opaque)
		} else {
			emitFace(nb, face, x, y, z, blk.Type, light, &b.transparent)
		}
	}
}
