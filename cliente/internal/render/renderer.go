package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"log"
	"sync"
	"unsafe"

	"VoxelVision/cliente/internal/meshing"
	"VoxelVision/shared/util"
	"VoxelVision/shared/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ChunkModel agrupa os até três modelos GPU de um chunk, um por stream.
type ChunkModel struct {
	Pos util.ChunkPos

	Opaque      rl.Model
	Transparent rl.Model
	Model       rl.Model

	HasOpaque      bool
	HasTransparent bool
	HasModel       bool
}

// Renderer mantém os modelos GPU por chunk e o atlas de terreno.
type Renderer struct {
	mu     sync.RWMutex
	Models map[util.ChunkPos]*ChunkModel

	Atlas rl.Texture2D
}

// NewRenderer cria o renderizador e carrega o atlas. Sem janela (testes)
// nada de GPU é tocado.
func NewRenderer() *Renderer {
	r := &Renderer{
		Models: make(map[util.ChunkPos]*ChunkModel),
	}

	if rl.IsWindowReady() {
		r.Atlas = rl.LoadTexture("assets/terrain.png")
		if r.Atlas.ID == 0 {
			// Atlas ausente: xadrez de debug para não renderizar preto.
			log.Printf("[Renderer] AVISO: assets/terrain.png não encontrado, usando xadrez")
			img := rl.GenImageChecked(256, 256, 16, 16, rl.Magenta, rl.DarkGray)
			r.Atlas = rl.LoadTextureFromImage(img)
			rl.UnloadImage(img)
		}
		rl.SetTextureFilter(r.Atlas, rl.FilterPoint)
	}

	return r
}

// UploadResult converte um resultado de meshing nos modelos GPU do chunk,
// substituindo os anteriores. Resultado vazio apenas remove o chunk.
func (r *Renderer) UploadResult(res meshing.Result) {
	if !rl.IsWindowReady() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.Models[res.Pos]; ok {
		unloadChunkModel(old)
		delete(r.Models, res.Pos)
	}
	if res.Empty() {
		return
	}

	cm := &ChunkModel{Pos: res.Pos}

	if len(res.Opaque) > 0 {
		cm.Opaque = r.loadModel(quadsToMesh(res.Opaque))
		cm.HasOpaque = true
	}
	if len(res.Transparent) > 0 {
		cm.Transparent = r.loadModel(quadsToMesh(res.Transparent))
		cm.HasTransparent = true
	}
	if len(res.Model) > 0 {
		cm.Model = r.loadModel(trianglesToMesh(res.Model))
		cm.HasModel = true
	}

	r.Models[res.Pos] = cm
}

func (r *Renderer) loadModel(mesh rl.Mesh) rl.Model {
	rl.UploadMesh(&mesh, false)
	model := rl.LoadModelFromMesh(mesh)
	if model.MaterialCount > 0 {
		materials := unsafe.Slice(model.Materials, model.MaterialCount)
		rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, r.Atlas)
	}
	return model
}

// waterShade é o sentinela de sombreamento que o mesher grava nas faces
// de água; aqui ele seleciona o caminho de tingimento translúcido.
const waterShade = 85

// vertexColor assa luz e sombreamento direcional na cor do vértice. Água
// recebe tom azulado translúcido com brilho só da luz.
func vertexColor(light, shade uint8) rl.Color {
	brightness := 0.35 + 0.65*float32(light)/15.0

	if shade == waterShade {
		return rl.Color{
			R: uint8(180 * brightness),
			G: uint8(210 * brightness),
			B: uint8(255 * brightness),
			A: 170,
		}
	}

	v := brightness * float32(shade) / 10.0
	if v > 1 {
		v = 1
	}
	c := uint8(255 * v)
	return rl.Color{R: c, G: c, B: c, A: 255}
}

// uvScale normaliza o UV quantizado do atlas (0..65535) para 0..1.
const uvScale = 1.0 / 65536.0

// quadsToMesh expande um stream de quads em triângulos crus seguindo o
// padrão de índices compartilhado. A malha raylib indexa com 16 bits, o
// que não cobre o pior caso de um chunk, então a expansão acontece aqui;
// o padrão continua sendo o contrato do lado da CPU.
func quadsToMesh(stream []meshing.Vertex) rl.Mesh {
	quadCount := len(stream) / 4
	verts := make([]meshing.Vertex, 0, quadCount*6)
	for q := 0; q < quadCount; q++ {
		base := q * 4
		for _, p := range quadPattern {
			verts = append(verts, stream[base+int(p)])
		}
	}
	return trianglesToMesh(verts)
}

// trianglesToMesh monta a malha raylib a partir de triângulos crus,
// copiando os arrays para memória C como o raylib exige.
func trianglesToMesh(verts []meshing.Vertex) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(len(verts))
	mesh.TriangleCount = int32(len(verts) / 3)

	positions := make([]float32, 0, len(verts)*3)
	texcoords := make([]float32, 0, len(verts)*2)
	colors := make([]uint8, 0, len(verts)*4)

	for _, v := range verts {
		positions = append(positions,
			float32(v.Position[0]), float32(v.Position[1]), float32(v.Position[2]))
		texcoords = append(texcoords,
			float32(v.UV[0])*uvScale, float32(v.UV[1])*uvScale)
		c := vertexColor(v.Light, v.Shade)
		colors = append(colors, c.R, c.G, c.B, c.A)
	}

	mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&positions[0]), len(positions)*4))
	mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&texcoords[0]), len(texcoords)*4))
	mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&colors[0]), len(colors)))
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// chunkOrigin é a translação de mundo do chunk: os vértices ficam locais
// ao chunk e o offset entra no draw.
func chunkOrigin(pos util.ChunkPos) rl.Vector3 {
	return rl.Vector3{
		X: float32(pos.X) * world.CX,
		Y: 0,
		Z: float32(pos.Z) * world.CZ,
	}
}

// Draw desenha todos os chunks em três passes: opaco, modelos e por
// último o transparente com blending, para a água compor sobre o resto.
func (r *Renderer) Draw() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cm := range r.Models {
		if cm.HasOpaque {
			rl.DrawModel(cm.Opaque, chunkOrigin(cm.Pos), 1.0, rl.White)
		}
	}

	for _, cm := range r.Models {
		if cm.HasModel {
			rl.DrawModel(cm.Model, chunkOrigin(cm.Pos), 1.0, rl.White)
		}
	}

	rl.BeginBlendMode(rl.BlendAlpha)
	for _, cm := range r.Models {
		if cm.HasTransparent {
			rl.DrawModel(cm.Transparent, chunkOrigin(cm.Pos), 1.0, rl.White)
		}
	}
	rl.EndBlendMode()
}

// Remove descarta os modelos GPU de um chunk que saiu do raio de visão.
func (r *Renderer) Remove(pos util.ChunkPos) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cm, ok := r.Models[pos]; ok {
		unloadChunkModel(cm)
		delete(r.Models, pos)
	}
}

// Len reporta quantos chunks têm modelos residentes.
func (r *Renderer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Models)
}

// Unload libera todos os modelos e o atlas, no encerramento.
func (r *Renderer) Unload() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for pos, cm := range r.Models {
		unloadChunkModel(cm)
		delete(r.Models, pos)
	}
	if r.Atlas.ID != 0 {
		rl.UnloadTexture(r.Atlas)
		r.Atlas = rl.Texture2D{}
	}
}

func unloadChunkModel(cm *ChunkModel) {
	if cm.HasOpaque {
		rl.UnloadModel(cm.Opaque)
	}
	if cm.HasTransparent {
		rl.UnloadModel(cm.Transparent)
	}
	if cm.HasModel {
		rl.UnloadModel(cm.Model)
	}
}
