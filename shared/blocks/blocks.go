package blocks

// Type identifica o tipo de um bloco. Todos os predicados derivam dele.
type Type uint8

const (
	Air Type = iota
	Stone
	Dirt
	Grass
	Sand
	Gravel
	Log
	Planks
	Leaves
	Glass
	Water
	Dandelion
	Rose
	DeadBush
	TallGrass
	typeCount
)

// Face identifica uma das seis faces axiais de um cubo.
// A ordem é relevante: ela indexa a tabela de sombreamento por face
// e os templates de quad do mesher.
type Face uint8

const (
	FaceTop Face = iota // +Y
	FaceBottom          // -Y
	FaceFront           // +Z
	FaceBack            // -Z
	FaceLeft            // -X
	FaceRight           // +X
	FaceCount
)

// properties descreve o comportamento fixo de um tipo de bloco.
type properties struct {
	name        string
	opaque      bool
	model       bool
	castsShadow bool
	collidable  bool
}

var table = [typeCount]properties{
	Air:       {name: "air"},
	Stone:     {name: "stone", opaque: true, castsShadow: true, collidable: true},
	Dirt:      {name: "dirt", opaque: true, castsShadow: true, collidable: true},
	Grass:     {name: "grass", opaque: true, castsShadow: true, collidable: true},
	Sand:      {name: "sand", opaque: true, castsShadow: true, collidable: true},
	Gravel:    {name: "gravel", opaque: true, castsShadow: true, collidable: true},
	Log:       {name: "log", opaque: true, castsShadow: true, collidable: true},
	Planks:    {name: "planks", opaque: true, castsShadow: true, collidable: true},
	Leaves:    {name: "leaves", opaque: true, castsShadow: true, collidable: true},
	Glass:     {name: "glass", collidable: true},
	Water:     {name: "water"},
	Dandelion: {name: "dandelion", model: true},
	Rose:      {name: "rose", model: true},
	DeadBush:  {name: "dead_bush", model: true},
	TallGrass: {name: "tall_grass", model: true},
}

// String retorna o nome do tipo (usado em HUD e logs).
func (t Type) String() string {
	if t >= typeCount {
		return "unknown"
	}
	return table[t].name
}

// IsAir reporta se o tipo é ar (célula vazia).
func (t Type) IsAir() bool { return t == Air }

// IsOpaque reporta se o bloco oclui completamente as faces vizinhas.
func (t Type) IsOpaque() bool {
	if t >= typeCount {
		return false
	}
	return table[t].opaque
}

// IsTransparent reporta se o bloco participa da elisão de faces entre
// blocos do mesmo tipo. Por definição: não-ar e não-opaco.
func (t Type) IsTransparent() bool {
	return !t.IsAir() && !t.IsOpaque()
}

// IsModel reporta se o bloco é renderizado a partir de um template de
// vértices (billboards cruzados) em vez de faces de cubo.
func (t Type) IsModel() bool {
	if t >= typeCount {
		return false
	}
	return table[t].model
}

// CastsShadow reporta se o bloco escurece as faces superiores abaixo dele.
func (t Type) CastsShadow() bool {
	if t >= typeCount {
		return false
	}
	return table[t].castsShadow
}

// Collidable reporta se o bloco gera um ator estático na cena física.
func (t Type) Collidable() bool {
	if t >= typeCount {
		return false
	}
	return table[t].collidable
}

// Block é o valor imutável de uma célula do grid de um chunk.
type Block struct {
	Type Type
}

func (b Block) IsAir() bool         { return b.Type.IsAir() }
func (b Block) IsOpaque() bool      { return b.Type.IsOpaque() }
func (b Block) IsTransparent() bool { return b.Type.IsTransparent() }
func (b Block) IsModel() bool       { return b.Type.IsModel() }
func (b Block) CastsShadow() bool   { return b.Type.CastsShadow() }
func (b Block) Collidable() bool    { return b.Type.Collidable() }
