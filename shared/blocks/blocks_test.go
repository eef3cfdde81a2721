package blocks

import "testing"

func TestPredicateInvariants(t *testing.T) {
	tests := []struct {
		typ         Type
		opaque      bool
		transparent bool
		model       bool
		collidable  bool
	}{
		{Air, false, false, false, false},
		{Stone, true, false, false, true},
		{Grass, true, false, false, true},
		{Water, false, true, false, false},
		{Glass, false, true, false, true},
		{Dandelion, false, true, true, false},
		{Rose, false, true, true, false},
		{TallGrass, false, true, true, false},
	}

	for _, tt := range tests {
		if got := tt.typ.IsOpaque(); got != tt.opaque {
			t.Errorf("%v.IsOpaque() = %v, want %v", tt.typ, got, tt.opaque)
		}
		if got := tt.typ.IsTransparent(); got != tt.transparent {
			t.Errorf("%v.IsTransparent() = %v, want %v", tt.typ, got, tt.transparent)
		}
		if got := tt.typ.IsModel(); got != tt.model {
			t.Errorf("%v.IsModel() = %v, want %v", tt.typ, got, tt.model)
		}
		if got := tt.typ.Collidable(); got != tt.collidable {
			t.Errorf("%v.Collidable() = %v, want %v", tt.typ, got, tt.collidable)
		}
	}
}

func TestTransparentDefinition(t *testing.T) {
	// Transparente é, por definição, não-ar e não-opaco: isso deve valer
	// para todos os tipos, inclusive modelos.
	for typ := Type(0); typ < typeCount; typ++ {
		want := !typ.IsAir() && !typ.IsOpaque()
		if got := typ.IsTransparent(); got != want {
			t.Errorf("%v.IsTransparent() = %v, want %v", typ, got, want)
		}
	}
}

func TestModelTemplates(t *testing.T) {
	for typ := Type(0); typ < typeCount; typ++ {
		verts := ModelVertices(typ)
		if typ.IsModel() {
			if len(verts) != 12 {
				t.Errorf("ModelVertices(%v) tem %d vértices, esperado 12", typ, len(verts))
			}
			for _, v := range verts {
				for _, c := range v.Position {
					if c > 1 {
						t.Errorf("ModelVertices(%v): posição fora do cubo unitário: %v", typ, v.Position)
					}
				}
			}
		} else if verts != nil {
			t.Errorf("ModelVertices(%v) = %d vértices, esperado nil", typ, len(verts))
		}
	}
}

func TestGetBlockTextureGrassFaces(t *testing.T) {
	top := GetBlockTexture(Grass, FaceTop)
	side := GetBlockTexture(Grass, FaceLeft)
	bottom := GetBlockTexture(Grass, FaceBottom)
	dirt := GetBlockTexture(Dirt, FaceTop)

	if top == side {
		t.Error("grama: topo e lateral não deveriam usar o mesmo tile")
	}
	if bottom != dirt {
		t.Error("grama: o fundo deveria usar o tile de terra")
	}
}
