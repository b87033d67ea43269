package entity

import (
	"testing"
)

func TestLookupModel_KnownIDs(t *testing.T) {
	tests := []struct {
		id        ModelID
		wantVerts int
		wantEdges int
	}{
		{ModelCubeSimple, 8, 12},
		{ModelTetrahedron, 4, 6},
		{ModelJagged, 8, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			model, err := LookupModel(tt.id)
			if err != nil {
				t.Fatalf("LookupModel(%q): %v", tt.id, err)
			}
			if len(model.Vertices) != tt.wantVerts {
				t.Errorf("vertices = %d, want %d", len(model.Vertices), tt.wantVerts)
			}
			if len(model.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(model.Edges), tt.wantEdges)
			}
		})
	}
}

func TestLookupModel_UnknownIDIsError(t *testing.T) {
	if _, err := LookupModel("asteroid_banana"); err == nil {
		t.Error("expected error for unknown model id")
	}
}

func TestJaggedModel_DeterministicAcrossCalls(t *testing.T) {
	a := jaggedModel()
	b := jaggedModel()
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs between builds: %v vs %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestJaggedModel_IsPerturbedCube(t *testing.T) {
	model, err := LookupModel(ModelJagged)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range model.Vertices {
		base := cubeVertices[i].Scale(1.2)
		d := v.Sub(base)
		for _, c := range []float64{d.X, d.Y, d.Z} {
			if c < -0.3 || c > 0.3 {
				t.Errorf("vertex %d jitter %v outside [-0.3, 0.3]", i, d)
			}
		}
	}
}

func TestModelIDs_StableOrderAndCopy(t *testing.T) {
	ids := ModelIDs()
	if len(ids) != 3 || ids[0] != ModelCubeSimple || ids[1] != ModelTetrahedron || ids[2] != ModelJagged {
		t.Errorf("ModelIDs() = %v", ids)
	}

	ids[0] = "mutated"
	if got := ModelIDs(); got[0] != ModelCubeSimple {
		t.Error("ModelIDs() returned a shared slice")
	}
}
