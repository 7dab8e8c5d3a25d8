package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

func newTestEntity(options ...EntityBuilderOption) Entity {
	return NewEntity(append([]EntityBuilderOption{WithModel(model.NewTriangle("tri"))}, options...)...)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := NewScene("test")
	first := s.Add(newTestEntity())
	second := s.Add(newTestEntity())
	if first == 0 || second != first+1 {
		t.Fatalf("expected sequential IDs, got %d and %d", first, second)
	}
	if s.Get(first) == nil || s.Get(second) == nil {
		t.Fatal("expected entities to be retrievable by ID")
	}
	if s.Count() != 2 {
		t.Fatalf("expected 2 entities, got %d", s.Count())
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := NewScene("test")
	id := s.Add(newTestEntity())
	s.Add(newTestEntity())

	s.Remove(id)
	if s.Get(id) != nil {
		t.Fatal("expected removed entity to be gone")
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 entity after removal, got %d", s.Count())
	}

	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("expected empty scene after Clear, got %d", s.Count())
	}
}

func TestUpdateProducesDrawCallsInOrder(t *testing.T) {
	s := NewScene("test", WithComputeWorkers(2))
	s.Add(newTestEntity(WithTexturePath("a.png")))
	s.Add(newTestEntity(WithTexturePath("b.png")))
	s.Add(newTestEntity(WithTexturePath("c.png")))

	if err := s.Update(1280, 720); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := s.DrawCalls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 draw calls, got %d", len(calls))
	}
	for i, want := range []string{"a.png", "b.png", "c.png"} {
		if calls[i].TexturePath != want {
			t.Fatalf("expected draw call %d texture %q, got %q", i, want, calls[i].TexturePath)
		}
	}
}

func TestUpdateSkipsHiddenAndModellessEntities(t *testing.T) {
	s := NewScene("test")
	s.Add(newTestEntity(WithVisible(false)))
	s.Add(NewEntity()) // no model
	s.Add(newTestEntity())

	if err := s.Update(1280, 720); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.DrawCalls()) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(s.DrawCalls()))
	}
}

func TestSubmitEditAppliedBeforeMatrixBuild(t *testing.T) {
	s := NewScene("test")
	e := newTestEntity()
	s.Add(e)

	s.SubmitEdit(func() {
		tr := e.Transform()
		tr.Translate = [3]float32{5, 0, 0}
		e.SetTransform(tr)
	})

	if err := s.Update(1280, 720); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := s.DrawCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(calls))
	}
	if calls[0].Transform.World[12] != 5 {
		t.Fatalf("expected edit to move entity before matrix build, got tx=%v", calls[0].Transform.World[12])
	}
}

func TestUpdateIdentityCameraPerspective(t *testing.T) {
	s := NewScene("test")
	s.Add(newTestEntity())

	if err := s.Update(1280, 720); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := s.DrawCalls()[0]

	// Identity world and camera: WVP reduces to the projection matrix.
	if call.Transform.WVP[11] != 1 || call.Transform.WVP[15] != 0 {
		t.Fatalf("expected perspective projection in WVP, got m11=%v m15=%v",
			call.Transform.WVP[11], call.Transform.WVP[15])
	}
	if call.Material.EnableLighting != 1 {
		t.Fatal("expected lighting enabled by default")
	}
	if call.Material.UVTransform[0] != 1 || call.Material.UVTransform[5] != 1 {
		t.Fatal("expected identity UV transform by default")
	}
}

func TestUpdateOrthographicProjection(t *testing.T) {
	s := NewScene("test")
	s.Add(newTestEntity(
		WithProjection(ProjectionOrthographic),
		WithLightingEnabled(false),
	))

	if err := s.Update(800, 600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := s.DrawCalls()[0]

	// Identity world and camera: WVP reduces to the pixel-space ortho matrix.
	if call.Transform.WVP[12] != -1 || call.Transform.WVP[13] != 1 {
		t.Fatalf("expected top-left pixel origin, got m12=%v m13=%v",
			call.Transform.WVP[12], call.Transform.WVP[13])
	}
	if call.Material.EnableLighting != 0 {
		t.Fatal("expected lighting disabled")
	}
}

func TestUpdateSingularCameraTransform(t *testing.T) {
	s := NewScene("test")
	cam := common.DefaultTransform()
	cam.Scale = [3]float32{0, 0, 0}
	s.Add(newTestEntity(WithCameraTransform(cam)))

	err := s.Update(1280, 720)
	if !errors.Is(err, ErrSingularCameraTransform) {
		t.Fatalf("expected ErrSingularCameraTransform, got %v", err)
	}
	if len(s.DrawCalls()) != 0 {
		t.Fatal("expected no draw call for the failed entity")
	}
}

func TestSharedModelEntitiesKeepDistinctUniforms(t *testing.T) {
	shared := model.NewTriangle("shared")
	s := NewScene("test")

	near := NewEntity(WithModel(shared))
	far := NewEntity(WithModel(shared))
	tr := far.Transform()
	tr.Translate = [3]float32{5, 0, 0}
	far.SetTransform(tr)

	nearID := s.Add(near)
	farID := s.Add(far)

	if err := s.Update(1280, 720); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := s.DrawCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(calls))
	}
	if calls[0].ID != nearID || calls[1].ID != farID {
		t.Fatalf("expected call IDs %d and %d, got %d and %d", nearID, farID, calls[0].ID, calls[1].ID)
	}
	if calls[0].Transform.World[12] == calls[1].Transform.World[12] {
		t.Fatal("expected distinct world matrices for entities sharing a model")
	}
}

func TestUpdateRebuildsHiddenEntityMatrices(t *testing.T) {
	s := NewScene("test")
	cam := common.DefaultTransform()
	cam.Scale = [3]float32{0, 0, 0}
	s.Add(newTestEntity(WithCameraTransform(cam), WithVisible(false)))

	err := s.Update(1280, 720)
	if !errors.Is(err, ErrSingularCameraTransform) {
		t.Fatalf("expected ErrSingularCameraTransform, got %v", err)
	}
	if len(s.DrawCalls()) != 0 {
		t.Fatal("expected no draw call for the hidden entity")
	}
}

func TestEntityLightOverridesSceneLight(t *testing.T) {
	sceneLight := light.NewLight(light.WithColor(1, 0, 0, 1))
	entityLight := light.NewLight(light.WithColor(0, 1, 0, 1))

	s := NewScene("test", WithSceneLight(sceneLight))
	s.Add(newTestEntity())
	s.Add(newTestEntity(WithLight(entityLight)))

	if err := s.Update(1280, 720); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := s.DrawCalls()
	if calls[0].Light.Color != [4]float32{1, 0, 0, 1} {
		t.Fatalf("expected scene light on first entity, got %v", calls[0].Light.Color)
	}
	if calls[1].Light.Color != [4]float32{0, 1, 0, 1} {
		t.Fatalf("expected entity light override on second entity, got %v", calls[1].Light.Color)
	}
}

func TestCameraWorldPositionFromTransform(t *testing.T) {
	cam := common.DefaultTransform()
	cam.Translate = [3]float32{0, 2, -10}

	s := NewScene("test")
	s.Add(newTestEntity(WithCameraTransform(cam)))

	if err := s.Update(1280, 720); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := s.DrawCalls()[0]
	if call.Camera.WorldPosition != [3]float32{0, 2, -10} {
		t.Fatalf("unexpected camera position: %v", call.Camera.WorldPosition)
	}
}
