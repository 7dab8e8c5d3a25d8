package input

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
)

func TestIsDownRequiresNewFrame(t *testing.T) {
	in := NewInput()
	in.PushKeyDown(common.KeyW)

	if in.IsDown(common.KeyW) {
		t.Fatal("expected key to be invisible before NewFrame")
	}

	in.NewFrame()
	if !in.IsDown(common.KeyW) {
		t.Fatal("expected key to be down after NewFrame")
	}
}

func TestWasPressedEdgeDetection(t *testing.T) {
	in := NewInput()
	in.PushKeyDown(common.KeySpace)

	in.NewFrame()
	if !in.WasPressed(common.KeySpace) {
		t.Fatal("expected press on first frame after key down")
	}

	in.NewFrame()
	if in.WasPressed(common.KeySpace) {
		t.Fatal("expected no press while key is held")
	}
	if !in.IsDown(common.KeySpace) {
		t.Fatal("expected key to remain down while held")
	}

	in.PushKeyUp(common.KeySpace)
	in.NewFrame()
	if in.IsDown(common.KeySpace) {
		t.Fatal("expected key to be up after release")
	}

	in.PushKeyDown(common.KeySpace)
	in.NewFrame()
	if !in.WasPressed(common.KeySpace) {
		t.Fatal("expected press after release and re-press")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	in := NewInput()
	in.PushKeyDown(common.KeyUnknown)
	in.NewFrame()
	if in.IsDown(common.KeyUnknown) {
		t.Fatal("expected unknown key events to be dropped")
	}
}
