package globe

import "testing"

func TestFrameLoopStartsRunning(t *testing.T) {
	l := &frameLoop{}
	if !l.Running() {
		t.Fatal("new loop should be running")
	}
}

func TestFrameLoopPauseIdempotent(t *testing.T) {
	l := &frameLoop{}
	l.Pause()
	l.Pause()
	if l.Running() {
		t.Fatal("double pause should leave the loop halted")
	}
	l.Resume()
	if !l.Running() {
		t.Fatal("resume after double pause should run")
	}
}

func TestFrameLoopResumeIdempotent(t *testing.T) {
	l := &frameLoop{}
	l.Pause()
	l.Resume()
	l.Resume()
	if !l.Running() {
		t.Fatal("double resume should leave the loop running")
	}
}

func TestFrameLoopHiddenHalts(t *testing.T) {
	l := &frameLoop{}
	l.SetHidden(true)
	if l.Running() {
		t.Fatal("hidden window should halt the loop")
	}
	l.SetHidden(false)
	if !l.Running() {
		t.Fatal("visible window should release the halt")
	}
}

func TestFrameLoopExplicitPauseSurvivesVisibility(t *testing.T) {
	l := &frameLoop{}
	l.Pause()
	l.SetHidden(true)
	l.SetHidden(false)
	if l.Running() {
		t.Fatal("restoring the window must not override an explicit pause")
	}
	l.Resume()
	if !l.Running() {
		t.Fatal("resume should release the explicit pause")
	}
}

func TestFrameLoopResumeWhileHidden(t *testing.T) {
	l := &frameLoop{}
	l.SetHidden(true)
	l.Resume()
	if l.Running() {
		t.Fatal("resume must not run the loop while the window is hidden")
	}
}

func TestFrameLoopDisposePermanent(t *testing.T) {
	l := &frameLoop{}
	l.Dispose()
	if l.Running() {
		t.Fatal("disposed loop should not run")
	}
	l.Resume()
	if l.Running() {
		t.Fatal("resume after dispose should not run")
	}
}
