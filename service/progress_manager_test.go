package service

import (
	"bytes"
	"testing"

	"github.com/ludo-technologies/csannotate/domain"
)

func TestNewProgressManager_NonInteractive(t *testing.T) {
	// When disabled, should return NoOpProgressManager
	pm := NewProgressManager(false)
	if pm.IsInteractive() {
		t.Error("expected non-interactive progress manager when disabled")
	}

	// Should implement the interface
	var _ domain.ProgressManager = pm
}

func TestNewProgressManager_CI(t *testing.T) {
	t.Setenv("CI", "true")

	if IsInteractiveEnvironment() {
		t.Error("expected CI environment to be non-interactive")
	}
	if NewProgressManager(true).IsInteractive() {
		t.Error("expected no-op progress manager in CI")
	}
}

func TestNoOpProgressManager(t *testing.T) {
	pm := &NoOpProgressManager{}

	if pm.IsInteractive() {
		t.Error("expected NoOpProgressManager.IsInteractive() to return false")
	}

	task := pm.StartTask("test", 100)
	if task == nil {
		t.Fatal("expected non-nil task from StartTask")
	}

	// All operations should be no-ops (not panic)
	task.Increment(10)
	task.Describe("testing")
	task.Complete()

	pm.Close()
}

func TestProgressManagerImpl_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	pm := &ProgressManagerImpl{writer: &buf}

	task := pm.StartTask("Reading Checkstyle reports", 2)
	task.Increment(1)
	task.Describe("second")
	task.Increment(1)
	task.Complete()
	pm.Close()

	if !pm.IsInteractive() {
		t.Error("expected ProgressManagerImpl.IsInteractive() to return true")
	}
	if buf.Len() == 0 {
		t.Error("expected progress output on the writer")
	}
	if len(pm.tasks) != 0 {
		t.Errorf("expected tasks to be released on Close, got %d", len(pm.tasks))
	}
}

func TestProgressManagerImpl_Interface(t *testing.T) {
	var _ domain.ProgressManager = &ProgressManagerImpl{}
	var _ domain.TaskProgress = &TaskProgressImpl{}
	var _ domain.TaskProgress = &NoOpTaskProgress{}
}
