package renderer

import "testing"

func TestWorkerPool_Defaults(t *testing.T) {
	if DefaultWorkers() < 1 {
		t.Fatalf("Expected at least one default worker, got %d", DefaultWorkers())
	}

	pool := NewWorkerPool(0, 4)
	if pool.GetNumWorkers() != DefaultWorkers() {
		t.Errorf("Expected %d workers, got %d", DefaultWorkers(), pool.GetNumWorkers())
	}

	// Start and Stop are safe to repeat
	pool.Start()
	pool.Start()
	pool.Stop()
	pool.Stop()

	if _, ok := pool.GetResult(); ok {
		t.Error("Expected closed result queue after Stop")
	}
}

func TestWorkerPool_RefusesTasksAfterStop(t *testing.T) {
	pool := NewWorkerPool(1, 2)
	if pool.Stopped() {
		t.Fatal("New pool should not be stopped")
	}
	pool.Stop()

	if !pool.Stopped() {
		t.Error("Expected Stopped after Stop")
	}
	if pool.SubmitTask(RowTask{Row: 0}) {
		t.Error("Expected a stopped pool to refuse tasks")
	}
}

func TestHostSummary(t *testing.T) {
	if HostSummary() == "" {
		t.Error("Expected a host description")
	}
}
