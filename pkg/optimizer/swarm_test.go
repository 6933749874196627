package optimizer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/youban/youban/pkg/model"
)

func newTestSwarm(seed int64) *SwarmSolver {
	cfg := testConfig()
	e := NewEvaluator(DefaultWeights())
	return NewSwarmSolver(cfg, e, NewEnforcer(nil), rand.New(rand.NewSource(seed)))
}

func TestSwarmSolver_Solve(t *testing.T) {
	s := newTestSwarm(42)
	run := s.Solve(context.Background(), testProblem())

	if run.Algorithm != model.AlgorithmSwarm {
		t.Errorf("Expected algorithm %s, got %s", model.AlgorithmSwarm, run.Algorithm)
	}
	if run.Candidate == nil || run.Candidate.IsEmpty() {
		t.Fatal("Expected non-empty candidate")
	}
	if run.Metadata["swarm_size"] != 10 {
		t.Errorf("Expected swarm_size metadata 10, got %f", run.Metadata["swarm_size"])
	}
}

func TestSwarmSolver_HistoryNonDecreasing(t *testing.T) {
	s := newTestSwarm(7)
	run := s.Solve(context.Background(), testProblem())

	// 历史记录全局最优，单调不减
	for i := 1; i < len(run.History); i++ {
		if run.History[i] < run.History[i-1] {
			t.Fatalf("Global best history must be non-decreasing: history[%d]=%f < history[%d]=%f",
				i, run.History[i], i-1, run.History[i-1])
		}
	}

	if len(run.History) > 0 && run.Fitness != run.History[len(run.History)-1] {
		t.Errorf("Final fitness %f should equal last history entry %f",
			run.Fitness, run.History[len(run.History)-1])
	}
}

func TestSwarmSolver_Deterministic(t *testing.T) {
	run1 := newTestSwarm(99).Solve(context.Background(), testProblem())
	run2 := newTestSwarm(99).Solve(context.Background(), testProblem())

	if run1.Fitness != run2.Fitness {
		t.Errorf("Same seed should yield same fitness: %f vs %f", run1.Fitness, run2.Fitness)
	}
}

func TestSwarmSolver_EmptyProblem(t *testing.T) {
	s := newTestSwarm(1)
	run := s.Solve(context.Background(), model.NewProblem(nil, nil))

	if run.Fitness != 0 || !run.Candidate.IsEmpty() {
		t.Error("Empty problem should yield zero-fitness empty run")
	}
}
