package optimizer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/youban/youban/pkg/model"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	// 测试用小规模配置
	cfg.PopulationSize = 20
	cfg.MaxGenerations = 30
	cfg.MaxIterations = 200
	cfg.SwarmSize = 10
	return cfg
}

func newTestGenetic(seed int64) *GeneticSolver {
	cfg := testConfig()
	e := NewEvaluator(DefaultWeights())
	return NewGeneticSolver(cfg, e, NewEnforcer(nil), rand.New(rand.NewSource(seed)))
}

func TestGeneticSolver_Solve(t *testing.T) {
	s := newTestGenetic(42)
	run := s.Solve(context.Background(), testProblem())

	if run.Algorithm != model.AlgorithmGenetic {
		t.Errorf("Expected algorithm %s, got %s", model.AlgorithmGenetic, run.Algorithm)
	}
	if run.Candidate == nil || run.Candidate.IsEmpty() {
		t.Fatal("Expected non-empty candidate")
	}
	if run.Fitness < 0 {
		t.Errorf("Fitness must be non-negative, got %f", run.Fitness)
	}
	if run.Iterations == 0 {
		t.Error("Expected at least one generation")
	}
	if len(run.History) == 0 {
		t.Error("Expected convergence history")
	}
	if run.Metadata["population_size"] != 20 {
		t.Errorf("Expected population_size metadata 20, got %f", run.Metadata["population_size"])
	}
}

func TestGeneticSolver_HistoryNonDecreasing(t *testing.T) {
	s := newTestGenetic(7)
	run := s.Solve(context.Background(), testProblem())

	// 精英保留保证每代最优适应度单调不减
	for i := 1; i < len(run.History); i++ {
		if run.History[i] < run.History[i-1] {
			t.Fatalf("History must be non-decreasing: history[%d]=%f < history[%d]=%f",
				i, run.History[i], i-1, run.History[i-1])
		}
	}
}

func TestGeneticSolver_Deterministic(t *testing.T) {
	run1 := newTestGenetic(99).Solve(context.Background(), testProblem())
	run2 := newTestGenetic(99).Solve(context.Background(), testProblem())

	if run1.Fitness != run2.Fitness {
		t.Errorf("Same seed should yield same fitness: %f vs %f", run1.Fitness, run2.Fitness)
	}
	if run1.Iterations != run2.Iterations {
		t.Errorf("Same seed should yield same iterations: %d vs %d", run1.Iterations, run2.Iterations)
	}
}

func TestGeneticSolver_EmptyProblem(t *testing.T) {
	s := newTestGenetic(1)
	run := s.Solve(context.Background(), model.NewProblem(nil, nil))

	if run.Fitness != 0 {
		t.Errorf("Empty problem should score 0, got %f", run.Fitness)
	}
	if !run.Candidate.IsEmpty() {
		t.Error("Empty problem should yield empty candidate")
	}
}

func TestGeneticSolver_CanceledContext(t *testing.T) {
	s := newTestGenetic(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := s.Solve(ctx, testProblem())
	if run == nil {
		t.Fatal("Canceled context should still return a run")
	}
	if run.Candidate == nil {
		t.Error("Canceled run should carry the current best candidate")
	}
}

func TestCrossover_PreservesDims(t *testing.T) {
	s := newTestGenetic(5)
	p := testProblem()

	p1 := NewMutator(rand.New(rand.NewSource(1))).Random(p)
	p2 := NewMutator(rand.New(rand.NewSource(2))).Random(p)

	c1, c2 := s.crossover(p1, p2)
	if c1.Dims() != p.Dims() || c2.Dims() != p.Dims() {
		t.Errorf("Children must keep dims %d, got %d and %d", p.Dims(), c1.Dims(), c2.Dims())
	}
}
