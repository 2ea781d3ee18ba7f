package planner

import (
	"context"
	"testing"
	"time"

	"github.com/kron12345/coreplanx/pkg/model"
	"github.com/kron12345/coreplanx/pkg/solver/solvertest"
)

// TestPlanner_EngineOptions 请求选项正确传递给引擎
func TestPlanner_EngineOptions(t *testing.T) {
	recorder := &solvertest.Recording{Inner: solvertest.NewExhaustive()}
	p := New(recorder, Config{DefaultTimeLimit: 30 * time.Second})

	limit := 2.5
	seed := int64(42)
	req := &model.SolveRequest{
		RulesetID: "rs1",
		Candidates: []model.Candidate{
			candidate("a", "X", model.Params{"gapMinutes": model.NumberParam(5)}),
		},
		Options: model.SolverOptions{TimeLimitSeconds: &limit, RandomSeed: &seed},
	}
	p.Solve(context.Background(), req)

	if len(recorder.Options) != 1 {
		t.Fatalf("引擎调用次数 = %d, expected 1", len(recorder.Options))
	}
	opts := recorder.Options[0]
	if opts.TimeLimit != 2500*time.Millisecond {
		t.Errorf("TimeLimit = %v, expected 2.5s", opts.TimeLimit)
	}
	if opts.RandomSeed == nil || *opts.RandomSeed != 42 {
		t.Errorf("RandomSeed = %v, expected 42", opts.RandomSeed)
	}
}

// TestPlanner_DefaultTimeLimit 请求未指定时使用配置的默认时间上限
func TestPlanner_DefaultTimeLimit(t *testing.T) {
	recorder := &solvertest.Recording{Inner: solvertest.NewExhaustive()}
	p := New(recorder, Config{DefaultTimeLimit: 30 * time.Second})

	req := &model.SolveRequest{
		RulesetID: "rs1",
		Candidates: []model.Candidate{
			candidate("a", "X", nil),
		},
	}
	p.Solve(context.Background(), req)

	if recorder.Options[0].TimeLimit != 30*time.Second {
		t.Errorf("TimeLimit = %v, expected 30s", recorder.Options[0].TimeLimit)
	}
	if recorder.Options[0].RandomSeed != nil {
		t.Errorf("RandomSeed = %v, expected nil", recorder.Options[0].RandomSeed)
	}
}

// TestPlanner_ModeSelection problem带分组时走模式b，否则模式a
func TestPlanner_ModeSelection(t *testing.T) {
	p := newTestPlanner()

	modeA := p.Solve(context.Background(), &model.SolveRequest{
		RulesetID: "rs1",
		Problem:   &model.Problem{}, // 空problem不触发模式b
	})
	if modeA.Status != StatusNoCandidates {
		t.Errorf("空problem应走模式a, Status = %q", modeA.Status)
	}

	modeB := p.Solve(context.Background(), problemRequest(model.Group{ID: "g1"}))
	if len(modeB.DutyGroups) != 1 {
		t.Errorf("模式b应产生DutyGroups, got %v", modeB.DutyGroups)
	}
}
