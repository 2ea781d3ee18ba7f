// Package cpsat 提供基于OR-Tools CP-SAT的求解引擎实现
package cpsat

import (
	"context"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"

	"github.com/kron12345/coreplanx/pkg/solver"
)

// Engine CP-SAT求解引擎
//
// 每次调用构建独立的模型，不持有共享状态，可被多个goroutine并发使用。
type Engine struct{}

// New 创建CP-SAT引擎
func New() *Engine {
	return &Engine{}
}

// Solve 实现solver.Engine
func (e *Engine) Solve(ctx context.Context, m *solver.Model, opts solver.Options) (*solver.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := cpmodel.NewCpModelBuilder()

	vars := make([]cpmodel.BoolVar, m.VarCount)
	for i := range vars {
		vars[i] = builder.NewBoolVar()
	}

	for _, c := range m.Constraints {
		expr := cpmodel.NewLinearExpr()
		for _, v := range c.Vars {
			expr.Add(vars[v])
		}
		builder.AddLessOrEqual(expr, cpmodel.NewConstant(c.Bound))
	}

	objective := cpmodel.NewLinearExpr()
	for _, term := range m.Objective {
		objective.AddTerm(vars[term.Var], term.Weight)
	}
	builder.Maximize(objective)

	modelProto, err := builder.Model()
	if err != nil {
		return nil, err
	}

	params := &sppb.SatParameters{}
	if opts.TimeLimit > 0 {
		params.MaxTimeInSeconds = proto.Float64(opts.TimeLimit.Seconds())
	}
	if opts.RandomSeed != nil {
		params.RandomSeed = proto.Int32(int32(*opts.RandomSeed))
	}

	response, err := cpmodel.SolveCpModelWithParameters(modelProto, params)
	if err != nil {
		return nil, err
	}

	result := &solver.Result{Status: statusOf(response.GetStatus())}
	if result.Status.Solved() {
		result.Values = make([]bool, m.VarCount)
		for i, v := range vars {
			result.Values[i] = cpmodel.SolutionBooleanValue(response, v)
		}
		result.Objective = int64(response.GetObjectiveValue())
	}
	return result, nil
}

// statusOf 映射CP-SAT状态码
func statusOf(status cmpb.CpSolverStatus) solver.Status {
	switch status {
	case cmpb.CpSolverStatus_OPTIMAL:
		return solver.StatusOptimal
	case cmpb.CpSolverStatus_FEASIBLE:
		return solver.StatusFeasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		return solver.StatusInfeasible
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return solver.StatusModelInvalid
	default:
		return solver.StatusUnknown
	}
}
