// Package solvertest 提供测试用的确定性求解引擎
package solvertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/kron12345/coreplanx/pkg/solver"
)

// maxExhaustiveVars 穷举引擎能处理的变量上限
const maxExhaustiveVars = 24

// Exhaustive 穷举搜索引擎
//
// 枚举全部0/1组合，返回满足约束且目标值最大的赋值。平局时取枚举序
// 最靠前的组合，因此结果完全确定，与随机种子无关。仅用于小规模测试。
type Exhaustive struct{}

// NewExhaustive 创建穷举引擎
func NewExhaustive() *Exhaustive {
	return &Exhaustive{}
}

// Solve 实现solver.Engine
func (e *Exhaustive) Solve(_ context.Context, m *solver.Model, _ solver.Options) (*solver.Result, error) {
	if m.VarCount > maxExhaustiveVars {
		return nil, fmt.Errorf("穷举引擎最多支持%d个变量，实际%d个", maxExhaustiveVars, m.VarCount)
	}

	bestMask := -1
	var bestObjective int64

	for mask := 0; mask < 1<<uint(m.VarCount); mask++ {
		if !feasible(m, mask) {
			continue
		}
		objective := evaluate(m, mask)
		if bestMask < 0 || objective > bestObjective {
			bestMask = mask
			bestObjective = objective
		}
	}

	if bestMask < 0 {
		return &solver.Result{Status: solver.StatusInfeasible}, nil
	}

	values := make([]bool, m.VarCount)
	for i := range values {
		values[i] = bestMask&(1<<uint(i)) != 0
	}
	return &solver.Result{
		Status:    solver.StatusOptimal,
		Values:    values,
		Objective: bestObjective,
	}, nil
}

func feasible(m *solver.Model, mask int) bool {
	for _, c := range m.Constraints {
		var sum int64
		for _, v := range c.Vars {
			if mask&(1<<uint(v)) != 0 {
				sum++
			}
		}
		if sum > c.Bound {
			return false
		}
	}
	return true
}

func evaluate(m *solver.Model, mask int) int64 {
	var objective int64
	for _, term := range m.Objective {
		if mask&(1<<uint(term.Var)) != 0 {
			objective += term.Weight
		}
	}
	return objective
}

// Fixed 返回固定结果的桩引擎，用于测试降级路径
type Fixed struct {
	Result *solver.Result
	Err    error
}

// Solve 实现solver.Engine
func (f *Fixed) Solve(_ context.Context, _ *solver.Model, _ solver.Options) (*solver.Result, error) {
	return f.Result, f.Err
}

// Recording 包装引擎并记录每次调用的模型与选项
type Recording struct {
	Inner   solver.Engine
	mu      sync.Mutex
	Models  []*solver.Model
	Options []solver.Options
}

// Solve 实现solver.Engine
func (r *Recording) Solve(ctx context.Context, m *solver.Model, opts solver.Options) (*solver.Result, error) {
	r.mu.Lock()
	r.Models = append(r.Models, m)
	r.Options = append(r.Options, opts)
	r.mu.Unlock()
	return r.Inner.Solve(ctx, m, opts)
}
