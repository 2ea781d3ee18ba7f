// Package planner 实现组合指派核心
//
// 两种求解模式：
//   - 模式a：扁平候选列表，按(serviceId, type)容量约束做最大权选择；
//   - 模式b：按分组给出活动与候选衔接，对每个分组独立求最大权匹配，
//     再从选中衔接重建乘务链。
//
// 精确的组合搜索委托给solver.Engine；本包只负责建模、权重、
// 乘务链重建与状态聚合，任何输入都会得到结构完整的响应。
package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kron12345/coreplanx/pkg/logger"
	"github.com/kron12345/coreplanx/pkg/model"
	"github.com/kron12345/coreplanx/pkg/solver"
)

// Config 求解核心配置
type Config struct {
	// Workers 分组并行求解的工作协程数
	Workers int
	// DefaultTimeLimit 请求未指定timeLimitSeconds时的引擎时间上限；0表示不限制
	DefaultTimeLimit time.Duration
}

// Planner 组合指派求解核心
type Planner struct {
	engine           solver.Engine
	workers          int
	defaultTimeLimit time.Duration
}

// New 创建求解核心
func New(engine solver.Engine, cfg Config) *Planner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	return &Planner{
		engine:           engine,
		workers:          workers,
		defaultTimeLimit: cfg.DefaultTimeLimit,
	}
}

// Solve 执行求解；总是返回结构完整的响应，不存在失败路径
func (p *Planner) Solve(ctx context.Context, req *model.SolveRequest) *model.SolveResponse {
	if req.HasProblem() {
		return p.solveProblem(ctx, req)
	}
	return p.solveCandidates(ctx, req)
}

// solveProblem 模式b：各分组独立求解后合并
func (p *Planner) solveProblem(ctx context.Context, req *model.SolveRequest) *model.SolveResponse {
	groups := req.Problem.Groups
	outcomes := make([]groupOutcome, len(groups))

	// 分组之间只共享只读输入，并行求解后按输入顺序合并，保证输出确定
	jobs := make(chan int, len(groups))
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				outcomes[index] = p.solveGroup(ctx, groups[index], req.Options)
			}
		}()
	}
	for index := range groups {
		jobs <- index
	}
	close(jobs)
	wg.Wait()

	dutyGroups := make([]model.DutyGroup, len(groups))
	statuses := make([]string, len(groups))
	totalEdges := 0
	selectedEdges := 0
	totalActivities := 0
	dutyCount := 0

	for i, group := range groups {
		outcome := outcomes[i]
		dutyGroups[i] = model.DutyGroup{
			GroupID:   group.ID,
			OwnerID:   group.OwnerID,
			OwnerKind: group.OwnerKind,
			DayKey:    group.DayKey,
			Duties:    outcome.Duties,
		}
		statuses[i] = outcome.Status
		totalEdges += outcome.TotalEdges
		selectedEdges += outcome.SelectedEdges
		totalActivities += len(group.Activities)
		dutyCount += len(outcome.Duties)
	}

	overall := aggregateStatus(statuses)

	logger.Info().
		Str("status", overall).
		Int("groups", len(groups)).
		Int("duties", dutyCount).
		Int("activities", totalActivities).
		Msg("分组求解完成")

	return &model.SolveResponse{
		Summary:     fmt.Sprintf("%d duties from %d activities (status: %s).", dutyCount, totalActivities, overall),
		SelectedIDs: []string{},
		DutyGroups:  dutyGroups,
		Status:      overall,
		Stats: model.SolverStats{
			TotalCandidates:    totalEdges,
			SelectedCandidates: selectedEdges,
			GroupCount:         len(groups),
		},
	}
}

// runEngine 调用求解引擎；引擎异常时降级为UNKNOWN而不是向上抛错
func (p *Planner) runEngine(ctx context.Context, m *solver.Model, opts model.SolverOptions) *solver.Result {
	result, err := p.engine.Solve(ctx, m, p.engineOptions(opts))
	if err != nil {
		logger.Error().Err(err).Int("vars", m.VarCount).Msg("求解引擎调用失败")
		return &solver.Result{Status: solver.StatusUnknown}
	}
	if result == nil {
		return &solver.Result{Status: solver.StatusUnknown}
	}
	return result
}

// engineOptions 由请求选项生成引擎选项
func (p *Planner) engineOptions(opts model.SolverOptions) solver.Options {
	engineOpts := solver.Options{
		TimeLimit:  p.defaultTimeLimit,
		RandomSeed: opts.RandomSeed,
	}
	if opts.TimeLimitSeconds != nil && *opts.TimeLimitSeconds > 0 {
		engineOpts.TimeLimit = time.Duration(*opts.TimeLimitSeconds * float64(time.Second))
	}
	return engineOpts
}

// aggregateStatus 聚合各分组状态：INFEASIBLE > FEASIBLE > OPTIMAL
func aggregateStatus(statuses []string) string {
	feasible := false
	for _, status := range statuses {
		switch status {
		case string(solver.StatusInfeasible):
			return string(solver.StatusInfeasible)
		case string(solver.StatusFeasible):
			feasible = true
		}
	}
	if feasible {
		return string(solver.StatusFeasible)
	}
	return string(solver.StatusOptimal)
}
