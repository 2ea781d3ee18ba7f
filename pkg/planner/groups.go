package planner

import (
	"context"
	"sort"

	"github.com/kron12345/coreplanx/pkg/logger"
	"github.com/kron12345/coreplanx/pkg/model"
	"github.com/kron12345/coreplanx/pkg/solver"
)

// StatusNoActivities 分组无活动的终止状态（非错误）
const StatusNoActivities = "NO_ACTIVITIES"

// groupOutcome 单个分组的求解结果
type groupOutcome struct {
	Duties        [][]string
	TotalEdges    int
	SelectedEdges int
	Status        string
}

// solveGroup 模式b：单个分组的最大权匹配
func (p *Planner) solveGroup(ctx context.Context, group model.Group, opts model.SolverOptions) groupOutcome {
	if len(group.Activities) == 0 {
		return groupOutcome{Duties: [][]string{}, Status: StatusNoActivities}
	}

	orderedIDs := orderedActivityIDs(group.Activities)
	activitySet := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		activitySet[id] = true
	}

	if len(group.Edges) == 0 {
		return groupOutcome{Duties: singletonDuties(orderedIDs), Status: string(solver.StatusOptimal)}
	}

	m := solver.NewModel()
	incoming := make(map[string][]solver.Var, len(orderedIDs))
	outgoing := make(map[string][]solver.Var, len(orderedIDs))
	var edges []model.Edge
	var vars []solver.Var

	for _, edge := range group.Edges {
		// 端点不在分组内的衔接直接丢弃，属于上游数据质量问题而非错误
		if !activitySet[edge.FromID] || !activitySet[edge.ToID] {
			continue
		}
		v := m.NewBoolVar()
		edges = append(edges, edge)
		vars = append(vars, v)
		incoming[edge.ToID] = append(incoming[edge.ToID], v)
		outgoing[edge.FromID] = append(outgoing[edge.FromID], v)
		m.AddObjectiveTerm(v, EdgeWeight(edge))
	}

	if len(vars) == 0 {
		return groupOutcome{Duties: singletonDuties(orderedIDs), Status: string(solver.StatusOptimal)}
	}

	for _, id := range orderedIDs {
		if inVars := incoming[id]; len(inVars) > 0 {
			m.AddAtMost(inVars, 1)
		}
		if outVars := outgoing[id]; len(outVars) > 0 {
			m.AddAtMost(outVars, 1)
		}
	}

	result := p.runEngine(ctx, m, opts)
	if !result.Status.Solved() {
		logger.Warn().
			Str("group_id", group.ID).
			Str("status", string(result.Status)).
			Int("edges", len(vars)).
			Msg("分组求解未收敛，降级为单活动乘务链")
		return groupOutcome{
			Duties:     singletonDuties(orderedIDs),
			TotalEdges: len(vars),
			Status:     string(result.Status),
		}
	}

	var selected []model.Edge
	for i, edge := range edges {
		if result.Value(vars[i]) {
			selected = append(selected, edge)
		}
	}

	return groupOutcome{
		Duties:        BuildDuties(orderedIDs, selected),
		TotalEdges:    len(vars),
		SelectedEdges: len(selected),
		Status:        string(result.Status),
	}
}

// orderedActivityIDs 按(startMs, endMs, id)升序返回活动id
func orderedActivityIDs(activities []model.Activity) []string {
	sorted := make([]model.Activity, len(activities))
	copy(sorted, activities)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartMs != sorted[j].StartMs {
			return sorted[i].StartMs < sorted[j].StartMs
		}
		if sorted[i].EndMs != sorted[j].EndMs {
			return sorted[i].EndMs < sorted[j].EndMs
		}
		return sorted[i].ID < sorted[j].ID
	})

	ids := make([]string, len(sorted))
	for i, activity := range sorted {
		ids[i] = activity.ID
	}
	return ids
}
