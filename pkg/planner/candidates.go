package planner

import (
	"context"
	"fmt"

	"github.com/kron12345/coreplanx/pkg/logger"
	"github.com/kron12345/coreplanx/pkg/model"
	"github.com/kron12345/coreplanx/pkg/solver"
)

// StatusNoCandidates 候选列表为空的终止状态（非错误）
const StatusNoCandidates = "NO_CANDIDATES"

// typeKey 同服务同类型的分组键
type typeKey struct {
	ServiceID string
	Type      string
}

// solveCandidates 模式a：扁平候选列表的容量约束选择
func (p *Planner) solveCandidates(ctx context.Context, req *model.SolveRequest) *model.SolveResponse {
	if len(req.Candidates) == 0 {
		return &model.SolveResponse{
			Summary:     "No candidates provided.",
			SelectedIDs: []string{},
			DutyGroups:  []model.DutyGroup{},
			Status:      StatusNoCandidates,
		}
	}

	m := solver.NewModel()
	vars := make([]solver.Var, len(req.Candidates))
	byType := make(map[typeKey][]solver.Var)
	byService := make(map[string][]solver.Var)
	// 约束按首次出现的分组键顺序加入，保证模型构建完全确定
	var typeOrder []typeKey
	var serviceOrder []string
	_, perServiceSet := req.Options.EffectiveMaxPerService()

	for i, candidate := range req.Candidates {
		v := m.NewBoolVar()
		vars[i] = v
		serviceID := candidate.ServiceID()
		key := typeKey{ServiceID: serviceID, Type: candidate.Type}
		if _, seen := byType[key]; !seen {
			typeOrder = append(typeOrder, key)
		}
		byType[key] = append(byType[key], v)
		if perServiceSet {
			if _, seen := byService[serviceID]; !seen {
				serviceOrder = append(serviceOrder, serviceID)
			}
			byService[serviceID] = append(byService[serviceID], v)
		}
		m.AddObjectiveTerm(v, CandidateWeight(candidate, req.Options))
	}

	limitPerType := req.Options.EffectiveMaxPerServiceType()
	for _, key := range typeOrder {
		m.AddAtMost(byType[key], limitPerType)
	}
	if limitPerService, ok := req.Options.EffectiveMaxPerService(); ok {
		for _, serviceID := range serviceOrder {
			m.AddAtMost(byService[serviceID], limitPerService)
		}
	}

	result := p.runEngine(ctx, m, req.Options)

	selectedIDs := []string{}
	if result.Status.Solved() {
		for i, candidate := range req.Candidates {
			if result.Value(vars[i]) {
				selectedIDs = append(selectedIDs, candidate.ID)
			}
		}
	}

	var score *int64
	if len(selectedIDs) > 0 {
		objective := result.Objective
		score = &objective
	}

	logger.Debug().
		Str("status", string(result.Status)).
		Int("candidates", len(req.Candidates)).
		Int("selected", len(selectedIDs)).
		Msg("候选选择求解完成")

	return &model.SolveResponse{
		Summary:     fmt.Sprintf("%d of %d candidates selected (status: %s).", len(selectedIDs), len(req.Candidates), result.Status),
		SelectedIDs: selectedIDs,
		DutyGroups:  []model.DutyGroup{},
		Score:       score,
		Status:      string(result.Status),
		Stats: model.SolverStats{
			TotalCandidates:    len(req.Candidates),
			SelectedCandidates: len(selectedIDs),
			GroupCount:         len(byType),
		},
	}
}
