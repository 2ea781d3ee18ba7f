package planner

import (
	"math"

	"github.com/kron12345/coreplanx/pkg/model"
)

// 衔接权重常量。基准值取得足够大，保证任何被惩罚的衔接权重仍≥1，
// 目标函数总是倾向于保留衔接而不是放弃；缺数据惩罚各占基准值一半，
// 两项信息都缺失的衔接被大幅降权但不会被直接排除。
const (
	EdgeBaseWeight         = 100000
	MissingTravelPenalty   = 50000
	MissingLocationPenalty = 50000
)

// EdgeWeight 计算衔接的目标权重（恒≥1）
func EdgeWeight(edge model.Edge) int64 {
	penalty := edge.GapMinutes + edge.TravelMinutes
	if edge.MissingTravel {
		penalty += MissingTravelPenalty
	}
	if edge.MissingLocation {
		penalty += MissingLocationPenalty
	}
	weight := int64(EdgeBaseWeight) - penalty
	if weight < 1 {
		return 1
	}
	return weight
}

// CandidateWeight 计算候选项的目标权重（恒≥1）
//
// 查找顺序：options.weightKey → gapMinutes → durationMinutes。
// 参数存在但无法解析为数值时退回defaultWeight，而不再继续查找。
func CandidateWeight(candidate model.Candidate, opts model.SolverOptions) int64 {
	key := opts.EffectiveWeightKey()
	value := candidate.Params.Get(key)
	if value.IsAbsent() && key != model.DefaultWeightKey {
		value = candidate.Params.Get(model.DefaultWeightKey)
	}
	if value.IsAbsent() {
		value = candidate.Params.Get(model.FallbackWeightKey)
	}

	numeric, ok := value.Number()
	if !ok {
		return opts.EffectiveDefaultWeight()
	}

	weight := int64(math.Round(numeric))
	if weight < 1 {
		return 1
	}
	return weight
}
