// Package model 定义求解服务的请求与响应结构
package model

const (
	// DefaultWeightKey 默认权重参数名
	DefaultWeightKey = "gapMinutes"
	// FallbackWeightKey 权重兜底参数名
	FallbackWeightKey = "durationMinutes"
	// ServiceIDKey 服务分组参数名
	ServiceIDKey = "serviceId"
	// DefaultServiceID 缺失serviceId时的占位分组键
	DefaultServiceID = "_"
)

// SolverOptions 求解选项
type SolverOptions struct {
	MaxPerServiceType int      `json:"maxPerServiceType,omitempty"`
	MaxPerService     *int     `json:"maxPerService,omitempty"`
	WeightKey         string   `json:"weightKey,omitempty"`
	DefaultWeight     int      `json:"defaultWeight,omitempty"`
	TimeLimitSeconds  *float64 `json:"timeLimitSeconds,omitempty"`
	RandomSeed        *int64   `json:"randomSeed,omitempty"`
}

// EffectiveWeightKey 返回生效的权重参数名
func (o SolverOptions) EffectiveWeightKey() string {
	if o.WeightKey == "" {
		return DefaultWeightKey
	}
	return o.WeightKey
}

// EffectiveMaxPerServiceType 返回生效的同类型上限（最小为1）
func (o SolverOptions) EffectiveMaxPerServiceType() int64 {
	if o.MaxPerServiceType < 1 {
		return 1
	}
	return int64(o.MaxPerServiceType)
}

// EffectiveMaxPerService 返回生效的同服务上限；未设置时返回false
func (o SolverOptions) EffectiveMaxPerService() (int64, bool) {
	if o.MaxPerService == nil {
		return 0, false
	}
	if *o.MaxPerService < 1 {
		return 1, true
	}
	return int64(*o.MaxPerService), true
}

// EffectiveDefaultWeight 返回生效的默认权重（最小为1）
func (o SolverOptions) EffectiveDefaultWeight() int64 {
	if o.DefaultWeight < 1 {
		return 1
	}
	return int64(o.DefaultWeight)
}

// Candidate 参与选择的候选项
type Candidate struct {
	ID         string `json:"id"`
	TemplateID string `json:"templateId"`
	Type       string `json:"type"`
	Params     Params `json:"params,omitempty"`
}

// ServiceID 返回候选项所属服务的分组键
func (c Candidate) ServiceID() string {
	return c.Params.Grouping(ServiceIDKey, DefaultServiceID)
}

// Activity 时间段内的原子活动
type Activity struct {
	ID      string `json:"id"`
	StartMs int64  `json:"startMs"`
	EndMs   int64  `json:"endMs"`
}

// Edge 活动之间的有向衔接
type Edge struct {
	FromID          string `json:"fromId"`
	ToID            string `json:"toId"`
	GapMinutes      int64  `json:"gapMinutes"`
	TravelMinutes   int64  `json:"travelMinutes"`
	MissingTravel   bool   `json:"missingTravel,omitempty"`
	MissingLocation bool   `json:"missingLocation,omitempty"`
}

// Group 独立求解的活动分组
type Group struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"ownerId"`
	OwnerKind  string     `json:"ownerKind"`
	DayKey     string     `json:"dayKey"`
	Activities []Activity `json:"activities"`
	Edges      []Edge     `json:"edges"`
}

// Problem 分组求解问题
type Problem struct {
	Groups []Group `json:"groups"`
}

// SolveRequest 求解请求
type SolveRequest struct {
	RulesetID      string        `json:"rulesetId"`
	RulesetVersion string        `json:"rulesetVersion"`
	Candidates     []Candidate   `json:"candidates"`
	Problem        *Problem      `json:"problem,omitempty"`
	Options        SolverOptions `json:"options"`
}

// HasProblem 检查请求是否携带分组问题（模式b）
func (r *SolveRequest) HasProblem() bool {
	return r.Problem != nil && len(r.Problem.Groups) > 0
}

// SolverStats 求解统计
type SolverStats struct {
	TotalCandidates    int `json:"totalCandidates"`
	SelectedCandidates int `json:"selectedCandidates"`
	GroupCount         int `json:"groupCount"`
}

// DutyGroup 单个分组的乘务链结果
type DutyGroup struct {
	GroupID   string     `json:"groupId"`
	OwnerID   string     `json:"ownerId"`
	OwnerKind string     `json:"ownerKind"`
	DayKey    string     `json:"dayKey"`
	Duties    [][]string `json:"duties"`
}

// SolveResponse 求解响应
type SolveResponse struct {
	Summary     string      `json:"summary"`
	SelectedIDs []string    `json:"selectedIds"`
	DutyGroups  []DutyGroup `json:"dutyGroups"`
	Score       *int64      `json:"score"`
	Status      string      `json:"status"`
	Stats       SolverStats `json:"stats"`
}
