// Package solver 定义离散优化引擎的抽象边界
//
// 核心逻辑只负责建模：布尔决策变量、线性"和≤上界"约束、线性最大化目标。
// 具体的组合搜索由实现Engine接口的外部引擎完成（生产环境为CP-SAT）。
package solver

import (
	"context"
	"time"
)

// Status 引擎返回的求解状态
type Status string

const (
	StatusOptimal      Status = "OPTIMAL"
	StatusFeasible     Status = "FEASIBLE"
	StatusInfeasible   Status = "INFEASIBLE"
	StatusModelInvalid Status = "MODEL_INVALID"
	StatusUnknown      Status = "UNKNOWN"
)

// Solved 检查状态是否携带可用的变量赋值
func (s Status) Solved() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// Var 决策变量的序号
type Var int

// Term 目标函数中的加权项
type Term struct {
	Var    Var
	Weight int64
}

// Constraint 线性约束 sum(Vars) <= Bound
type Constraint struct {
	Vars  []Var
	Bound int64
}

// Model 待求解的模型（纯数据，与具体引擎无关）
type Model struct {
	VarCount    int
	Constraints []Constraint
	Objective   []Term
}

// NewModel 创建空模型
func NewModel() *Model {
	return &Model{}
}

// NewBoolVar 添加布尔决策变量
func (m *Model) NewBoolVar() Var {
	v := Var(m.VarCount)
	m.VarCount++
	return v
}

// AddAtMost 添加约束 sum(vars) <= bound
func (m *Model) AddAtMost(vars []Var, bound int64) {
	m.Constraints = append(m.Constraints, Constraint{Vars: vars, Bound: bound})
}

// AddObjectiveTerm 向最大化目标添加加权项
func (m *Model) AddObjectiveTerm(v Var, weight int64) {
	m.Objective = append(m.Objective, Term{Var: v, Weight: weight})
}

// Options 求解选项
type Options struct {
	// TimeLimit 求解时间上限；0表示不限制
	TimeLimit time.Duration
	// RandomSeed 随机种子；nil时由引擎自行决定平局顺序
	RandomSeed *int64
}

// Result 求解结果
type Result struct {
	Status Status
	// Values 按变量序号排列的0/1赋值；仅当Status.Solved()时有效
	Values []bool
	// Objective 达到的目标值；仅当Status.Solved()时有效
	Objective int64
}

// Value 返回变量的赋值
func (r *Result) Value(v Var) bool {
	if r == nil || int(v) >= len(r.Values) {
		return false
	}
	return r.Values[v]
}

// Engine 外部求解引擎；实现必须支持并发调用
type Engine interface {
	Solve(ctx context.Context, m *Model, opts Options) (*Result, error)
}
