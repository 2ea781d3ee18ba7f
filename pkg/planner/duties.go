package planner

import "github.com/kron12345/coreplanx/pkg/model"

// BuildDuties 从被选中的衔接重建乘务链
//
// orderedIDs为分组活动按(startMs, endMs, id)升序排列的id序列。
// 链头为没有前驱的活动；从链头沿后继走到尽头即为一条乘务链。
// 度约束保证每个活动最多一条入边和一条出边，链不会分叉。若引擎
// 返回了环（约束并未显式排除），环上每个活动都有前驱，不会被当作
// 链头，最后由清理遍历各自落为单活动乘务链。
func BuildDuties(orderedIDs []string, selected []model.Edge) [][]string {
	successor := make(map[string]string, len(selected))
	predecessor := make(map[string]string, len(selected))
	for _, edge := range selected {
		successor[edge.FromID] = edge.ToID
		predecessor[edge.ToID] = edge.FromID
	}

	duties := make([][]string, 0, len(orderedIDs))
	visited := make(map[string]bool, len(orderedIDs))

	for _, id := range orderedIDs {
		if visited[id] {
			continue
		}
		if _, hasPredecessor := predecessor[id]; hasPredecessor {
			continue
		}
		var path []string
		cursor := id
		for cursor != "" && !visited[cursor] {
			path = append(path, cursor)
			visited[cursor] = true
			cursor = successor[cursor]
		}
		if len(path) > 0 {
			duties = append(duties, path)
		}
	}

	// 孤立活动与环成员兜底为单活动乘务链
	for _, id := range orderedIDs {
		if !visited[id] {
			duties = append(duties, []string{id})
			visited[id] = true
		}
	}

	return duties
}

// singletonDuties 每个活动各自成链
func singletonDuties(orderedIDs []string) [][]string {
	duties := make([][]string, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		duties = append(duties, []string{id})
	}
	return duties
}
