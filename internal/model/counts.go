package model

// TaskCounts is number of customer tasks per status
type TaskCounts struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}

// TaskCountGroup is a single (customer, status) group produced by the store
type TaskCountGroup struct {
	CustomerID string
	Status     TaskStatus
	Count      int
}

// FoldTaskCounts folds grouped rows into counts per customer id
func FoldTaskCounts(groups []TaskCountGroup) map[string]TaskCounts {
	counts := make(map[string]TaskCounts)
	for _, g := range groups {
		c := counts[g.CustomerID]
		c.Total += g.Count
		switch g.Status {
		case TaskStatusTodo:
			c.Todo += g.Count
		case TaskStatusInProgress:
			c.InProgress += g.Count
		case TaskStatusDone:
			c.Done += g.Count
		}
		counts[g.CustomerID] = c
	}
	return counts
}
