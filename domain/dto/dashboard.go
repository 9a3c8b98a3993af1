package dto

type DashboardStats struct {
	TotalTasks      int64          `json:"totalTasks"`
	CompletedTasks  int64          `json:"completedTasks"`
	TotalEmployees  int64          `json:"totalEmployees"`
	TodoTasks       int64          `json:"todoTasks"`
	InProgressTasks int64          `json:"inProgressTasks"`
	CompletionRate  int            `json:"completionRate"`
	RecentTasks     []TaskResponse `json:"recentTasks"`
}
