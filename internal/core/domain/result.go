package domain

// TaskStatus is the state of a task within one run.
type TaskStatus string

const (
	// StatusPending indicates the task has not been looked at yet.
	StatusPending TaskStatus = "Pending"
	// StatusSkipped indicates the OS gate excluded the task.
	StatusSkipped TaskStatus = "Skipped"
	// StatusRunning indicates the task's commands are being dispatched.
	StatusRunning TaskStatus = "Running"
	// StatusSucceeded indicates every command finished without error.
	StatusSucceeded TaskStatus = "Succeeded"
	// StatusFailed indicates at least one command failed.
	StatusFailed TaskStatus = "Failed"
)

// Terminal reports whether no further transition can happen.
func (s TaskStatus) Terminal() bool {
	return s == StatusSkipped || s == StatusSucceeded || s == StatusFailed
}

// Failure names the unit that failed and why.
type Failure struct {
	Unit    string
	Message string
}

// TaskResult is the outcome of one task.
type TaskResult struct {
	Task     string
	Status   TaskStatus
	Failures []Failure
}

// Failed reports whether the task ended in StatusFailed.
func (r TaskResult) Failed() bool { return r.Status == StatusFailed }

// RunReport is the outcome of a whole run, in task order.
type RunReport struct {
	Mode    Mode
	Results []TaskResult
}

// FailedTasks returns the names of failed tasks in task order.
func (r *RunReport) FailedTasks() []string {
	var names []string
	for _, res := range r.Results {
		if res.Failed() {
			names = append(names, res.Task)
		}
	}
	return names
}

// Count returns how many results ended with status.
func (r *RunReport) Count(status TaskStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}
