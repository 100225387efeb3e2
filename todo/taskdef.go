// Package todo implements the to-do list of a notebook page: a tree of tasks with a
// done flag, a priority and a text, and its XML serialization.
package todo

import "go.uber.org/zap"

const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = 5
	DefaultTaskText = "Task description"
)

var logger = zap.NewNop()

// SetLogger sets the logger of the package. A nil logger switches logging off.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// TaskDef is one task without its subtasks.
type TaskDef struct {
	Done     bool
	Priority int
	Text     string
}

// NewTaskDef returns the definition of a freshly created task.
func NewTaskDef() TaskDef {
	return TaskDef{Done: false, Priority: DefaultPriority, Text: DefaultTaskText}
}

// Task is a top level task with its subtasks. Subtasks have no subtasks of their own.
type Task struct {
	TaskDef
	SubTasks []TaskDef
}

// ClampPriority limits p to the range of valid priorities.
func ClampPriority(p int) int {
	return min(max(p, MinPriority), MaxPriority)
}
