package todo

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/dimchansky/utfbom"
	"go.uber.org/zap"
)

// tasksTag is the root element of a task document.
const tasksTag = "tasks"

type xmlTasks struct {
	XMLName xml.Name
	Tasks   []xmlTask `xml:"task"`
}

type xmlTask struct {
	Done     string    `xml:"done,attr"`
	Priority string    `xml:"priority,attr"`
	Text     *string   `xml:"tasktext"`
	SubTasks []xmlTask `xml:"task"`
}

// ReadTasks parses a task document. Malformed XML, a root element other than <tasks>
// or an invalid priority yield an empty list; the problem is logged.
func ReadTasks(s string) []Task {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var doc xmlTasks
	if err := xml.NewDecoder(utfbom.SkipOnly(strings.NewReader(s))).Decode(&doc); err != nil {
		logger.Error("cannot parse task document", zap.Error(err))
		return nil
	}
	if doc.XMLName.Local != tasksTag {
		logger.Error("not a task document", zap.String("root", doc.XMLName.Local))
		return nil
	}
	tasks := make([]Task, 0, len(doc.Tasks))
	for _, xt := range doc.Tasks {
		def, err := readTaskDef(xt)
		if err != nil {
			logger.Error("invalid task", zap.Error(err))
			return nil
		}
		task := Task{TaskDef: def}
		for _, xs := range xt.SubTasks {
			sub, err := readTaskDef(xs)
			if err != nil {
				logger.Error("invalid subtask", zap.Error(err))
				return nil
			}
			task.SubTasks = append(task.SubTasks, sub)
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func readTaskDef(xt xmlTask) (TaskDef, error) {
	priority, err := strconv.Atoi(strings.TrimSpace(xt.Priority))
	if err != nil {
		return TaskDef{}, err
	}
	def := TaskDef{Done: xt.Done == "1", Priority: priority}
	if xt.Text == nil {
		logger.Warn("task without text")
	} else {
		def.Text = *xt.Text
	}
	return def, nil
}
