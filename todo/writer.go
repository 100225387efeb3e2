package todo

import (
	"encoding/xml"
	"strconv"
)

func toXMLTask(def TaskDef) xmlTask {
	done := "0"
	if def.Done {
		done = "1"
	}
	text := def.Text
	return xmlTask{Done: done, Priority: strconv.Itoa(def.Priority), Text: &text}
}

// WriteTasks serializes tasks as a task document.
func WriteTasks(tasks []Task) string {
	doc := xmlTasks{XMLName: xml.Name{Local: tasksTag}, Tasks: make([]xmlTask, 0, len(tasks))}
	for _, t := range tasks {
		xt := toXMLTask(t.TaskDef)
		for _, sub := range t.SubTasks {
			xt.SubTasks = append(xt.SubTasks, toXMLTask(sub))
		}
		doc.Tasks = append(doc.Tasks, xt)
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		// only fails for unsupported types
		panic(err)
	}
	return xml.Header + string(out)
}
