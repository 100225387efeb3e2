package todo

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// DefaultRowHeight is the height of a single line row until SetSingleRowHeight is called.
const DefaultRowHeight = 20

// List is the to-do list of a page. Items live in an arena indexed by ItemID. A List is
// meant to be used from the UI goroutine only.
type List struct {
	Autosave   bool   // save after every edit instead of only flagging a modification
	Sorting    bool   // keep rows sorted by Less
	OnSavePage func() // called after an edit when Autosave is on
	OnModified func() // called after an edit when Autosave is off

	items           map[ItemID]*Item
	roots           []ItemID
	nextID          ItemID
	selected        ItemID
	modified        bool
	loading         bool
	hideDone        bool
	singleRowHeight float32
}

// NewList returns an empty list with autosave and sorting enabled.
func NewList() *List {
	return &List{
		Autosave:        true,
		Sorting:         true,
		items:           make(map[ItemID]*Item),
		selected:        NoItem,
		singleRowHeight: DefaultRowHeight,
	}
}

// Item returns the item with the given id, or nil.
func (l *List) Item(id ItemID) *Item {
	return l.items[id]
}

// ItemFromPart returns the item a part belongs to, or nil.
func (l *List) ItemFromPart(p ItemPart) *Item {
	return l.items[p.Item]
}

// Len returns the number of items, subtasks included.
func (l *List) Len() int { return len(l.items) }

// Rows returns the top level items in display order.
func (l *List) Rows() []ItemID {
	return slices.Clone(l.roots)
}

// Children returns the subtasks of an item in display order.
func (l *List) Children(id ItemID) []ItemID {
	it := l.items[id]
	if it == nil {
		return nil
	}
	return slices.Clone(it.Children)
}

func (l *List) siblings(parent ItemID) *[]ItemID {
	if parent == NoItem {
		return &l.roots
	}
	return &l.items[parent].Children
}

// AddTask appends a task under parent, or at the top level for NoItem. Tasks nest one
// level deep, so a subtask given as parent makes the new task its sibling. It returns
// the new id, or NoItem if the parent does not exist.
func (l *List) AddTask(def TaskDef, parent ItemID) ItemID {
	if parent != NoItem {
		p := l.items[parent]
		if p == nil {
			return NoItem
		}
		if !p.IsTopLevel() {
			parent = p.Parent
		}
	}
	it := &Item{
		ID:         l.nextID,
		Done:       def.Done,
		Priority:   ClampPriority(def.Priority),
		Text:       def.Text,
		CrossedOut: def.Done,
		Parent:     parent,
	}
	l.nextID++
	l.items[it.ID] = it
	sib := l.siblings(parent)
	*sib = append(*sib, it.ID)
	l.Sort()
	l.saveOrEmitModified()
	return it.ID
}

// CreateNewTask adds a task with default values under parent and selects it.
func (l *List) CreateNewTask(parent ItemID) ItemID {
	id := l.AddTask(NewTaskDef(), parent)
	if id != NoItem {
		l.selected = id
	}
	return id
}

// CreateNewSubtask adds a default subtask to the selected task. If a subtask is
// selected the new task becomes its sibling. Returns NoItem without a selection.
func (l *List) CreateNewSubtask() ItemID {
	it := l.items[l.selected]
	if it == nil {
		return NoItem
	}
	if it.IsTopLevel() {
		return l.CreateNewTask(it.ID)
	}
	return l.CreateNewTask(it.Parent)
}

func (l *List) Select(id ItemID) {
	if l.items[id] == nil {
		id = NoItem
	}
	l.selected = id
}

func (l *List) Selected() ItemID { return l.selected }

// DeleteTask removes an item together with its subtasks.
func (l *List) DeleteTask(id ItemID) {
	it := l.items[id]
	if it == nil {
		return
	}
	sib := l.siblings(it.Parent)
	*sib = slices.DeleteFunc(*sib, func(x ItemID) bool { return x == id })
	l.forget(it)
	l.saveOrEmitModified()
}

func (l *List) forget(it *Item) {
	for _, c := range it.Children {
		l.forget(l.items[c])
	}
	if l.selected == it.ID {
		l.selected = NoItem
	}
	delete(l.items, it.ID)
}

// DeleteSelectedTask removes the selected item, if any.
func (l *List) DeleteSelectedTask() {
	l.DeleteTask(l.selected)
}

// RemoveAllTasks empties the list without signalling a modification.
func (l *List) RemoveAllTasks() {
	l.items = make(map[ItemID]*Item)
	l.roots = nil
	l.selected = NoItem
}

// SetDone is what ticking the check box of an item does: the item and all of its
// descendants take the new state and are crossed out accordingly. Then every ancestor
// becomes done exactly when all of its children are, stopping at the first ancestor
// whose state does not change.
func (l *List) SetDone(id ItemID, done bool) {
	it := l.items[id]
	if it == nil {
		return
	}
	l.markDone(it, done)
	l.updateParentDoneStatus(it)
	l.Sort()
	l.selected = id
	l.saveOrEmitModified()
}

func (l *List) markDone(it *Item, done bool) {
	it.Done = done
	it.CrossedOut = done
	for _, c := range it.Children {
		l.markDone(l.items[c], done)
	}
}

func (l *List) updateParentDoneStatus(it *Item) {
	p := l.items[it.Parent]
	if p == nil || len(p.Children) == 0 {
		return
	}
	all := true
	for _, c := range p.Children {
		all = all && l.items[c].Done
	}
	if all == p.Done {
		return
	}
	p.Done = all
	p.CrossedOut = all
	logger.Debug("parent done status changed", zap.Int("item", int(p.ID)), zap.Bool("done", all))
	l.updateParentDoneStatus(p)
}

// SetPriority sets the priority of an item, limited to 1 to 10, and re-sorts.
func (l *List) SetPriority(id ItemID, priority int) {
	it := l.items[id]
	if it == nil {
		return
	}
	it.Priority = ClampPriority(priority)
	l.Sort()
	l.selected = id
	l.saveOrEmitModified()
}

func (l *List) SetTaskText(id ItemID, text string) {
	it := l.items[id]
	if it == nil {
		return
	}
	it.Text = text
	l.selected = id
	l.saveOrEmitModified()
}

// Sort orders the top level rows and every list of subtasks by Less. Equal items keep
// their order. Nothing happens if Sorting is off.
func (l *List) Sort() {
	if !l.Sorting {
		return
	}
	l.sortIDs(l.roots)
	for _, it := range l.items {
		l.sortIDs(it.Children)
	}
}

func (l *List) sortIDs(ids []ItemID) {
	slices.SortStableFunc(ids, func(a, b ItemID) int {
		ia, ib := l.items[a], l.items[b]
		switch {
		case Less(ia, ib):
			return -1
		case Less(ib, ia):
			return 1
		}
		return 0
	})
}

// TopLevelTasks returns the tasks of the list in display order.
func (l *List) TopLevelTasks() []Task {
	tasks := make([]Task, 0, len(l.roots))
	for _, id := range l.roots {
		it := l.items[id]
		task := Task{TaskDef: it.TaskDef()}
		for _, c := range it.Children {
			task.SubTasks = append(task.SubTasks, l.items[c].TaskDef())
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// PageContents serializes the list as a task document.
func (l *List) PageContents() string {
	return WriteTasks(l.TopLevelTasks())
}

// SetPageContents replaces the list by the tasks of a task document. Loading neither
// saves nor flags a modification, and leaves the list unmodified.
func (l *List) SetPageContents(contents string) {
	l.loading = true
	defer func() { l.loading = false }()
	l.RemoveAllTasks()
	for _, task := range ReadTasks(contents) {
		id := l.AddTask(task.TaskDef, NoItem)
		for _, sub := range task.SubTasks {
			l.AddTask(sub, id)
		}
	}
	l.modified = false
}

func (l *List) saveOrEmitModified() {
	if l.loading {
		return
	}
	if l.Autosave {
		if l.OnSavePage != nil {
			l.OnSavePage()
		}
		return
	}
	l.modified = true
	if l.OnModified != nil {
		l.OnModified()
	}
}

func (l *List) IsModified() bool { return l.modified }

func (l *List) SetModified(modified bool) { l.modified = modified }

// HideDoneTasks hides or shows top level tasks that are done. Subtasks go with their
// parent.
func (l *List) HideDoneTasks(hide bool) { l.hideDone = hide }

func (l *List) DoneTasksHidden() bool { return l.hideDone }

// VisibleRows returns the top level rows that are shown.
func (l *List) VisibleRows() []ItemID {
	if !l.hideDone {
		return l.Rows()
	}
	var rows []ItemID
	for _, id := range l.roots {
		if !l.items[id].Done {
			rows = append(rows, id)
		}
	}
	return rows
}

// SetSingleRowHeight sets the height of a row holding one line of text.
func (l *List) SetSingleRowHeight(h float32) {
	if h > 0 {
		l.singleRowHeight = h
	}
}

// RowHeight estimates the height of an item's row when its text is wrapped into a task
// column of the given width, using the average character width of the font.
func (l *List) RowHeight(id ItemID, columnWidth, avgCharWidth float32) float32 {
	it := l.items[id]
	if it == nil || columnWidth <= 0 {
		return l.singleRowHeight
	}
	textWidth := float32(len([]rune(it.Text))) * avgCharWidth
	lines := max(math32.Ceil(textWidth/columnWidth), 1)
	return l.singleRowHeight * lines
}
