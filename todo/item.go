package todo

// ItemID is the handle of an item in its list. Handles are never reused.
type ItemID int

// NoItem is the id of no item, for instance the parent of a top level task.
const NoItem ItemID = -1

// Column identifies one of the three parts of a row.
type Column int

const (
	DoneColumn Column = iota
	PriorityColumn
	TaskColumn
)

func (c Column) String() string {
	switch c {
	case DoneColumn:
		return "Done"
	case PriorityColumn:
		return "Priority"
	case TaskColumn:
		return "Task"
	}
	return "Unknown"
}

// ItemPart is one cell of a row. The parts of an item always move together and every
// part knows the item it belongs to.
type ItemPart struct {
	Item   ItemID
	Column Column
}

// Item is a task in the tree. The list owns every item; Parent is a handle into the
// same list and does not keep the parent alive.
type Item struct {
	ID         ItemID
	Done       bool
	Priority   int
	Text       string
	CrossedOut bool // the text is drawn struck through
	Parent     ItemID
	Children   []ItemID
}

// Parts returns the done, priority and task parts of the item, in column order.
func (it *Item) Parts() [3]ItemPart {
	return [3]ItemPart{
		{Item: it.ID, Column: DoneColumn},
		{Item: it.ID, Column: PriorityColumn},
		{Item: it.ID, Column: TaskColumn},
	}
}

func (it *Item) IsTopLevel() bool { return it.Parent == NoItem }

func (it *Item) TaskDef() TaskDef {
	return TaskDef{Done: it.Done, Priority: it.Priority, Text: it.Text}
}

// Less orders items for display: items not done come first, then lower priority values.
func Less(a, b *Item) bool {
	if a.Done != b.Done {
		return !a.Done
	}
	return a.Priority < b.Priority
}
