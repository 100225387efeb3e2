package richedit

import (
	"golang.org/x/exp/slices"
)

// NumShortcuts is the number of style shortcut slots.
const NumShortcuts = 8

// NoStyle marks an unconfigured shortcut slot.
const NoStyle = -1

// StyleManager owns the user-defined styles and the shortcut slots referring to them.
// Style ids start at 1 and are never reused within a session, even after deletion.
type StyleManager struct {
	styles    map[int]StyleDef
	highestID int
	shortcuts [NumShortcuts]int
}

func NewStyleManager() *StyleManager {
	m := &StyleManager{}
	m.clear()
	return m
}

func (m *StyleManager) clear() {
	m.styles = make(map[int]StyleDef)
	m.highestID = 0
	for i := range m.shortcuts {
		m.shortcuts[i] = NoStyle
	}
}

func (m *StyleManager) IsValidStyleId(id int) bool {
	_, ok := m.styles[id]
	return ok
}

// ApplyStyle applies the flagged attributes of the style to the editor's selection.
// Nothing happens without a selection or for an unknown style.
func (m *StyleManager) ApplyStyle(editor TextEditor, id int) {
	style, ok := m.styles[id]
	if !ok {
		return
	}
	cursor := editor.TextCursor()
	if !cursor.HasSelection() || style.Flags == NoFormat {
		return
	}
	cursor.formatSelection(style.applyTo)
	editor.SetTextCursor(cursor)
}

// StyleIds returns the ids of all styles in ascending order.
func (m *StyleManager) StyleIds() []int {
	ids := make([]int, 0, len(m.styles))
	for id := range m.styles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *StyleManager) NumStyles() int { return len(m.styles) }

// Style returns the style with the given id.
func (m *StyleManager) Style(id int) (StyleDef, bool) {
	s, ok := m.styles[id]
	return s, ok
}

// AddStyle stores a style under a new id and returns the id.
func (m *StyleManager) AddStyle(style StyleDef) int {
	for id := range m.styles {
		m.highestID = max(m.highestID, id)
	}
	m.highestID++
	m.styles[m.highestID] = style
	return m.highestID
}

// SetStyle stores a style under the given id, replacing an existing one.
func (m *StyleManager) SetStyle(style StyleDef, id int) {
	if id < 0 {
		return
	}
	m.styles[id] = style
	m.highestID = max(m.highestID, id)
}

func (m *StyleManager) DeleteStyle(id int) {
	delete(m.styles, id)
}

func (m *StyleManager) NumShortcuts() int { return NumShortcuts }

// ShortcutStyleId returns the style id bound to the shortcut slot, NoStyle for an
// unconfigured or out-of-range slot.
func (m *StyleManager) ShortcutStyleId(idx int) int {
	if idx < 0 || idx >= NumShortcuts {
		return NoStyle
	}
	return m.shortcuts[idx]
}

// SetShortcutStyleId binds a style id to a shortcut slot. Out-of-range slots are ignored.
func (m *StyleManager) SetShortcutStyleId(idx, id int) {
	if idx < 0 || idx >= NumShortcuts {
		return
	}
	m.shortcuts[idx] = id
}

// StyleShortcutIsValid returns true if the slot is bound to an existing style. A slot
// whose style was deleted counts as unconfigured.
func (m *StyleManager) StyleShortcutIsValid(idx int) bool {
	id := m.ShortcutStyleId(idx)
	return id != NoStyle && m.IsValidStyleId(id)
}
