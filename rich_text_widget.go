package richedit

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"golang.org/x/exp/slices"
)

// NumShortcutButtons is the number of style shortcut buttons of the toolbar.
const NumShortcutButtons = 4

// ShortcutButton is the state of a style shortcut button.
type ShortcutButton struct {
	Label   string
	Enabled bool
}

// ToolbarState is what the toolbar shows for the current cursor.
type ToolbarState struct {
	FontFamily      string
	FontSize        float32
	Bold            bool
	Italic          bool
	Underline       bool
	Strikethrough   bool
	Alignment       Alignment
	TextColor       color.Color // nil if the text has no color of its own
	BackgroundColor color.Color
	InList          bool
	InTable         bool
	Shortcuts       [NumShortcutButtons]ShortcutButton
}

// RichTextEditWidget combines a TextEdit with the formatting controls of a toolbar.
// Toolbar actions are routed to the formatting functions and the state of the controls
// follows the cursor.
type RichTextEditWidget struct {
	Edit *TextEdit

	OnTextChanged     func()                   // called after every content change
	OnControlsChanged func(state ToolbarState) // called when the toolbar state needs an update

	state ToolbarState
}

// NewRichTextEditWidget returns a widget editing a new document for the page.
func NewRichTextEditWidget(page PageID, styles *StyleManager, store PageStore, board *Switchboard) *RichTextEditWidget {
	return NewRichTextEditWidgetWithConfig(page, styles, store, board, NewConfig())
}

func NewRichTextEditWidgetWithConfig(page PageID, styles *StyleManager, store PageStore, board *Switchboard,
	config *Config) *RichTextEditWidget {
	w := &RichTextEditWidget{Edit: NewTextEditWithConfig(page, styles, store, board, config)}
	w.Edit.OnChanged = func() {
		if w.OnTextChanged != nil {
			w.OnTextChanged()
		}
	}
	w.Edit.OnCursorChanged = w.UpdateControls
	w.UpdateControls()
	return w
}

// Content returns the canvas object to place in a window.
func (w *RichTextEditWidget) Content() fyne.CanvasObject {
	return container.NewScroll(w.Edit)
}

// State returns the toolbar state computed by the last UpdateControls.
func (w *RichTextEditWidget) State() ToolbarState { return w.state }

// UpdateControls recomputes the toolbar state from the format at the cursor.
func (w *RichTextEditWidget) UpdateControls() {
	c := w.Edit.cursor
	cf := c.CharFormat()
	family, size := w.Edit.doc.DefaultFont()
	if cf.HasFontFamily() {
		family = cf.FontFamily()
	}
	if cf.HasFontPointSize() {
		size = cf.FontPointSize()
	}
	s := ToolbarState{
		FontFamily:      family,
		FontSize:        size,
		Bold:            cf.FontWeight() >= WeightBold,
		Italic:          cf.FontItalic(),
		Underline:       cf.FontUnderline(),
		Strikethrough:   cf.FontStrikeOut(),
		Alignment:       c.BlockFormat().Alignment,
		TextColor:       cf.Foreground(),
		BackgroundColor: cf.Background(),
		InList:          c.CurrentList() != nil,
		InTable:         IsCursorInTable(c),
	}
	if s.Alignment == 0 {
		s.Alignment = AlignLeft
	}
	if sm := w.Edit.styles; sm != nil {
		for i := range s.Shortcuts {
			if !sm.StyleShortcutIsValid(i) {
				continue
			}
			style, _ := sm.Style(sm.ShortcutStyleId(i))
			s.Shortcuts[i] = ShortcutButton{Label: style.Name, Enabled: true}
		}
	}
	w.state = s
	if w.OnControlsChanged != nil {
		w.OnControlsChanged(s)
	}
}

func (w *RichTextEditWidget) Bold()          { ToggleBold(w.Edit) }
func (w *RichTextEditWidget) Italic()        { ToggleItalic(w.Edit) }
func (w *RichTextEditWidget) Underline()     { ToggleUnderline(w.Edit) }
func (w *RichTextEditWidget) Strikethrough() { ToggleStrikethrough(w.Edit) }
func (w *RichTextEditWidget) AlignLeft()     { LeftAlign(w.Edit) }
func (w *RichTextEditWidget) AlignCenter()   { CenterAlign(w.Edit) }
func (w *RichTextEditWidget) AlignRight()    { RightAlign(w.Edit) }

func (w *RichTextEditWidget) BulletList() { InsertBullet(w.Edit) }

func (w *RichTextEditWidget) NumberList() { InsertNumberList(w.Edit) }

// TextColor sets the text color of the selection, nil removes it.
func (w *RichTextEditWidget) TextColor(c color.Color) { SetTextColor(w.Edit, c) }

func (w *RichTextEditWidget) BackgroundColor(c color.Color) { SetBackgroundColor(w.Edit, c) }

func (w *RichTextEditWidget) FontFamily(family string) { SetFont(w.Edit, family) }

// FontSize sets the point size of the selection to the closest offered size.
func (w *RichTextEditWidget) FontSize(size float32) {
	SetFontSize(w.Edit, w.FindClosestSize(size))
}

// ShortcutButton applies the style of shortcut button idx.
func (w *RichTextEditWidget) ShortcutButton(idx int) {
	if idx < 0 || idx >= NumShortcutButtons {
		return
	}
	w.Edit.ApplyStyleShortcut(idx)
}

// FindClosestSize returns size if it is offered, otherwise the smallest offered size
// above it, or the largest offered size.
func (w *RichTextEditWidget) FindClosestSize(size float32) float32 {
	sizes := slices.Clone(w.Edit.Config.FontSizes)
	if len(sizes) == 0 {
		return size
	}
	slices.Sort(sizes)
	i, _ := slices.BinarySearch(sizes, size)
	if i == len(sizes) {
		return sizes[len(sizes)-1]
	}
	return sizes[i]
}

// Find selects the next occurrence of text after the selection, or the previous one
// before it when searching backward. The search wraps around once. It returns false if
// the text does not occur.
func (w *RichTextEditWidget) Find(text string, backward, caseSensitive bool) bool {
	if text == "" {
		return false
	}
	c := w.Edit.TextCursor()
	doc := w.Edit.doc
	from := c.SelectionEnd()
	wrap := 0
	if backward {
		from = c.SelectionStart()
		wrap = doc.CharacterCount()
	}
	r, ok := doc.Find(text, from, backward, caseSensitive)
	if !ok {
		if r, ok = doc.Find(text, wrap, backward, caseSensitive); !ok {
			return false
		}
	}
	c.SetPosition(r.Start, MoveAnchor)
	c.SetPosition(r.End, KeepAnchor)
	w.Edit.SetTextCursor(c)
	return true
}

// NewDocument replaces the document by an empty one with the given default font.
func (w *RichTextEditWidget) NewDocument(family string, size float32) {
	doc := NewDocument()
	w.Edit.SetDocument(doc)
	doc.SetDefaultFont(family, size)
	var f CharFormat
	f.SetFontFamily(family)
	f.SetFontPointSize(size)
	doc.RootFrame().FirstBlock().charFormat = f
	doc.SetModified(false)
	w.UpdateControls()
}

// SetDocumentText replaces the document by plain text.
func (w *RichTextEditWidget) SetDocumentText(text string) {
	w.Edit.doc.SetPlainText(text)
	w.Edit.SetTextCursor(NewCursor(w.Edit.doc))
}

// SetGlobalFont sets family and size on the whole document and makes them the default.
// An empty family or a size of 3 points or less leaves that part unchanged.
func (w *RichTextEditWidget) SetGlobalFont(family string, size float32) {
	doc := w.Edit.doc
	curFamily, curSize := doc.DefaultFont()
	var f CharFormat
	if family != "" {
		curFamily = family
		f.SetFontFamily(family)
	}
	if size > 3 {
		curSize = w.FindClosestSize(size)
		f.SetFontPointSize(curSize)
	}
	if f.IsEmpty() {
		return
	}
	doc.SetDefaultFont(curFamily, curSize)
	c := NewCursor(doc)
	c.Select(SelectDocument)
	c.MergeCharFormat(f)
	w.UpdateControls()
}

// AddAddendum appends a paragraph stamped with the given time to the end of the
// document and leaves the cursor after it.
func (w *RichTextEditWidget) AddAddendum(now time.Time) {
	c := w.Edit.TextCursor()
	c.MovePosition(End, MoveAnchor, 1)
	c.InsertBlock()
	var f CharFormat
	f.SetFontWeight(WeightBold)
	c.InsertTextWithFormat("Addendum "+now.Format(w.Edit.Config.AddendumLayout), f)
	c.InsertBlock()
	w.Edit.SetTextCursor(c)
}

func (w *RichTextEditWidget) IsModified() bool { return w.Edit.doc.IsModified() }

func (w *RichTextEditWidget) SetDocumentModified(modified bool) {
	w.Edit.doc.SetModified(modified)
}
