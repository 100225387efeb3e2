package richedit

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PositionLocator maps a point in widget coordinates to a document position. It is
// provided by whatever lays out the document.
type PositionLocator interface {
	PositionAt(p fyne.Position) (int, bool)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) bool
}

// URLOpener opens web links, usually fyne.App.OpenURL.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// MimeData is the payload of a paste or drop.
type MimeData struct {
	Text     string    // plain text
	Fragment *Fragment // rich text, may be nil
}

// HasRichText returns true if the payload carries formatted text.
func (m MimeData) HasRichText() bool {
	return m.Fragment != nil && !m.Fragment.IsEmpty()
}

func (m MimeData) plainText() string {
	if m.Text != "" || m.Fragment == nil {
		return m.Text
	}
	return m.Fragment.PlainText()
}

// TextEdit is the editing widget of a notebook page. It owns a document and a cursor
// and handles keys, shortcuts, links under the pointer and the context menu.
type TextEdit struct {
	widget.BaseWidget
	Config    *Config         // editor configuration
	Clipboard fyne.Clipboard  // enables cut, copy and paste in the context menu if set
	Locator   PositionLocator // maps pointer positions to document positions
	Prompter  Prompter        // asked before pasting formatted text, formatting is kept if nil
	Opener    URLOpener       // opens web links

	OnChanged            func()                                   // called after every content change
	OnCursorChanged      func()                                   // called when the cursor moved or was replaced
	OnStatusMessage      func(msg string)                         // receives hover messages, "" clears
	OnContextMenu        func(menu *fyne.Menu, pos fyne.Position) // shows the context menu, a popup is used if nil
	OnPageLinkRequested  func()                                   // the user wants to insert a link to a page
	OnWebLinkRequested   func()                                   // the user wants to insert a web link
	OnImageFileRequested func()                                   // the user wants to insert an image from a file

	// internal fields
	doc          *Document
	cursor       *Cursor
	styles       *StyleManager
	store        PageStore
	board        *Switchboard
	links        *LinkIndex
	override     CursorOverride
	hovered      *Link
	pageID       PageID
	copiedRow    int
	copiedColumn int
	hasFocus     bool
	shortcuts    map[string]fyne.KeyboardShortcut
	handlers     map[string]func(e *TextEdit)
	keyHandlers  map[fyne.KeyName]func(e *TextEdit)
	// synchronization
	mutex sync.Mutex
}

// NewTextEdit returns an editor with default configuration for a page. The style
// manager, page store and switchboard may be nil.
func NewTextEdit(page PageID, styles *StyleManager, store PageStore, board *Switchboard) *TextEdit {
	return NewTextEditWithConfig(page, styles, store, board, NewConfig())
}

// NewTextEditWithConfig returns an editor that uses the given configuration. The Config
// must be obtained by NewConfig() to ensure all defaults are initialized but may be
// changed before calling this function.
func NewTextEditWithConfig(page PageID, styles *StyleManager, store PageStore, board *Switchboard,
	config *Config) *TextEdit {
	e := &TextEdit{Config: config, pageID: page, styles: styles, store: store, board: board}
	if e.board == nil {
		e.board = NewSwitchboard()
	}
	e.copiedRow = -1
	e.copiedColumn = -1
	e.shortcuts = make(map[string]fyne.KeyboardShortcut)
	e.handlers = make(map[string]func(e *TextEdit))
	e.keyHandlers = make(map[fyne.KeyName]func(e *TextEdit))
	e.setDocument(NewDocument())
	e.addDefaultShortcuts()
	e.ExtendBaseWidget(e)
	return e
}

func (e *TextEdit) setDocument(doc *Document) {
	doc.SetDefaultFont(e.Config.DefaultFontFamily, e.Config.DefaultFontSize)
	doc.OnContentsChanged(e.contentChanged)
	e.doc = doc
	e.cursor = NewCursor(doc)
	e.links = NewLinkIndex(doc)
	e.copiedRow = -1
	e.copiedColumn = -1
}

func (e *TextEdit) contentChanged() {
	e.board.EmitTextChanged()
	if e.OnChanged != nil {
		e.OnChanged()
	}
	e.Refresh()
}

func (e *TextEdit) cursorChanged() {
	if e.OnCursorChanged != nil {
		e.OnCursorChanged()
	}
}

// Document returns the edited document.
func (e *TextEdit) Document() *Document { return e.doc }

// SetDocument replaces the edited document. The cursor moves to its start.
func (e *TextEdit) SetDocument(doc *Document) {
	e.setDocument(doc)
	e.cursorChanged()
	e.Refresh()
}

func (e *TextEdit) PageID() PageID { return e.pageID }

func (e *TextEdit) Switchboard() *Switchboard { return e.board }

func (e *TextEdit) StyleManager() *StyleManager { return e.styles }

// Links returns the index of anchors of the document.
func (e *TextEdit) Links() *LinkIndex { return e.links }

// TextCursor returns a copy of the editor's cursor.
func (e *TextEdit) TextCursor() *Cursor {
	return e.cursor.Clone()
}

// SetTextCursor makes a copy of c the editor's cursor.
func (e *TextEdit) SetTextCursor(c *Cursor) {
	if c.IsNull() || c.Document() != e.doc {
		return
	}
	e.cursor = c.Clone()
	e.cursorChanged()
}

// withCursor runs fn on the editor's cursor and reports the move.
func (e *TextEdit) withCursor(fn func(c *Cursor)) {
	fn(e.cursor)
	e.cursorChanged()
}

// SelectAll selects the whole document.
func (e *TextEdit) SelectAll() {
	e.withCursor(func(c *Cursor) { c.Select(SelectDocument) })
}

// HandleTab indents or outdents the list at the cursor, or moves to the next or
// previous table cell. It returns false if the key should insert a tab character.
func (e *TextEdit) HandleTab(shift bool) bool {
	c := e.cursor
	switch {
	case c.CurrentList() != nil:
		if shift {
			ReduceSelectionIndent(c)
		} else {
			IncreaseSelectionIndent(c)
		}
	case IsCursorInTable(c):
		if shift {
			c.MovePosition(PreviousCell, MoveAnchor, 1)
		} else {
			c.MovePosition(NextCell, MoveAnchor, 1)
		}
	default:
		return false
	}
	e.cursorChanged()
	return true
}

// InsertFromMimeData pastes the payload at the cursor. Formatted text is kept only if
// the prompter agrees, otherwise only its plain text is inserted.
func (e *TextEdit) InsertFromMimeData(m MimeData) {
	c := e.cursor
	if m.HasRichText() && (e.Prompter == nil || e.Prompter.Confirm(e.Config.PastePrompt)) {
		c.InsertFragment(m.Fragment)
	} else if text := m.plainText(); text != "" {
		c.InsertText(text)
	}
	e.cursorChanged()
}

// InsertImage stores the image under a fresh unique name in the page store and inserts
// it at the cursor. It returns false and leaves the document alone if the store rejects
// the image.
func (e *TextEdit) InsertImage(data []byte) bool {
	if e.store == nil || len(data) == 0 {
		return false
	}
	name := uuid.NewString()
	if !e.store.AddImage(name, data, e.pageID) {
		logger.Warn("image rejected by page store", zap.String("name", name), zap.Int("page", int(e.pageID)))
		return false
	}
	e.doc.AddResource(name, data)
	e.cursor.InsertImage(name)
	e.cursorChanged()
	return true
}

// Destroy releases the pointer override. Call it when the editor is closed.
func (e *TextEdit) Destroy() {
	e.mutex.Lock()
	e.hovered = nil
	e.mutex.Unlock()
	e.override.Release()
}

// FocusGained implements a Focusable.
func (e *TextEdit) FocusGained() {
	e.hasFocus = true
	e.Refresh()
}

// FocusLost implements a Focusable.
func (e *TextEdit) FocusLost() {
	e.hasFocus = false
	e.Refresh()
}

// AcceptsTab makes the canvas deliver Tab to the editor instead of moving the focus.
func (e *TextEdit) AcceptsTab() bool { return true }

// KEY HANDLING

func (e *TextEdit) TypedRune(r rune) {
	e.cursor.InsertText(string(r))
	e.cursorChanged()
}

func (e *TextEdit) TypedKey(evt *fyne.KeyEvent) {
	if handler, ok := e.keyHandlers[evt.Name]; ok {
		handler(e)
	}
}

func (e *TextEdit) TypedShortcut(s fyne.Shortcut) {
	switch v := s.(type) {
	case *fyne.ShortcutCopy:
		e.copySelection(v.Clipboard, false)
		return
	case *fyne.ShortcutCut:
		e.copySelection(v.Clipboard, true)
		return
	case *fyne.ShortcutPaste:
		if v.Clipboard != nil {
			e.InsertFromMimeData(MimeData{Text: v.Clipboard.Content()})
		}
		return
	case *fyne.ShortcutSelectAll:
		e.SelectAll()
		return
	}
	if ks, ok := s.(fyne.KeyboardShortcut); ok {
		if handler, ok := e.handlers[GetKeyboardShortcutKey(ks)]; ok {
			handler(e)
		}
	}
}

func (e *TextEdit) copySelection(cb fyne.Clipboard, cut bool) {
	if cb == nil || !e.cursor.HasSelection() {
		return
	}
	cb.SetContent(e.cursor.SelectedText())
	if cut {
		e.cursor.RemoveSelectedText()
		e.cursorChanged()
	}
}

// GetKeyboardShortcutKey returns the key under which a shortcut handler is stored.
func GetKeyboardShortcutKey(s fyne.KeyboardShortcut) string {
	return fmt.Sprintf("%v:%v", s.Key(), s.Mod())
}

// AddShortcutHandler adds a keyboard shortcut to the editor.
func (e *TextEdit) AddShortcutHandler(s fyne.KeyboardShortcut, handler func(e *TextEdit)) {
	e.shortcuts[GetKeyboardShortcutKey(s)] = s
	e.handlers[GetKeyboardShortcutKey(s)] = handler
}

// RemoveShortcutHandler removes the keyboard shortcut handler with the given key.
func (e *TextEdit) RemoveShortcutHandler(s string) {
	delete(e.shortcuts, s)
	delete(e.handlers, s)
}

// AddKeyHandler adds a direct handler for the given key. Unlike AddShortcutHandler, a key
// handler is called whenever the key is pressed, even when no modifier is used.
func (e *TextEdit) AddKeyHandler(key fyne.KeyName, handler func(e *TextEdit)) {
	e.keyHandlers[key] = handler
}

// RemoveKeyHandler removes the handler for the given key.
func (e *TextEdit) RemoveKeyHandler(key fyne.KeyName) {
	delete(e.keyHandlers, key)
}

func shiftPressed() bool {
	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	if d, ok := app.Driver().(desktop.Driver); ok {
		return d.CurrentKeyModifiers()&fyne.KeyModifierShift != 0
	}
	return false
}

func (e *TextEdit) move(op MoveOperation) {
	mode := MoveAnchor
	if shiftPressed() {
		mode = KeepAnchor
	}
	e.cursor.MovePosition(op, mode, 1)
	e.cursorChanged()
}

func (e *TextEdit) backspace() {
	c := e.cursor
	if !c.HasSelection() {
		if c.Position() == 0 {
			return
		}
		c.MovePosition(PreviousCharacter, KeepAnchor, 1)
	}
	c.RemoveSelectedText()
	e.cursorChanged()
}

func (e *TextEdit) deleteForward() {
	c := e.cursor
	if !c.HasSelection() && !c.MovePosition(NextCharacter, KeepAnchor, 1) {
		return
	}
	c.RemoveSelectedText()
	e.cursorChanged()
}

func (e *TextEdit) typeTab(shift bool) {
	if !e.HandleTab(shift) && !shift {
		e.cursor.InsertText("\t")
		e.cursorChanged()
	}
}

// addDefaultShortcuts adds the standard keys and shortcuts of the editor.
func (e *TextEdit) addDefaultShortcuts() {
	e.AddKeyHandler(fyne.KeyLeft, func(e *TextEdit) {
		e.move(PreviousCharacter)
	})
	e.AddKeyHandler(fyne.KeyRight, func(e *TextEdit) {
		e.move(NextCharacter)
	})
	e.AddKeyHandler(fyne.KeyUp, func(e *TextEdit) {
		e.move(PreviousBlock)
	})
	e.AddKeyHandler(fyne.KeyDown, func(e *TextEdit) {
		e.move(NextBlock)
	})
	e.AddKeyHandler(fyne.KeyHome, func(e *TextEdit) {
		e.move(StartOfBlock)
	})
	e.AddKeyHandler(fyne.KeyEnd, func(e *TextEdit) {
		e.move(EndOfBlock)
	})
	e.AddKeyHandler(fyne.KeyBackspace, func(e *TextEdit) {
		e.backspace()
	})
	e.AddKeyHandler(fyne.KeyDelete, func(e *TextEdit) {
		e.deleteForward()
	})
	e.AddKeyHandler(fyne.KeyReturn, func(e *TextEdit) {
		e.cursor.InsertBlock()
		e.cursorChanged()
	})
	e.AddKeyHandler(fyne.KeyEnter, func(e *TextEdit) {
		e.cursor.InsertBlock()
		e.cursorChanged()
	})
	e.AddKeyHandler(fyne.KeyTab, func(e *TextEdit) {
		e.typeTab(shiftPressed())
	})
	// shortcuts
	e.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyTab, Modifier: fyne.KeyModifierShift},
		func(e *TextEdit) {
			e.typeTab(true)
		})
	e.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyHome, Modifier: fyne.KeyModifierControl},
		func(e *TextEdit) {
			e.move(Start)
		})
	e.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyEnd, Modifier: fyne.KeyModifierControl},
		func(e *TextEdit) {
			e.move(End)
		})
	e.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyB, Modifier: fyne.KeyModifierControl},
		func(e *TextEdit) {
			ToggleBold(e)
		})
	e.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyI, Modifier: fyne.KeyModifierControl},
		func(e *TextEdit) {
			ToggleItalic(e)
		})
	e.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyU, Modifier: fyne.KeyModifierControl},
		func(e *TextEdit) {
			ToggleUnderline(e)
		})
	// Alt+1 to Alt+8 apply the style shortcuts
	keys := []fyne.KeyName{fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5, fyne.Key6, fyne.Key7, fyne.Key8}
	for i, k := range keys {
		idx := i
		e.AddShortcutHandler(&desktop.CustomShortcut{KeyName: k, Modifier: fyne.KeyModifierAlt},
			func(e *TextEdit) {
				e.ApplyStyleShortcut(idx)
			})
	}
}

// ApplyStyle applies the style with the given id to the selection.
func (e *TextEdit) ApplyStyle(id int) {
	if e.styles == nil {
		return
	}
	e.styles.ApplyStyle(e, id)
}

// ApplyStyleShortcut applies the style assigned to shortcut idx, if any.
func (e *TextEdit) ApplyStyleShortcut(idx int) {
	if e.styles == nil || !e.styles.StyleShortcutIsValid(idx) {
		return
	}
	e.styles.ApplyStyle(e, e.styles.ShortcutStyleId(idx))
}

// CreateRenderer implements fyne.Widget.
func (e *TextEdit) CreateRenderer() fyne.WidgetRenderer {
	e.ExtendBaseWidget(e)
	text := widget.NewRichText(Segments(e.doc)...)
	text.Wrapping = fyne.TextWrapWord
	return &textEditRenderer{edit: e, text: text}
}

type textEditRenderer struct {
	edit *TextEdit
	text *widget.RichText
}

func (r *textEditRenderer) Destroy() {
	r.edit.Destroy()
}

func (r *textEditRenderer) Layout(size fyne.Size) {
	r.text.Resize(size)
}

func (r *textEditRenderer) MinSize() fyne.Size {
	return r.text.MinSize()
}

func (r *textEditRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.text}
}

func (r *textEditRenderer) Refresh() {
	r.text.Segments = Segments(r.edit.doc)
	r.text.Refresh()
}

// trimmedSelection returns the selected text without surrounding white space.
func (e *TextEdit) trimmedSelection() string {
	return strings.TrimSpace(e.cursor.SelectedText())
}
