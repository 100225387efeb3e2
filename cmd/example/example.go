package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	lorem "github.com/drhodes/golorem"
	richedit "github.com/rasteric/richedit-fyne"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	richedit.SetLogger(logger)

	a := app.New()
	w := a.NewWindow("Example")
	store := richedit.NewMemoryPageStore()
	store.SetPageTitle(1, "Welcome")
	store.SetPageTitle(2, "Second page")
	board := richedit.NewSwitchboard()
	styles := richedit.NewStyleManager()
	heading := richedit.NewStyleDef()
	heading.Name = "Heading"
	heading.PointSize = 18
	heading.Bold = true
	heading.Flags = richedit.NewFormatFlags(richedit.FontSize, richedit.Bold)
	styles.SetShortcutStyleId(0, styles.AddStyle(heading))

	rt := richedit.NewRichTextEditWidget(1, styles, store, board)
	ed := rt.Edit
	ed.Opener = a
	ed.Clipboard = w.Clipboard()
	status := widget.NewLabel("")
	ed.OnStatusMessage = status.SetText
	board.OnGotoPage(func(id richedit.PageID) {
		title, _ := store.PageTitle(id)
		status.SetText("goto " + title)
	})

	s := ""
	for i := 0; i < 20; i++ {
		s += lorem.Sentence(5, 30)
		s += "\n"
	}
	rt.SetDocumentText(s[:len(s)-1])
	rt.AddAddendum(time.Now())

	ed.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl},
		func(e *richedit.TextEdit) {
			dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
				if uri == nil || err != nil {
					return
				}
				defer uri.Close()
				if err := e.StyleManager().ReadStyleDefs(uri); err != nil {
					dialog.ShowError(err, w)
				}
			}, w)
		})
	ed.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl},
		func(e *richedit.TextEdit) {
			dialog.ShowFileSave(func(uri fyne.URIWriteCloser, err error) {
				if uri == nil || err != nil {
					return
				}
				defer uri.Close()
				if err := e.StyleManager().WriteStyleDefs(uri); err != nil {
					dialog.ShowError(err, w)
				}
			}, w)
		})
	ed.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyT, Modifier: fyne.KeyModifierControl},
		func(e *richedit.TextEdit) {
			e.InsertTable(3, 3)
		})
	ed.OnWebLinkRequested = func() {
		href := widget.NewEntry()
		dialog.ShowForm("Insert Web Link", "Insert", "Cancel",
			[]*widget.FormItem{widget.NewFormItem("URL", href)},
			func(ok bool) {
				if !ok {
					return
				}
				if err := ed.InsertWebLink(href.Text, ""); err != nil {
					dialog.ShowError(err, w)
				}
			}, w)
	}
	ed.OnPageLinkRequested = func() {
		if err := ed.InsertPageLink(2, ""); err != nil {
			dialog.ShowError(err, w)
		}
	}

	w.SetContent(container.NewBorder(nil, status, nil, nil, rt.Content()))
	w.Resize(fyne.NewSize(800, 600))
	w.Canvas().Focus(ed)
	w.ShowAndRun()
}
