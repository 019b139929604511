package ui

import (
	"os"

	"gioui.org/app"

	"github.com/sirupsen/logrus"

	"github.com/redmarklab/redmark/pkg/editor"
)

// Run opens the editor window around an editor session and hands the main
// thread to the display loop. It does not return; the process exits when
// the window closes.
func Run(ed *editor.Editor, log *logrus.Logger, pickOnStart bool) {
	if log == nil {
		log = logrus.New()
	}
	go func() {
		w := new(app.Window)
		a := New(w, ed, log, pickOnStart)
		if err := a.Run(); err != nil {
			log.WithError(err).Fatal("window closed with error")
		}
		os.Exit(0)
	}()
	app.Main()
}
