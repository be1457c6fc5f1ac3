package window

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/zenity"
)

// saveDialog runs the native "save frame as" dialog off the game loop and
// hands the chosen path back through a channel polled from Update.
type saveDialog struct {
	open   bool
	result chan saveResult
}

type saveResult struct {
	path string
	err  error
}

func newSaveDialog() *saveDialog {
	return &saveDialog{result: make(chan saveResult, 1)}
}

// start opens the dialog unless one is already showing.
func (s *saveDialog) start(dir string) {
	if s.open {
		return
	}
	s.open = true
	name := filepath.Join(dir, "frost_"+time.Now().Format("20060102_150405")+".png")
	go func() {
		path, err := zenity.SelectFileSave(
			zenity.Title("Save frame"),
			zenity.Filename(name),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "PNG image",
				Patterns: []string{"*.png"},
			}},
		)
		s.result <- saveResult{path: path, err: err}
	}()
}

// poll returns the chosen path once the dialog has closed. ok is false while
// the dialog is still open or was never started; an empty path with a nil
// error means the user cancelled.
func (s *saveDialog) poll() (path string, ok bool, err error) {
	if !s.open {
		return "", false, nil
	}
	select {
	case r := <-s.result:
		s.open = false
		if r.err != nil {
			if errors.Is(r.err, zenity.ErrCanceled) {
				return "", true, nil
			}
			return "", true, fmt.Errorf("save dialog: %w", r.err)
		}
		if !strings.EqualFold(filepath.Ext(r.path), ".png") {
			r.path += ".png"
		}
		return r.path, true, nil
	default:
		return "", false, nil
	}
}
