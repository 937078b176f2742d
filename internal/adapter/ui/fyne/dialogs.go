package fyne

import (
	"fmt"
	"log/slog"
	"net/url"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// LinkOpener opens web links in the system browser and reports failures in a dialog.
type LinkOpener struct {
	app    fyneapp.App
	window fyneapp.Window
	logger *slog.Logger
}

// NewLinkOpener creates a new link opener.
func NewLinkOpener(app fyneapp.App, window fyneapp.Window, logger *slog.Logger) *LinkOpener {
	return &LinkOpener{
		app:    app,
		window: window,
		logger: logger,
	}
}

// Open launches link. Errors are shown to the user, never returned.
func (o *LinkOpener) Open(link string) {
	if err := o.open(link); err != nil {
		o.logger.Warn("failed to open link", slog.String("url", link), slog.Any("error", err))
		dialog.ShowInformation(o.window.Title(), uriErrorMessage(err), o.window)
	}
}

func (o *LinkOpener) open(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return fmt.Errorf("missing scheme in %q", link)
	}
	return o.app.OpenURL(u)
}

// uriErrorMessage formats the notice shown when a link cannot be launched.
func uriErrorMessage(err error) string {
	return fmt.Sprintf("Unable to start the specified URI.\n\n%v", err)
}
