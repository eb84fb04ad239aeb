package sitepreview

import (
	"time"

	"github.com/pkg/browser"
)

// launchBrowser opens the configured base URL after the startup delay.
// A one-shot timer with no cancellation: if the server dies first the
// browser simply lands on a connection error.
func (a *App) launchBrowser() {
	open := a.openBrowser
	if open == nil {
		open = browser.OpenURL
	}
	url := a.Config.URL
	time.AfterFunc(a.Config.BrowserDelay, func() {
		if err := open(url); err != nil {
			a.Echo.Logger.Warnf("sitepreview: open browser: %v", err)
		}
	})
}
