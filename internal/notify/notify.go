// Package notify is the toast collaborator contract. The core supplies
// message text and show/hide signals only; presentation belongs to the UI.
package notify

import "github.com/speedscore/roundtracker/internal"

type Notifier interface {
	Show(msg string)
	Hide()
}

// LogNotifier writes notifications to the application log. It is the
// server-side default where no UI is attached.
type LogNotifier struct {
	Logger internal.Logger
}

func (n *LogNotifier) Show(msg string) { n.Logger.Infof("notify: %s", msg) }
func (n *LogNotifier) Hide()           {}

// Recorder captures notification calls for tests.
type Recorder struct {
	Messages []string
	Visible  bool
}

func (r *Recorder) Show(msg string) {
	r.Messages = append(r.Messages, msg)
	r.Visible = true
}

func (r *Recorder) Hide() { r.Visible = false }

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*Recorder)(nil)
)
