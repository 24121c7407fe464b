package controller

import "github.com/charmbracelet/bubbles/key"

// stepTickMsg advances playback. Ticks carrying a stale id are dropped so
// that pausing and resuming never runs two tickers at once.
type stepTickMsg struct {
	id int
}

type playbackKeyMap struct {
	Pause   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Restart key.Binding
	End     key.Binding
	Quit    key.Binding
}

func newPlaybackKeyMap() playbackKeyMap {
	return playbackKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "prev"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "e"),
			key.WithHelp("e", "end"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k playbackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Next, k.Prev, k.Restart, k.End, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k playbackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
