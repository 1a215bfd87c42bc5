package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/statelab/internal/placeholder"
)

// successBannerTTL is how long the post-created banner stays up.
const successBannerTTL = 3 * time.Second

type usersMsg []placeholder.User

type usersErrMsg struct{ error }

type postCreatedMsg placeholder.Post

type postErrMsg struct{ error }

// clearSuccessMsg hides the success banner unless a newer post replaced it.
type clearSuccessMsg struct{ seq int }

// storeChangedMsg reports that one of the shared stores changed value.
type storeChangedMsg struct{ store string }

func clearSuccessAfter(seq int) tea.Cmd {
	return tea.Tick(successBannerTTL, func(time.Time) tea.Msg {
		return clearSuccessMsg{seq: seq}
	})
}
