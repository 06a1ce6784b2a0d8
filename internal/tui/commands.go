package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

// sendStartedMsg carries the cancel function for an in-flight send.
type sendStartedMsg struct {
	cancel context.CancelFunc
	done   <-chan sendDoneMsg
}

// sendDoneMsg signals that a send finished, successfully or not.
// The conversation log already contains the reply or the error notice.
type sendDoneMsg struct {
	err error
}

// startSend dispatches the user's message on a background goroutine.
// The conversation itself records the outcome, so the done message only
// carries the error for state handling.
func (m *Model) startSend(content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(m.ctx)
		done := make(chan sendDoneMsg, 1)

		go func() {
			_, err := m.conversation.Send(ctx, content)
			done <- sendDoneMsg{err: err}
		}()

		return sendStartedMsg{cancel: cancel, done: done}
	}
}

// awaitSend blocks until the in-flight send completes.
func awaitSend(done <-chan sendDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return <-done
	}
}
