package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wiktorlazar/ordoai/internal/commands"
	"github.com/wiktorlazar/ordoai/internal/model"
	"github.com/wiktorlazar/ordoai/internal/storage"
	"github.com/wiktorlazar/ordoai/internal/topic"
)

// handleCommand routes slash input ("/new", "/rename ...") through the
// command layer. Mutations apply to the in-memory model immediately; the
// store is updated best-effort in a background command.
func (m Model) handleCommand(input string) (Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var bg tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		New: func(a commands.NewArgs) (commands.Result, error) {
			m.startConversation(a.Title)
			return commands.Result{Message: fmt.Sprintf("started %q", m.Current().Title)}, nil
		},
		Rename: func(a commands.RenameArgs) (commands.Result, error) {
			conv := m.Current()
			if conv == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no conversation selected"}
			}
			conv.Title = a.Title
			conv.Icon = topic.IconFor(a.Title)
			m.syncSidebar()
			bg = m.persistConversationCmd(*conv)
			return commands.Result{Message: fmt.Sprintf("renamed to %q", a.Title)}, nil
		},
		Delete: func() (commands.Result, error) {
			conv := m.Current()
			if conv == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no conversation selected"}
			}
			id, title := conv.ID, conv.Title
			if m.Scheduler != nil {
				m.Scheduler.Cancel(id)
			}
			if m.engine != nil {
				m.engine.Forget(id)
			}
			m.Conversations = append(m.Conversations[:m.Selected], m.Conversations[m.Selected+1:]...)
			if len(m.Conversations) == 0 {
				m.startConversation("")
			} else {
				if m.Selected >= len(m.Conversations) {
					m.Selected = len(m.Conversations) - 1
				}
				m.syncSidebar()
			}
			bg = m.deleteConversationCmd(id)
			return commands.Result{Message: fmt.Sprintf("deleted %q", title)}, nil
		},
		Conversations: func() (commands.Result, error) {
			m.focus = FocusSidebar
			return commands.Result{Message: fmt.Sprintf("%d conversations", len(m.Conversations))}, nil
		},
		Help: func() (commands.Result, error) {
			m.HelpVisible = !m.HelpVisible
			return commands.Result{Message: "help toggled"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	if res.Quit {
		m.Quitting = true
		return m, tea.Quit
	}
	if res.Message != "" {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}
	return m, bg
}

func (m Model) persistConversationCmd(conv model.Conversation) tea.Cmd {
	repo := m.repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := repo.UpdateConversation(ctx, storedConversation(conv)); err != nil && err != storage.ErrNotFound {
			return AppErrorMsg{Err: err}
		}
		return nil
	}
}

func (m Model) deleteConversationCmd(id string) tea.Cmd {
	repo := m.repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := repo.DeleteConversation(ctx, id); err != nil && err != storage.ErrNotFound {
			return AppErrorMsg{Err: err}
		}
		return nil
	}
}
