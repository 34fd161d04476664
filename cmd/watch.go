package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/repara-cli/internal/adapters/notify"
	"github.com/bnema/repara-cli/internal/adapters/render/catalog"
	"github.com/bnema/repara-cli/internal/application"
	"github.com/bnema/repara-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const watchHelp = "[r] reintentar · [t] alternar modo · [l] recargar · [q] salir"

type (
	noticeMsg    domain.Notice
	watchTickMsg time.Time
	resultMsg    struct{ result application.Result }
	reloadMsg    struct {
		result application.Result
		err    error
	}
)

type watchModel struct {
	app     *app
	ctx     context.Context
	notices <-chan domain.Notice

	state   application.State
	visible []domain.Notice
	err     error
	now     time.Time
}

func newWatchModel(ctx context.Context, a *app, notices <-chan domain.Notice) watchModel {
	return watchModel{
		app:     a,
		ctx:     ctx,
		notices: notices,
		state:   a.facade.Snapshot(),
		now:     a.now(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.waitNotice(), watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.action(m.app.monitor.Retry)
		case "t":
			return m, m.action(m.app.monitor.Toggle)
		case "l":
			return m, m.reload()
		}
		return m, nil
	case noticeMsg:
		m.visible = append(m.visible, domain.Notice(msg))
		return m, m.waitNotice()
	case watchTickMsg:
		m.now = time.Time(msg)
		m.visible = pruneNotices(m.visible, m.now)
		m.state = m.app.facade.Snapshot()
		return m, watchTick()
	case resultMsg:
		m.state = m.app.facade.Snapshot()
		if m.state.Connected() {
			m.visible = dropRetry(m.visible)
		}
		return m, nil
	case reloadMsg:
		m.err = msg.err
		m.state = m.app.facade.Snapshot()
		return m, nil
	default:
		return m, nil
	}
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(catalog.RenderConnection(m.state.Conn, m.state.Forced))
	b.WriteString("\n")
	b.WriteString(catalog.StatisticsLine(m.state.Stats))
	b.WriteString("\n")

	for _, n := range m.visible {
		b.WriteString(catalog.RenderNotice(n))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(catalog.RenderNotice(domain.Notice{Level: domain.NoticeError, Message: m.err.Error()}))
		b.WriteString("\n")
	}

	b.WriteString(catalog.TicketsView(m.state.Current, catalog.RenderOptions{
		Now:      m.now,
		Mode:     m.state.Mode(),
		LoggedIn: m.app.sessions.Current().LoggedIn(),
	}))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(watchHelp))
	b.WriteString("\n")

	return b.String()
}

func (m watchModel) waitNotice() tea.Cmd {
	ch := m.notices
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg(n)
	}
}

func (m watchModel) action(run func(context.Context) application.Result) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg{result: run(ctx)}
	}
}

func (m watchModel) reload() tea.Cmd {
	ctx, facade := m.ctx, m.app.facade
	return func() tea.Msg {
		result, err := facade.Dispatch(ctx, application.ListAllCommand{})
		return reloadMsg{result: result, err: err}
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func pruneNotices(notices []domain.Notice, now time.Time) []domain.Notice {
	kept := notices[:0]
	for _, n := range notices {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	return kept
}

// dropRetry hides the reconnect prompt once the backend is reachable again.
func dropRetry(notices []domain.Notice) []domain.Notice {
	kept := notices[:0]
	for _, n := range notices {
		if n.Action != domain.NoticeActionRetry {
			kept = append(kept, n)
		}
	}
	return kept
}

func newWatchCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactive view that reconnects automatically while offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := rt.app
			if a.cfg.JSON {
				return fmt.Errorf("watch does not support --%s", flagJSON)
			}

			notices := notify.NewChannel(0)
			a.sink = notify.Multi{notices, notify.Log{Logger: a.logger.Named("notice")}}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if a.cfg.Offline {
				a.monitor.ForceOffline(ctx)
			} else {
				a.monitor.Start(ctx)
			}

			p := tea.NewProgram(
				newWatchModel(ctx, a, notices.C()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(ctx),
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return a.monitor.Run(gctx, func(r application.Result) {
					p.Send(resultMsg{result: r})
				})
			})
			g.Go(func() error {
				defer cancel()
				_, err := p.Run()
				if errors.Is(err, tea.ErrProgramKilled) {
					return nil
				}
				return err
			})

			return g.Wait()
		},
	}
}
