package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/engine"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/ui"
)

type boardModel struct {
	ctx     context.Context
	svc     *engine.Service
	userKey string

	width  int
	height int

	status   *engine.UserStatus
	tasks    []storage.Task
	projects map[int64]string

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	status   *engine.UserStatus
	tasks    []storage.Task
	projects map[int64]string
	err      error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type undoneMsg struct {
	res *engine.UncompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, userKey string) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		userKey: userKey,
		loading: true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.svc.UserStatus(m.ctx, m.userKey)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TaskRepo().ListByUser(m.ctx, m.userKey)
		if err != nil {
			return loadedMsg{err: err}
		}
		projectList, err := m.svc.ProjectRepo().ListByUser(m.ctx, m.userKey)
		if err != nil {
			return loadedMsg{err: err}
		}
		projects := map[int64]string{}
		for _, p := range projectList {
			projects[p.ID] = p.Name
		}
		return loadedMsg{status: status, tasks: tasks, projects: projects}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, m.userKey, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) undoCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.UncompleteTask(m.ctx, m.userKey, id)
		return undoneMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		m.tasks = msg.tasks
		m.projects = msg.projects
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		log := fmt.Sprintf("%s +%d pts (total %d, streak %d)", msg.res.Message, msg.res.PointsEarned, msg.res.TotalPoints, msg.res.Streak)
		if msg.res.BadgeEarned != nil {
			log += fmt.Sprintf(" %s %s!", msg.res.BadgeEarned.Icon, msg.res.BadgeEarned.Name)
		}
		if msg.res.LevelUp {
			log += " " + ui.BannerLevelUp
		}
		m.lastLog = log
		return m, m.loadCmd()
	case undoneMsg:
		if msg.err != nil {
			m.lastLog = "Undo failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Undid completion: -%d pts (total %d)", msg.res.PointsDeducted, msg.res.TotalPoints)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", "c":
			if t, ok := m.selectedTask(); ok && !t.Completed {
				return m, m.completeCmd(t.ID)
			}
			return m, nil
		case "u":
			if t, ok := m.selectedTask(); ok && t.Completed {
				return m, m.undoCmd(t.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) selectedTask() (storage.Task, bool) {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return storage.Task{}, false
	}
	return m.tasks[m.selected], true
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconFlex, "FlexBoard") + "\n")
	if m.status != nil {
		u := m.status.User
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			ui.LabelValue("Points", fmt.Sprintf("%d (lvl %d, %d to next)", u.Points, m.status.Level, m.status.PointsToNext)),
			ui.LabelValue("Streak", ui.StreakText(u.CurrentStreak)),
			ui.LabelValue("Badges", len(m.status.Badges)),
		))
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(ui.Muted.Render("Loading…") + "\n")
	}
	if m.err != nil {
		b.WriteString(ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n")
	}

	var lastProject int64 = -1
	for i, t := range m.tasks {
		if t.ProjectID != lastProject {
			name := m.projects[t.ProjectID]
			if name == "" {
				name = fmt.Sprintf("project %d", t.ProjectID)
			}
			b.WriteString(ui.H2.Render(ui.IconBox+" "+name) + "\n")
			lastProject = t.ProjectID
		}

		line := fmt.Sprintf("%s #%d %s %s", ui.TaskState(t.Completed), t.ID, t.Title, ui.Muted.Render(fmt.Sprintf("(%d pts)", t.Points)))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if len(m.tasks) == 0 && !m.loading {
		b.WriteString(ui.Muted.Render("No tasks yet. Add one with `fb add`.") + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("c/enter complete · u undo · r refresh · q quit") + "\n")
	return b.String()
}
