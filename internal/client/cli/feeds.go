package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/pagination"
)

// feed is an infinite-scroll listing rendered as text lines.
type feed interface {
	next(ctx context.Context) ([]string, error)
	hasMore() bool
	reset()
}

type pagerFeed[T any] struct {
	pager  *pagination.Pager[T]
	format func(T) string
}

func newFeed[T any](p *pagination.Pager[T], format func(T) string) feed {
	return &pagerFeed[T]{pager: p, format: format}
}

func (f *pagerFeed[T]) next(ctx context.Context) ([]string, error) {
	items, err := f.pager.Next(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, f.format(it))
	}
	return lines, nil
}

func (f *pagerFeed[T]) hasMore() bool { return f.pager.HasMore() }
func (f *pagerFeed[T]) reset()        { f.pager.Reset() }

func (a *App) buildFeeds() map[string]feed {
	feeds := map[string]feed{}
	if s := a.services.Diary; s != nil {
		feeds["diary"] = newFeed(s.Pager(a.pageSize), formatDiary)
	}
	if s := a.services.Habits; s != nil {
		feeds["habits"] = newFeed(s.Pager(a.pageSize), formatHabit)
	}
	if s := a.services.Goals; s != nil {
		feeds["goals"] = newFeed(s.Pager(a.pageSize), formatGoal)
	}
	if s := a.services.Todos; s != nil {
		feeds["todos"] = newFeed(s.Pager(a.pageSize), formatTodo)
	}
	if s := a.services.Messages; s != nil {
		feeds["messages"] = newFeed(s.Pager(a.pageSize), formatMessage)
	}
	return feeds
}

func (a *App) resetFeeds() {
	for _, f := range a.feeds {
		f.reset()
	}
}

const dateLayout = "2006-01-02"

func formatDiary(e models.DiaryEntry) string {
	s := fmt.Sprintf("[%s] %s", e.ID, e.CreatedAt.Format(dateLayout))
	if e.Mood != "" {
		s += " " + strings.ToLower(string(e.Mood))
	}
	s += ": " + firstLine(e.Content)
	if len(e.Tags) > 0 {
		s += " #" + strings.Join(e.Tags, " #")
	}
	return s
}

func formatHabit(h models.Habit) string {
	mark := " "
	if h.CompletedToday {
		mark = "x"
	}
	return fmt.Sprintf("[%s] [%s] %s (%s, streak %d)", h.ID, mark, h.Title, strings.ToLower(string(h.Frequency)), h.Streak)
}

func formatGoal(g models.Goal) string {
	s := fmt.Sprintf("[%s] %s %d%% %s", g.ID, g.Title, g.Progress, strings.ToLower(string(g.Status)))
	if g.TargetDate != nil {
		s += " due " + g.TargetDate.Format(dateLayout)
	}
	return s
}

func formatTodo(t models.Todo) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	s := fmt.Sprintf("[%s] [%s] %s", t.ID, mark, t.Title)
	if t.DueDate != nil {
		s += " due " + t.DueDate.Format(dateLayout)
	}
	return s
}

func formatMessage(m models.Message) string {
	return fmt.Sprintf("[%s] %s: %s", m.ID, m.Author.Name, firstLine(m.Content))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
