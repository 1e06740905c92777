package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dmitrijs2005/growlog/internal/client/models"
)

// Login runs Google sign-in. A failed sign-in prints the reason and leaves
// the user anonymous.
func (a *App) Login(ctx context.Context) error {
	fmt.Fprintln(a.out, "Signing in with Google... (Ctrl+C to cancel)")

	// Ctrl+C cancels the handshake instead of the whole program.
	signInCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	res := a.services.Auth.SignIn(signInCtx)
	stop()

	if !res.Success {
		fmt.Fprintln(a.out, "Sign-in failed:", res.Message)
		return nil
	}

	cur, _ := a.session.Current()
	fmt.Fprintf(a.out, "Signed in as %s.\n", displayName(cur.User.Name, cur.User.Email))
	a.onboardingHint(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.services.Auth.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	cur, ok := a.session.Current()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	u := cur.User
	fmt.Fprintf(a.out, "%s <%s>\nid: %s\nrole: %s\n", displayName(u.Name, u.Email), u.Email, u.ID, u.Role)
	if u.IsAdmin() {
		fmt.Fprintln(a.out, "administrator access: yes")
	}
	if u.ImageURL != "" {
		fmt.Fprintf(a.out, "avatar: %s\n", u.ImageURL)
	}
	return nil
}

// Onboard prints the feature tour and remembers that it was shown.
func (a *App) Onboard(ctx context.Context) error {
	fmt.Fprintln(a.out, `growlog keeps track of your personal growth:
  diary     write down how the day went and how you feel
  habits    build routines and keep your streak going
  goals     set goals and track progress towards them
  todos     keep a simple task list
  messages  share with the community`)
	return a.session.CompleteOnboarding(ctx)
}

// List prints the first page of a feature, or the following page when more
// is set.
func (a *App) List(ctx context.Context, feature string, more bool) error {
	f, ok := a.feeds[feature]
	if !ok {
		return fmt.Errorf("unknown list %q", feature)
	}

	if !more {
		f.reset()
	} else if !f.hasMore() {
		fmt.Fprintln(a.out, "No more items.")
		return nil
	}

	lines, err := f.next(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 && !more {
		fmt.Fprintln(a.out, "Nothing here yet.")
		return nil
	}
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	if f.hasMore() {
		fmt.Fprintf(a.out, "(type '%s more' to load more)\n", feature)
	}
	return nil
}

// Add prompts for a new item of the given feature and creates it.
func (a *App) Add(ctx context.Context, feature string) error {
	var (
		id  models.ID
		err error
	)

	switch feature {
	case "diary":
		id, err = a.addDiary(ctx)
	case "habits":
		id, err = a.addHabit(ctx)
	case "goals":
		id, err = a.addGoal(ctx)
	case "todos":
		id, err = a.addTodo(ctx)
	case "messages":
		id, err = a.postMessage(ctx)
	default:
		return fmt.Errorf("unknown feature %q", feature)
	}
	if err != nil {
		return err
	}

	if f, ok := a.feeds[feature]; ok {
		f.reset()
	}
	fmt.Fprintf(a.out, "Saved (id %s).\n", id)
	return nil
}

func (a *App) addDiary(ctx context.Context) (models.ID, error) {
	content, err := GetMultiline(a.reader, "How was your day?", a.out)
	if err != nil {
		return "", err
	}
	mood, err := GetSimpleText(a.reader, "Mood (great, good, okay, bad, awful; empty to skip)", a.out)
	if err != nil {
		return "", err
	}
	tags, err := GetList(a.reader, "Tags (comma separated, empty to skip)", a.out)
	if err != nil {
		return "", err
	}

	e, err := a.services.Diary.Create(ctx, models.DiaryInput{
		Content: content,
		Mood:    models.Mood(strings.ToUpper(mood)),
		Tags:    tags,
	})
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func (a *App) addHabit(ctx context.Context) (models.ID, error) {
	title, err := GetSimpleText(a.reader, "Habit", a.out)
	if err != nil {
		return "", err
	}
	desc, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return "", err
	}
	freq, err := GetSimpleText(a.reader, "Frequency (daily or weekly, default daily)", a.out)
	if err != nil {
		return "", err
	}

	h, err := a.services.Habits.Create(ctx, models.HabitInput{
		Title:       title,
		Description: desc,
		Frequency:   models.Frequency(strings.ToUpper(freq)),
	})
	if err != nil {
		return "", err
	}
	return h.ID, nil
}

func (a *App) addGoal(ctx context.Context) (models.ID, error) {
	title, err := GetSimpleText(a.reader, "Goal", a.out)
	if err != nil {
		return "", err
	}
	desc, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return "", err
	}
	target, err := a.readDate("Target date YYYY-MM-DD (optional)")
	if err != nil {
		return "", err
	}

	g, err := a.services.Goals.Create(ctx, models.GoalInput{Title: title, Description: desc, TargetDate: target})
	if err != nil {
		return "", err
	}
	return g.ID, nil
}

func (a *App) addTodo(ctx context.Context) (models.ID, error) {
	title, err := GetSimpleText(a.reader, "Todo", a.out)
	if err != nil {
		return "", err
	}
	due, err := a.readDate("Due date YYYY-MM-DD (optional)")
	if err != nil {
		return "", err
	}

	t, err := a.services.Todos.Create(ctx, models.TodoInput{Title: title, DueDate: due})
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

func (a *App) postMessage(ctx context.Context) (models.ID, error) {
	content, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return "", err
	}
	m, err := a.services.Messages.Post(ctx, content)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

func (a *App) readDate(prompt string) (*time.Time, error) {
	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil || s == "" {
		return nil, err
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}

func (a *App) HabitCheck(ctx context.Context, id string) error {
	h, err := a.services.Habits.CheckIn(ctx, models.ID(id))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Checked in %q, streak %d.\n", h.Title, h.Streak)
	return nil
}

func (a *App) TodoDone(ctx context.Context, id string) error {
	t, err := a.services.Todos.SetCompleted(ctx, models.ID(id), true)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Done: %s\n", t.Title)
	return nil
}
