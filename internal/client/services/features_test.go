package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type hit struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// featureAPI answers every request with reply and records what it saw.
type featureAPI struct {
	mu    sync.Mutex
	hits  []hit
	reply string
	code  int
}

func newFeatureAPI(t *testing.T, code int, reply string) (*featureAPI, client.Client) {
	t.Helper()
	f := &featureAPI{reply: reply, code: code}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}
		f.mu.Lock()
		f.hits = append(f.hits, hit{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.code)
		_, _ = io.WriteString(w, f.reply)
	}))
	t.Cleanup(srv.Close)

	c, err := client.NewAPIClient(srv.URL, 2*time.Second, nil)
	require.NoError(t, err)
	return f, c
}

func (f *featureAPI) last(t *testing.T) hit {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.hits)
	return f.hits[len(f.hits)-1]
}

func (f *featureAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.hits)
}

// ---- diary ----

func TestDiary_ListDecodesEnvelope(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{
		"data":[{"id":3,"content":"good day","mood":"GOOD","tags":["work"],"createdAt":"2024-05-01T10:00:00Z"}],
		"pagination":{"page":2,"limit":10,"total":11,"hasMore":false}}`)
	svc := NewDiaryService(c)

	page, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, models.ID("3"), page.Data[0].ID)
	assert.Equal(t, models.MoodGood, page.Data[0].Mood)
	assert.Equal(t, []string{"work"}, page.Data[0].Tags)
	assert.Equal(t, 11, page.Pagination.Total)
	assert.False(t, page.Pagination.HasMore)

	h := api.last(t)
	assert.Equal(t, http.MethodGet, h.Method)
	assert.Equal(t, "/diary", h.Path)
	assert.Equal(t, "limit=10&page=2", h.Query)
}

func TestDiary_ListClampsPaging(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{"pagination":{}}`)

	page, err := NewDiaryService(c).List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, "limit=20&page=1", api.last(t).Query)
}

func TestDiary_CreateUpdateDelete(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{"id":"d1","content":"x","mood":"OKAY"}`)
	svc := NewDiaryService(c)
	ctx := context.Background()

	e, err := svc.Create(ctx, models.DiaryInput{Content: "x", Mood: models.MoodOkay})
	require.NoError(t, err)
	assert.Equal(t, models.ID("d1"), e.ID)
	assert.Equal(t, hit{Method: "POST", Path: "/diary", Body: map[string]any{"content": "x", "mood": "OKAY"}}, api.last(t))

	_, err = svc.Update(ctx, "d1", models.DiaryInput{Content: "y"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", api.last(t).Method)
	assert.Equal(t, "/diary/d1", api.last(t).Path)

	require.NoError(t, svc.Delete(ctx, "d1"))
	assert.Equal(t, "DELETE", api.last(t).Method)
}

func TestDiary_Validation(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{}`)
	svc := NewDiaryService(c)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.DiaryInput{Content: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(ctx, models.DiaryInput{Content: "x", Mood: "ECSTATIC"})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Update(ctx, "", models.DiaryInput{Content: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, svc.Delete(ctx, ""), ErrInvalidInput)

	assert.Zero(t, api.count())
}

func TestDiary_PagerWalksPages(t *testing.T) {
	var mu sync.Mutex
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()
		if r.URL.Query().Get("page") == "1" {
			_, _ = io.WriteString(w, `{"data":[{"id":1,"content":"a"},{"id":2,"content":"b"}],"pagination":{"page":1,"limit":2,"total":3,"hasMore":true}}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":[{"id":3,"content":"c"}],"pagination":{"page":2,"limit":2,"total":3,"hasMore":false}}`)
	}))
	t.Cleanup(srv.Close)
	c, err := client.NewAPIClient(srv.URL, time.Second, nil)
	require.NoError(t, err)

	p := NewDiaryService(c).Pager(2)
	for p.HasMore() {
		_, err := p.Next(context.Background())
		require.NoError(t, err)
	}

	items := p.Items()
	require.Len(t, items, 3)
	assert.Equal(t, models.ID("3"), items[2].ID)
	assert.Equal(t, []string{"limit=2&page=1", "limit=2&page=2"}, queries)
}

// ---- habits ----

func TestHabits(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{"id":5,"title":"run","frequency":"DAILY","streak":4,"completedToday":true}`)
	svc := NewHabitService(c)
	ctx := context.Background()

	h, err := svc.Create(ctx, models.HabitInput{Title: "run"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "run", "frequency": "DAILY"}, api.last(t).Body, "frequency defaults to daily")
	assert.Equal(t, 4, h.Streak)

	h, err = svc.CheckIn(ctx, "5")
	require.NoError(t, err)
	assert.True(t, h.CompletedToday)
	assert.Equal(t, "POST", api.last(t).Method)
	assert.Equal(t, "/habits/5/check", api.last(t).Path)

	require.NoError(t, svc.Delete(ctx, "5"))
	assert.Equal(t, "/habits/5", api.last(t).Path)

	_, err = svc.Create(ctx, models.HabitInput{Title: "x", Frequency: "HOURLY"})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.CheckIn(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

// ---- goals ----

func TestGoals_UpdateSendsOnlySetFields(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{"id":9,"title":"book","progress":40,"status":"IN_PROGRESS"}`)
	svc := NewGoalService(c)
	ctx := context.Background()

	progress := 40
	g, err := svc.Update(ctx, "9", models.GoalPatch{Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, 40, g.Progress)

	h := api.last(t)
	assert.Equal(t, "PATCH", h.Method)
	assert.Equal(t, "/goals/9", h.Path)
	assert.Equal(t, map[string]any{"progress": float64(40)}, h.Body)
}

func TestGoals_Validation(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{}`)
	svc := NewGoalService(c)
	ctx := context.Background()

	over := 101
	_, err := svc.Update(ctx, "9", models.GoalPatch{Progress: &over})
	require.ErrorIs(t, err, ErrInvalidInput)

	bad := models.GoalStatus("DONE")
	_, err = svc.Update(ctx, "9", models.GoalPatch{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)

	blank := " "
	_, err = svc.Update(ctx, "9", models.GoalPatch{Title: &blank})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, models.GoalInput{})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, api.count())

	_, err = svc.Create(ctx, models.GoalInput{Title: "read"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "9"))
	assert.Equal(t, 2, api.count())
}

// ---- todos ----

func TestTodos(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{"id":2,"title":"milk","completed":true}`)
	svc := NewTodoService(c)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.TodoInput{Title: "milk"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "milk"}, api.last(t).Body)

	td, err := svc.SetCompleted(ctx, "2", true)
	require.NoError(t, err)
	assert.True(t, td.Completed)
	assert.Equal(t, hit{Method: "PATCH", Path: "/todos/2", Body: map[string]any{"completed": true}}, api.last(t))

	require.NoError(t, svc.Delete(ctx, "2"))
	assert.Equal(t, "DELETE", api.last(t).Method)
}

// ---- messages ----

func TestMessages(t *testing.T) {
	api, c := newFeatureAPI(t, http.StatusOK, `{"id":1,"content":"hi","author":{"id":4,"name":"Ann"}}`)
	svc := NewMessageService(c)
	ctx := context.Background()

	m, err := svc.Post(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, "Ann", m.Author.Name)
	assert.Equal(t, models.ID("4"), m.Author.ID)
	assert.Equal(t, hit{Method: "POST", Path: "/messages", Body: map[string]any{"content": "hi"}}, api.last(t))

	long := make([]rune, MaxMessageLength+1)
	for i := range long {
		long[i] = 'ж'
	}
	_, err = svc.Post(ctx, string(long))
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Post(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, api.count())
}

// ---- failures ----

func TestFeatureErrorsCarryBackendMessage(t *testing.T) {
	_, c := newFeatureAPI(t, http.StatusUnauthorized, `{"message":"Not authorized, no token"}`)

	_, err := NewTodoService(c).List(context.Background(), 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Not authorized, no token", client.ErrorMessage(err, ""))
	assert.Contains(t, err.Error(), "list todos")
}
