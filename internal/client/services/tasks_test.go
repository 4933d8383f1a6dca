package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollection(store *fakeTaskStore, owner string) (*TaskCollection, *recordingNotifier) {
	n := &recordingNotifier{}
	return NewTaskCollection(store, fakeIdentity{id: owner}, n, nopLogger{}), n
}

func seed(t *testing.T, c *TaskCollection, store *fakeTaskStore, tasks ...task.Task) {
	t.Helper()
	store.list = tasks
	require.NoError(t, c.Load(context.Background()))
	store.calls = 0
}

func TestLoad_ReplacesLocalState(t *testing.T) {
	store := &fakeTaskStore{list: []task.Task{{ID: "2"}, {ID: "1"}}}
	c, _ := newCollection(store, "u1")

	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, []task.Task{{ID: "2"}, {ID: "1"}}, c.List())
	assert.Equal(t, "u1", store.gotOwner)

	store.list = []task.Task{{ID: "3"}}
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, []task.Task{{ID: "3"}}, c.List())
}

func TestLoad_WithoutIdentity_ClearsAndSkipsStore(t *testing.T) {
	store := &fakeTaskStore{list: []task.Task{{ID: "1"}}}
	c, _ := newCollection(store, "")

	require.NoError(t, c.Load(context.Background()))
	assert.Empty(t, c.List())
	assert.Zero(t, store.calls)
}

func TestLoad_Failure_KeepsStateAndReturnsPersistenceError(t *testing.T) {
	store := &fakeTaskStore{}
	c, n := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1"})

	store.err = errBoom
	err := c.Load(context.Background())

	require.ErrorIs(t, err, common.ErrPersistence)
	require.ErrorIs(t, err, errBoom)
	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "load tasks", pe.Op)
	assert.Equal(t, []task.Task{{ID: "1"}}, c.List())
	assert.Equal(t, 1, n.errors())
}

func TestAdd_PrependsReturnedTask(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "old"})

	store.created = task.Task{ID: "new", Title: "write", Status: task.StatusTodo}
	got, err := c.Add(context.Background(), task.Draft{Title: "  write "})

	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
	assert.Equal(t, []string{"new", "old"}, ids(c.List()))
	assert.Equal(t, "write", store.gotDraft.Title)
	assert.Equal(t, task.StatusTodo, store.gotDraft.Status)
	assert.Equal(t, task.PriorityMedium, store.gotDraft.Priority)
	assert.False(t, store.gotDraft.IsStarred)
}

func TestAdd_EmptyTitle_RejectedBeforeStore(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")

	_, err := c.Add(context.Background(), task.Draft{Title: "   "})

	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Zero(t, store.calls)
	assert.Empty(t, c.List())
}

func TestAdd_Failure_LeavesStateUnchanged(t *testing.T) {
	store := &fakeTaskStore{}
	c, n := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1"})

	store.err = errBoom
	_, err := c.Add(context.Background(), task.Draft{Title: "x"})

	require.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, []string{"1"}, ids(c.List()))
	assert.Equal(t, 1, store.calls, "no retry")
	assert.Equal(t, 1, n.errors())
}

func TestAdd_WithoutIdentity_Skipped(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "")

	got, err := c.Add(context.Background(), task.Draft{Title: "x"})

	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.Zero(t, store.calls)
	assert.Empty(t, c.List())
}

func TestUpdate_MergesPatchLocally(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store,
		task.Task{ID: "2", Title: "b", Priority: task.PriorityLow},
		task.Task{ID: "1", Title: "a", Priority: task.PriorityLow})

	err := c.Update(context.Background(), "1", task.Patch{Priority: task.Ptr(task.PriorityHigh)})
	require.NoError(t, err)

	list := c.List()
	assert.Equal(t, []string{"2", "1"}, ids(list), "order is not changed by updates")
	assert.Equal(t, task.PriorityHigh, list[1].Priority)
	assert.Equal(t, "a", list[1].Title)
	assert.Equal(t, task.PriorityLow, list[0].Priority)
	assert.Equal(t, "1", store.gotID)
	assert.Equal(t, "u1", store.gotOwner)
}

func TestUpdate_UnknownLocalID_NoMerge(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1", Title: "a"})

	require.NoError(t, c.Update(context.Background(), "ghost", task.Patch{Title: task.Ptr("z")}))
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, []task.Task{{ID: "1", Title: "a"}}, c.List())
}

func TestUpdate_Failure_LeavesStateUnchanged(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1", Title: "a"})

	store.err = errBoom
	err := c.Update(context.Background(), "1", task.Patch{Title: task.Ptr("z")})

	require.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, "a", c.List()[0].Title)
}

func TestUpdate_NoRemoteRow_NotAnError(t *testing.T) {
	store := &fakeTaskStore{}
	c, n := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1", Title: "a"})

	store.err = fmt.Errorf("%w: not found", common.ErrorNotFound)
	require.NoError(t, c.Update(context.Background(), "1", task.Patch{Title: task.Ptr("z")}))
	assert.Equal(t, "z", c.List()[0].Title)
	assert.Zero(t, n.errors())
}

func TestUpdate_InvalidPatch_RejectedBeforeStore(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1", Title: "a"})

	err := c.Update(context.Background(), "1", task.Patch{Status: task.Ptr(task.Status("archived"))})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Zero(t, store.calls)
}

func TestDelete(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "2"}, task.Task{ID: "1"})

	require.NoError(t, c.Delete(context.Background(), "2"))
	assert.Equal(t, []string{"1"}, ids(c.List()))

	store.err = errBoom
	require.ErrorIs(t, c.Delete(context.Background(), "1"), common.ErrPersistence)
	assert.Equal(t, []string{"1"}, ids(c.List()), "local entry retained on failure")
}

func TestDelete_UnknownID_ListUnchanged(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "2", Title: "b"}, task.Task{ID: "1", Title: "a"})
	before := c.List()

	require.NoError(t, c.Delete(context.Background(), "missing"))
	assert.Equal(t, before, c.List())
	assert.Equal(t, "missing", store.gotID)
}

func TestToggleComplete(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store,
		task.Task{ID: "1", Status: task.StatusTodo},
		task.Task{ID: "2", Status: task.StatusInProgress},
		task.Task{ID: "3", Status: task.StatusCompleted})

	ctx := context.Background()
	require.NoError(t, c.ToggleComplete(ctx, "1"))
	require.NoError(t, c.ToggleComplete(ctx, "2"))
	require.NoError(t, c.ToggleComplete(ctx, "3"))

	list := c.List()
	assert.Equal(t, task.StatusCompleted, list[0].Status)
	assert.Equal(t, task.StatusCompleted, list[1].Status)
	assert.Equal(t, task.StatusTodo, list[2].Status)
	assert.Equal(t, 3, store.calls)
}

func TestToggleComplete_Involutive(t *testing.T) {
	for _, start := range []task.Status{task.StatusTodo, task.StatusCompleted} {
		t.Run(string(start), func(t *testing.T) {
			store := &fakeTaskStore{}
			c, _ := newCollection(store, "u1")
			seed(t, c, store, task.Task{ID: "1", Title: "a", Status: start})
			before := c.List()[0]

			ctx := context.Background()
			require.NoError(t, c.ToggleComplete(ctx, "1"))
			assert.NotEqual(t, start, c.List()[0].Status)
			require.NoError(t, c.ToggleComplete(ctx, "1"))

			assert.Equal(t, before, c.List()[0])
			assert.Equal(t, 2, store.calls)
		})
	}
}

func TestToggles_UnknownID_NoRemoteCall(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1"})

	require.NoError(t, c.ToggleComplete(context.Background(), "nope"))
	require.NoError(t, c.ToggleStar(context.Background(), "nope"))
	assert.Zero(t, store.calls)
}

func TestToggleStar(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1"})

	require.NoError(t, c.ToggleStar(context.Background(), "1"))
	assert.True(t, c.List()[0].IsStarred)
	require.NotNil(t, store.gotPatch.IsStarred)
	assert.True(t, *store.gotPatch.IsStarred)
	assert.Nil(t, store.gotPatch.Status)

	require.NoError(t, c.ToggleStar(context.Background(), "1"))
	assert.False(t, c.List()[0].IsStarred)
}

func TestToggleStar_ChangesOnlyStar(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	full := task.Task{
		ID:          "1",
		Title:       "write report",
		Description: "quarterly numbers",
		Priority:    task.PriorityHigh,
		Status:      task.StatusInProgress,
		DueDate:     "2025-03-10",
		Category:    "work",
		IsStarred:   false,
		CreatedAt:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	seed(t, c, store, full)

	require.NoError(t, c.ToggleStar(context.Background(), "1"))

	want := full
	want.IsStarred = true
	assert.Equal(t, want, c.List()[0])
	assert.Equal(t, task.Patch{IsStarred: task.Ptr(true)}, store.gotPatch)
}

func TestStatsAndFilter_ReflectList(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store,
		task.Task{ID: "1", Status: task.StatusTodo, Category: "Work", IsStarred: true},
		task.Task{ID: "2", Status: task.StatusCompleted, Category: "home"},
		task.Task{ID: "3", Status: task.StatusInProgress, Category: "work"})

	assert.Equal(t, task.Stats{Total: 3, Completed: 1, InProgress: 1, Todo: 1, Active: 2}, c.Stats())
	assert.Equal(t, []string{"1", "3"}, ids(c.Filter(task.Filter{Category: "WORK"})))
	assert.Equal(t, []string{"1"}, ids(c.Filter(task.Filter{StarredOnly: true})))
}

func TestList_ReturnsCopy(t *testing.T) {
	store := &fakeTaskStore{}
	c, _ := newCollection(store, "u1")
	seed(t, c, store, task.Task{ID: "1", Title: "a"})

	l := c.List()
	l[0].Title = "mutated"
	assert.Equal(t, "a", c.List()[0].Title)
}

func TestConcurrentAccess(t *testing.T) {
	store := &fakeTaskStore{created: task.Task{ID: "x", Title: "t"}}
	c, _ := newCollection(store, "u1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Stats()
		}()
		go func() {
			defer wg.Done()
			_ = c.List()
		}()
	}
	wg.Wait()
}

func ids(tasks []task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
