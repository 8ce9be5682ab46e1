package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teco-Runi/task-manager-app/internal/models"
)

func TestListTasksScopedByOwner(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	_, err := svc.AddTask(ctx, "alice@x.com", "buy milk", "")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "alice@x.com", "walk dog", "")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "bob@x.com", "file taxes", "")
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx, "alice@x.com")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "buy milk", tasks[0].TaskText)
	assert.Equal(t, "walk dog", tasks[1].TaskText)

	tasks, err = svc.ListTasks(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestAddTaskDefaultsStatusToPending(t *testing.T) {
	svc := newTestService(newMemStore())

	task, err := svc.AddTask(context.Background(), "alice@x.com", "buy milk", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.False(t, task.ID.IsZero())
}

func TestAddTaskKeepsSuppliedStatus(t *testing.T) {
	svc := newTestService(newMemStore())

	task, err := svc.AddTask(context.Background(), "alice@x.com", "buy milk", "Completed")
	require.NoError(t, err)
	assert.Equal(t, "Completed", task.Status)
}

func TestAddTaskValidation(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	var validationErr *ValidationError
	_, err := svc.AddTask(ctx, "", "buy milk", "")
	require.ErrorAs(t, err, &validationErr)
	_, err = svc.AddTask(ctx, "alice@x.com", "", "")
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateTaskPatchesStatusOnly(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	task, err := svc.AddTask(ctx, "alice@x.com", "write spec", "")
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, task.ID.Hex(), models.TaskPatch{Status: strptr("Completed")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Completed", updated.Status)
	assert.Equal(t, "write spec", updated.TaskText)
}

func TestUpdateTaskUnknownIDReturnsNil(t *testing.T) {
	svc := newTestService(newMemStore())

	task, err := svc.UpdateTask(context.Background(), "bbbbbbbbbbbbbbbbbbbbbbbb", models.TaskPatch{Status: strptr("Completed")})
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestUpdateTaskInvalidID(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.UpdateTask(context.Background(), "not-a-hex-id", models.TaskPatch{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	task, err := svc.AddTask(ctx, "alice@x.com", "buy milk", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID.Hex()))
	require.NoError(t, svc.DeleteTask(ctx, task.ID.Hex()))
}

func TestDeleteTaskInvalidID(t *testing.T) {
	svc := newTestService(newMemStore())

	err := svc.DeleteTask(context.Background(), "not-a-hex-id")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestTaskStorageErrors(t *testing.T) {
	store := newMemStore()
	store.taskErr = errors.New("connection reset")
	svc := newTestService(store)
	ctx := context.Background()

	var storageErr *StorageError
	_, err := svc.ListTasks(ctx, "alice@x.com")
	require.ErrorAs(t, err, &storageErr)
	_, err = svc.AddTask(ctx, "alice@x.com", "buy milk", "")
	require.ErrorAs(t, err, &storageErr)
	_, err = svc.UpdateTask(ctx, "bbbbbbbbbbbbbbbbbbbbbbbb", models.TaskPatch{})
	require.ErrorAs(t, err, &storageErr)
	err = svc.DeleteTask(ctx, "bbbbbbbbbbbbbbbbbbbbbbbb")
	require.ErrorAs(t, err, &storageErr)
}

// Full flow: register, login, add, complete, delete.
func TestTaskLifecycleScenario(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "alice@x.com", "pw123"))

	user, err := svc.Login(ctx, "alice@x.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	task, err := svc.AddTask(ctx, "alice@x.com", "write spec", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, task.Status)

	updated, err := svc.UpdateTask(ctx, task.ID.Hex(), models.TaskPatch{Status: strptr("Completed")})
	require.NoError(t, err)
	assert.Equal(t, "write spec", updated.TaskText)
	assert.Equal(t, "Completed", updated.Status)

	require.NoError(t, svc.DeleteTask(ctx, task.ID.Hex()))

	tasks, err := svc.ListTasks(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
