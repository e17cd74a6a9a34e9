package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaskevich/tasktracker/internal/config"
	"github.com/adaskevich/tasktracker/internal/models"
)

// recordingMailer collects sent messages behind a mutex.
type recordingMailer struct {
	mu   sync.Mutex
	msgs []Message
	done chan struct{}
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{done: make(chan struct{}, 16)}
}

func (m *recordingMailer) Send(msg Message) error {
	m.mu.Lock()
	m.msgs = append(m.msgs, msg)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *recordingMailer) messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.msgs...)
}

func (m *recordingMailer) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-m.done:
	case <-time.After(2 * time.Second):
		t.Fatal("mailer was never invoked")
	}
}

func statusChangeFixture() (*models.Task, *models.User) {
	task := &models.Task{
		ID:    1,
		Title: "Ship release",
		ResponsiblePerson: &models.User{
			ID:    2,
			Login: "dev",
			Email: "dev@example.com",
		},
		Status: models.TaskStatus{ID: 3, Name: "Done"},
	}
	actor := &models.User{ID: 4, Login: "admin", Email: "admin@example.com"}
	return task, actor
}

func TestNotifyStatusChange_DeliversToResponsiblePerson(t *testing.T) {
	mailer := newRecordingMailer()
	dispatcher := NewDispatcher(mailer, 4, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher.Start(ctx)

	task, actor := statusChangeFixture()
	dispatcher.NotifyStatusChange(task, actor)
	mailer.waitForSend(t)

	msgs := mailer.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "admin@example.com", msgs[0].From)
	assert.Equal(t, "dev@example.com", msgs[0].To)
	assert.Equal(t, "Task «Ship release» status has been changed", msgs[0].Subject)
	assert.Equal(t,
		"<h1>Hello, dev</h1><h3>For task «<i>Ship release</i>» status was changed to «<i>Done</i>»</h3>",
		msgs[0].Body)
}

func TestNotifyStatusChange_SkipsTaskWithoutResponsiblePerson(t *testing.T) {
	mailer := newRecordingMailer()
	dispatcher := NewDispatcher(mailer, 4, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher.Start(ctx)

	task, actor := statusChangeFixture()
	task.ResponsiblePerson = nil
	dispatcher.NotifyStatusChange(task, actor)

	select {
	case <-mailer.done:
		t.Fatal("notification sent for a task without a responsible person")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotifyStatusChange_DropsWhenQueueFull(t *testing.T) {
	mailer := newRecordingMailer()
	// Worker never started: the queue fills and overflow is dropped,
	// without blocking the caller.
	dispatcher := NewDispatcher(mailer, 1, zerolog.Nop())

	task, actor := statusChangeFixture()
	finished := make(chan struct{})
	go func() {
		dispatcher.NotifyStatusChange(task, actor)
		dispatcher.NotifyStatusChange(task, actor)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
	assert.Empty(t, mailer.messages())
}

func TestSMTPMailer_UnconfiguredIsNoOp(t *testing.T) {
	mailer := NewSMTPMailer(config.MailConfig{}, zerolog.Nop())

	err := mailer.Send(Message{
		From: "a@example.com",
		To:   "b@example.com",
	})

	// Partial or absent transport configuration disables mail quietly
	assert.NoError(t, err)
}
