package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adaskevich/tasktracker/internal/models"
)

const defaultQueueSize = 64

// Dispatcher delivers status-change notifications asynchronously on a
// bounded queue. Enqueueing never blocks the request path and delivery
// failures are logged, never surfaced.
type Dispatcher struct {
	mailer Mailer
	queue  chan Message
	log    zerolog.Logger
}

// NewDispatcher creates a Dispatcher with the given queue capacity.
// If queueSize <= 0, defaultQueueSize is used.
func NewDispatcher(mailer Mailer, queueSize int, log zerolog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, queueSize),
		log:    log,
	}
}

// Start launches the delivery worker. It stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go d.run(ctx)
}

// NotifyStatusChange builds the status-change mail for the task's
// responsible person and enqueues it. Tasks without a responsible person
// produce no notification.
func (d *Dispatcher) NotifyStatusChange(task *models.Task, actor *models.User) {
	if task.ResponsiblePerson == nil {
		d.log.Debug().Uint64("task_id", task.ID).Msg("task has no responsible person, skipping notification")
		return
	}

	d.enqueue(Message{
		From:    actor.Email,
		To:      task.ResponsiblePerson.Email,
		Subject: fmt.Sprintf("Task «%s» status has been changed", task.Title),
		Body: fmt.Sprintf(
			"<h1>Hello, %s</h1><h3>For task «<i>%s</i>» status was changed to «<i>%s</i>»</h3>",
			task.ResponsiblePerson.Login, task.Title, task.Status.Name),
	})
}

// enqueue adds a message to the queue without blocking; when the queue is
// full the message is dropped and the drop is logged.
func (d *Dispatcher) enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn().Str("to", msg.To).Msg("notification queue full, dropping message")
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-d.queue:
			if !ok {
				return
			}
			if err := d.mailer.Send(msg); err != nil {
				d.log.Error().Err(err).Str("to", msg.To).Msg("notification delivery failed")
			}
		}
	}
}
