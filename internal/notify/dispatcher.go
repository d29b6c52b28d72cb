// Package notify builds and delivers the human-facing order
// notifications: a Telegram summary for staff and a confirmation email
// for the customer. Delivery is submit-and-forget; the payment webhook
// never waits on it.
package notify

import (
	"context"
	"log"
	"time"

	"shop-backoffice/internal/client"
	"shop-backoffice/internal/model"
)

type TaskKind string

const (
	TaskTelegram TaskKind = "telegram"
	TaskEmail    TaskKind = "email"
)

// Task carries a full order snapshot so workers need no database
// access of their own.
type Task struct {
	Kind  TaskKind
	Order *model.Order
	Items []*model.OrderItem
	// Override replaces the composed Telegram message verbatim.
	Override string
}

type Dispatcher interface {
	Submit(task Task)
	Close()
}

type AsyncDispatcher struct {
	tasks     chan Task
	done      chan struct{}
	telegram  client.TelegramClient
	mail      client.MailClient
	storeName string
}

func NewAsyncDispatcher(telegram client.TelegramClient, mail client.MailClient, storeName string) *AsyncDispatcher {
	d := &AsyncDispatcher{
		tasks:     make(chan Task, 64),
		done:      make(chan struct{}),
		telegram:  telegram,
		mail:      mail,
		storeName: storeName,
	}
	go d.run()
	return d
}

// Submit queues a task without blocking. A full queue drops the task;
// notifications are best-effort.
func (d *AsyncDispatcher) Submit(task Task) {
	select {
	case d.tasks <- task:
	default:
		log.Printf("notification queue full, dropping %s task for order %d", task.Kind, task.Order.OrderNumber)
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (d *AsyncDispatcher) Close() {
	close(d.tasks)
	<-d.done
}

func (d *AsyncDispatcher) run() {
	for task := range d.tasks {
		d.deliver(task)
	}
	close(d.done)
}

func (d *AsyncDispatcher) deliver(task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch task.Kind {
	case TaskTelegram:
		msg := BuildOrderMessage(task.Order, task.Override, time.Now())
		if err := d.telegram.SendMessage(ctx, msg); err != nil {
			log.Printf("telegram notification for order %d: %v", task.Order.OrderNumber, err)
		}
	case TaskEmail:
		subject, html, err := BuildOrderEmail(task.Order, task.Items, d.storeName)
		if err != nil {
			log.Printf("compose order email for order %d: %v", task.Order.OrderNumber, err)
			return
		}
		if err := d.mail.Send(ctx, task.Order.CustomerEmail, subject, html); err != nil {
			log.Printf("order email for order %d: %v", task.Order.OrderNumber, err)
		}
	}
}
