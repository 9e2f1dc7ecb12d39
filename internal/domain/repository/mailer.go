package repository

import "context"

// Mail - одно исходящее письмо
type Mail struct {
	To       string
	Subject  string
	Template string
	Data     interface{}
}

// Mailer отправляет письма
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
