package usecase

import "context"

// IDGenerator выдаёт идентификаторы новых продуктов, уникальные в пределах процесса.
type IDGenerator interface {
	NewID() string
}

// EventOutbox принимает события каталога для асинхронной публикации. Enqueue не блокирует.
type EventOutbox interface {
	Enqueue(event *OutboxEvent) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
