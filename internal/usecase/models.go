package usecase

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/google/uuid"
)

// ADMIN STATE

// AdminState — снимок состояния страницы администратора для отображения.
type AdminState struct {
	OpenProductIDs []string
	Editing        *domain.Product
	DiscountDraft  domain.DiscountTier
	CouponDraft    domain.Coupon
	ProductDraft   domain.ProductDraft
	ProductForm    FormVisibility
}

// PRODUCT QUERIES

// GetProductsReq запрос информации о продуктах по их идентификаторам.
type GetProductsReq struct {
	IDs []string
}

// GetProductsRes — найденные продукты в порядке запроса и ненайденные идентификаторы.
type GetProductsRes struct {
	Products         []domain.Product
	NotFoundProducts []string
}

func NewGetProductsReq(ids []string) *GetProductsReq {
	return &GetProductsReq{IDs: ids}
}

func NewGetProductsRes(products []domain.Product, notFound []string) *GetProductsRes {
	return &GetProductsRes{
		Products:         products,
		NotFoundProducts: notFound,
	}
}

// OUTBOX

type OutboxEventType string

const (
	ProductUpdated OutboxEventType = "product.updated"
	ProductAdded   OutboxEventType = "product.added"
	CouponAdded    OutboxEventType = "coupon.added"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
	Failed     OutboxStatus = "failed"
)

// OutboxEvent — событие каталога, ожидающее публикации.
type OutboxEvent struct {
	EventID   string
	EventType OutboxEventType
	Key       string // ID продукта или код купона
	Payload   []byte
	Status    OutboxStatus
	CreatedAt time.Time
	Attempts  int
}

// ProductEventPayload — тело событий product.*.
type ProductEventPayload struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Price     int64                  `json:"price"`
	Stock     int64                  `json:"stock"`
	Discounts []DiscountEventPayload `json:"discounts"`
}

type DiscountEventPayload struct {
	Quantity int64   `json:"quantity"`
	Rate     float64 `json:"rate"`
}

// CouponEventPayload — тело события coupon.added.
type CouponEventPayload struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

// EventEnvelope — то, что уходит в Kafka.
type EventEnvelope struct {
	EventID    string          `json:"event_id"`
	EventType  OutboxEventType `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// WriteRawMessageReq — запрос продюсеру на отправку готового сообщения.
type WriteRawMessageReq struct {
	Key       string
	EventID   string
	EventType OutboxEventType
	Payload   []byte
}

// MAPPERS

func NewProductEvent(eventType OutboxEventType, product domain.Product) (*OutboxEvent, error) {
	discounts := make([]DiscountEventPayload, 0, len(product.Discounts))
	for _, d := range product.Discounts {
		discounts = append(discounts, DiscountEventPayload{Quantity: d.Quantity, Rate: d.Rate})
	}

	return newOutboxEvent(eventType, product.ID, ProductEventPayload{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
		Discounts: discounts,
	})
}

func NewCouponEvent(coupon domain.Coupon) (*OutboxEvent, error) {
	return newOutboxEvent(CouponAdded, coupon.Code, CouponEventPayload{
		Name:          coupon.Name,
		Code:          coupon.Code,
		DiscountType:  string(coupon.DiscountType),
		DiscountValue: coupon.DiscountValue,
	})
}

func newOutboxEvent(eventType OutboxEventType, key string, data any) (*OutboxEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	eventID := uuid.NewString()
	payload, err := json.Marshal(EventEnvelope{
		EventID:    eventID,
		EventType:  eventType,
		OccurredAt: now,
		Data:       raw,
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		Key:       key,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: now,
	}, nil
}

func NewWriteRawMessageReq(event *OutboxEvent) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:       event.Key,
		EventID:   event.EventID,
		EventType: event.EventType,
		Payload:   event.Payload,
	}
}
