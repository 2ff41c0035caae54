package staticdata

import (
	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo serves the admin console notifications. Read-only.
type NotificationRepo struct {
	items []entity.Notification
}

// NewNotificationRepository seeds the demo notifications.
func NewNotificationRepository() *NotificationRepo {
	return &NotificationRepo{items: []entity.Notification{
		{ID: "1", Title: "Kam qolgan mahsulot", Message: "Paracetamol 500mg zaxirasi 15 donagacha kamaydi", Type: entity.NotificationWarning, CreatedAt: "2024-06-12T08:05:00Z"},
		{ID: "2", Title: "Yangi buyurtma", Message: "Ahmad Karimov tomonidan yangi buyurtma (#001234)", Type: entity.NotificationInfo, CreatedAt: "2024-06-12T10:31:00Z"},
		{ID: "3", Title: "Muddati tugagan dori", Message: "Ibuprofen 400mg ning muddati tugaydi (3 kun)", Type: entity.NotificationError, CreatedAt: "2024-06-11T07:00:00Z"},
		{ID: "4", Title: "Zaxira to'ldirildi", Message: "Vitamin D3 1000IU zaxirasi 100 donaga to'ldirildi", Type: entity.NotificationSuccess, CreatedAt: "2024-06-10T16:40:00Z", Read: true},
	}}
}

// List returns all notifications.
func (r *NotificationRepo) List() []entity.Notification {
	out := make([]entity.Notification, len(r.items))
	copy(out, r.items)
	return out
}

// GetByID returns one notification or domain.ErrNotFound.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	for _, n := range r.items {
		if n.ID == id {
			n := n
			return &n, nil
		}
	}
	return nil, domain.ErrNotFound
}
