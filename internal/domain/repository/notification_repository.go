package repository

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// NotificationRepository is the port for admin console notifications.
type NotificationRepository interface {
	List() []entity.Notification
	GetByID(id string) (*entity.Notification, error)
}
