package service

import (
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/store"
)

// Services groups the application services.
type Services struct {
	TaskService TaskService
}

// NewServices builds every service on top of the response store.
func NewServices(responses *store.ResponseStore, logger *logger.Logger) *Services {
	return &Services{
		TaskService: NewTaskService(responses, logger),
	}
}
