package repository

import (
	"go-training-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindRecent(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error)
}
