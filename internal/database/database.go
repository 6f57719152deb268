package database

import (
	"context"

	"github.com/tidewatch/backend/internal/config"
	"github.com/tidewatch/backend/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}
