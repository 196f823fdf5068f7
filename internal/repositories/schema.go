package repositories

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"inventory/internal/models"
	"inventory/pkg/logger"
)

// SchemaManager creates the inventory tables. Once a call has succeeded,
// later calls are no-ops; a failed call may be retried.
type SchemaManager struct {
	db          *gorm.DB
	mu          sync.Mutex
	initialized bool
}

// NewSchemaManager creates a new instance of SchemaManager.
func NewSchemaManager(db *gorm.DB) *SchemaManager {
	return &SchemaManager{db: db}
}

// InitializeSchema creates the products and buyers tables when they are
// absent. Existing tables are left as they are.
func (m *SchemaManager) InitializeSchema(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	migrator := m.db.WithContext(ctx).Migrator()
	for _, model := range []interface{}{&models.Product{}, &models.Buyer{}} {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return storageFailure("initialize schema", err)
		}
	}

	m.initialized = true
	logger.Info().Msg("inventory schema initialized")
	return nil
}

// Initialized reports whether InitializeSchema has succeeded.
func (m *SchemaManager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}
