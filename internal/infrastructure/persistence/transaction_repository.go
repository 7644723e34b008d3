package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/infrastructure/persistence/models"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Save persists a ledger entry. Saving the same entry again updates it in
// place, which is how consumed credit amounts reach storage.
func (r *GormTransactionRepository) Save(ctx context.Context, tx *ledger.Transaction) error {
	var model models.TransactionModel
	if err := model.FromDomain(tx); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(&model).Error
}

// FindByID finds a ledger entry by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// ListForClient returns a client's ledger entries in insertion order
func (r *GormTransactionRepository) ListForClient(ctx context.Context, clientID uuid.UUID) ([]*ledger.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(txModels)
}

// List returns every ledger entry in insertion order
func (r *GormTransactionRepository) List(ctx context.Context) ([]*ledger.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&txModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(txModels)
}

func toDomainTransactions(txModels []models.TransactionModel) ([]*ledger.Transaction, error) {
	txs := make([]*ledger.Transaction, 0, len(txModels))
	for i := range txModels {
		tx, err := txModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
