package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/partner"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/infrastructure/persistence/models"
)

// GormClientRepository implements ClientRepository using GORM. The client's
// credit and debit entries live in the transactions table; the aggregate is
// assembled on load.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save persists a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	var model models.ClientModel
	model.FromDomain(client)
	return r.db.WithContext(ctx).Save(&model).Error
}

// FindByID finds a client by its ID and assembles its ledger entries
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.assemble(ctx, &model)
}

// FindByName finds a client by its exact name
func (r *GormClientRepository) FindByName(ctx context.Context, name string) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.assemble(ctx, &model)
}

// List returns all clients with their ledger entries, ordered by creation
func (r *GormClientRepository) List(ctx context.Context) ([]*partner.Client, error) {
	var clientModels []models.ClientModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]*partner.Client, 0, len(clientModels))
	for i := range clientModels {
		client, err := r.assemble(ctx, &clientModels[i])
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

// assemble rebuilds the client aggregate from its row and ledger entries.
// Credits are unapplied income entries in insertion order; fully consumed
// entries stay in the list with a zero amount.
func (r *GormClientRepository) assemble(ctx context.Context, model *models.ClientModel) (*partner.Client, error) {
	var txModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", model.ID).
		Order("created_at ASC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}

	credits := make([]*ledger.Transaction, 0)
	debits := make([]*ledger.Transaction, 0)
	for i := range txModels {
		tx, err := txModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		switch tx.Type {
		case ledger.TransactionTypeIncome:
			if tx.IsExtra() {
				credits = append(credits, tx)
			}
		case ledger.TransactionTypeExpense:
			debits = append(debits, tx)
		}
	}

	return partner.RehydrateClient(model.ToDomainAggregateRoot(), model.Name, model.Email, credits, debits), nil
}
