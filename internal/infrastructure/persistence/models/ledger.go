package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/shared"
	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// TransactionModel is the persistence model for a ledger entry. The amount
// is stored in integer minor units alongside its currency code; the type
// column is the income/expense discriminator.
type TransactionModel struct {
	BaseModel
	Type        string     `gorm:"type:varchar(10);not null;index"`
	Date        *time.Time `gorm:"index"`
	AmountMinor int64      `gorm:"not null"`
	Currency    string     `gorm:"type:varchar(3);not null"`
	Mode        string     `gorm:"type:varchar(50)"`
	Note        string     `gorm:"type:text"`
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientName  string     `gorm:"type:varchar(200);not null"`
	OrderID     *string    `gorm:"type:varchar(50);index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction. The type
// discriminator is matched exhaustively; anything else is a corrupt record.
func (m *TransactionModel) ToDomain() (*ledger.Transaction, error) {
	txType := ledger.TransactionType(m.Type)
	switch txType {
	case ledger.TransactionTypeIncome, ledger.TransactionTypeExpense:
	default:
		return nil, shared.ErrUnknownTransactionType
	}

	amount, err := valueobject.NewMoney(m.AmountMinor, valueobject.Currency(m.Currency))
	if err != nil {
		return nil, err
	}

	return &ledger.Transaction{
		BaseEntity: m.BaseModel.ToDomain(),
		Type:       txType,
		Date:       m.Date,
		Amount:     amount,
		Mode:       m.Mode,
		Note:       m.Note,
		ClientID:   m.ClientID,
		ClientName: m.ClientName,
		OrderID:    m.OrderID,
	}, nil
}

// FromDomain populates the persistence model from a domain Transaction
func (m *TransactionModel) FromDomain(t *ledger.Transaction) error {
	if t.ClientID == uuid.Nil {
		return shared.ErrMissingClientID
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Type = t.Type.String()
	m.Date = t.Date
	m.AmountMinor = t.Amount.Minor()
	m.Currency = string(t.Amount.Currency())
	m.Mode = t.Mode
	m.Note = t.Note
	m.ClientID = t.ClientID
	m.ClientName = t.ClientName
	m.OrderID = t.OrderID
	return nil
}
