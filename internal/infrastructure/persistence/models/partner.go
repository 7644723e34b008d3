package models

import (
	"github.com/smedge/backend/internal/domain/partner"
)

// ClientModel is the persistence model for the Client aggregate. The
// client's credit and debit entries live in the transactions table and are
// assembled by the repository.
type ClientModel struct {
	AggregateModel
	Name  string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Email string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// FromDomain populates the persistence model from a domain Client
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Email = c.Email
}
