// Package models contains GORM-specific persistence models that map to
// database tables. These models are separate from domain entities to keep
// the domain layer free from ORM concerns.
//
// Structure:
// - base.go: shared base models (BaseModel, AggregateModel)
// - partner.go: client model
// - ledger.go: transaction model
// - trade.go: order and order item models
package models
