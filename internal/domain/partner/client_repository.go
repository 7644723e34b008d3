package partner

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository defines the persistence contract for clients
type ClientRepository interface {
	// Save persists a client (insert or update by id)
	Save(ctx context.Context, client *Client) error

	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByName finds a client by its exact name
	FindByName(ctx context.Context, name string) (*Client, error)

	// List returns all clients ordered by name
	List(ctx context.Context) ([]*Client, error)
}
