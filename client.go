package roster

import (
	"context"
	"fmt"
)

// Client is the main interface for managing people.
// It validates domain rules before delegating to the store; the store
// itself only enforces the unique-email constraint.
type Client struct {
	store  *Store
	config Config
	debug  *DebugLogger
}

// New creates a new Roster client.
func New(cfg Config) (*Client, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := NewStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	debug, err := NewDebugLogger(cfg.Debug, cfg.DebugLogPath)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("client: %w", err)
	}

	return &Client{
		store:  store,
		config: cfg,
		debug:  debug,
	}, nil
}

// Config returns the effective configuration after defaults.
func (c *Client) Config() Config {
	return c.config
}

// Create validates and stores a new person.
func (c *Client) Create(ctx context.Context, params CreateParams) (*Person, error) {
	if err := validateCreate(params); err != nil {
		return nil, err
	}

	person, err := c.store.Create(ctx, params)
	if err != nil {
		c.debug.Log("create failed: %v", err)
		return nil, err
	}
	c.debug.Log("created person %s", person.ID)
	return person, nil
}

// Get retrieves a person by ID.
func (c *Client) Get(ctx context.Context, id string) (*Person, error) {
	return c.store.Get(ctx, id)
}

// List retrieves people, optionally filtered by a name query.
func (c *Client) List(ctx context.Context, params ListParams) ([]Person, error) {
	return c.store.List(ctx, params)
}

// Update validates and applies a sparse patch to a person.
func (c *Client) Update(ctx context.Context, id string, patch UpdateParams) (*Person, error) {
	if err := validateUpdate(patch); err != nil {
		return nil, err
	}

	person, err := c.store.Update(ctx, id, patch)
	if err != nil {
		c.debug.Log("update %s failed: %v", id, err)
		return nil, err
	}
	c.debug.Log("updated person %s", id)
	return person, nil
}

// Delete removes a person by ID. Returns ErrNotFound if absent.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		c.debug.Log("delete %s failed: %v", id, err)
		return err
	}
	c.debug.Log("deleted person %s", id)
	return nil
}

// Reset clears the store and inserts the given people.
// Used by the seed command.
func (c *Client) Reset(ctx context.Context, people []CreateParams) (int, error) {
	if err := c.store.DeleteAll(ctx); err != nil {
		return 0, err
	}

	created := 0
	for _, p := range people {
		if _, err := c.Create(ctx, p); err != nil {
			return created, fmt.Errorf("seed %q: %w", p.Name, err)
		}
		created++
	}
	return created, nil
}

// Stats returns store statistics.
func (c *Client) Stats() (*StoreStats, error) {
	return c.store.Stats()
}

// Close closes the client and releases the store connection.
func (c *Client) Close() error {
	if err := c.debug.Close(); err != nil {
		c.store.Close()
		return err
	}
	return c.store.Close()
}
