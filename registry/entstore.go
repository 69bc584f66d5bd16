package registry

import (
	"context"
	"fmt"

	"github.com/topoclimb/topoclimb-gateway/ent"
	entendpoint "github.com/topoclimb/topoclimb-gateway/ent/endpoint"
)

// EntStore persists the endpoint set in a relational table, one row per
// endpoint, ordered by position. Save rewrites the whole set inside a
// transaction so Load can never observe a partial write.
type EntStore struct {
	db *ent.Client
}

func NewEntStore(db *ent.Client) *EntStore {
	return &EntStore{db: db}
}

func (s *EntStore) Load(ctx context.Context) ([]Endpoint, error) {
	rows, err := s.db.Endpoint.Query().
		Order(entendpoint.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading endpoints: %w", err)
	}

	endpoints := make([]Endpoint, 0, len(rows))
	for _, row := range rows {
		endpoints = append(endpoints, fromRow(row))
	}
	return endpoints, nil
}

func (s *EntStore) Save(ctx context.Context, endpoints []Endpoint) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("opening transaction: %w", err)
	}

	if err := s.saveTx(ctx, tx, endpoints); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing endpoints: %w", err)
	}
	return nil
}

func (s *EntStore) saveTx(ctx context.Context, tx *ent.Tx, endpoints []Endpoint) error {
	if _, err := tx.Endpoint.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clearing endpoints: %w", err)
	}

	builders := make([]*ent.EndpointCreate, len(endpoints))
	for i, ep := range endpoints {
		b := tx.Endpoint.Create().
			SetID(ep.ID).
			SetName(ep.Name).
			SetBaseURL(ep.BaseURL).
			SetEnabled(ep.Enabled).
			SetIsDefault(ep.Default).
			SetPosition(i).
			SetCreatedAt(ep.CreatedAt).
			SetUpdatedAt(ep.UpdatedAt)
		if ep.AuthToken != "" {
			b.SetAuthToken(ep.AuthToken)
		}
		if ep.User != nil {
			b.SetUserID(ep.User.ID).
				SetUsername(ep.User.Username).
				SetUserEmail(ep.User.Email)
		}
		builders[i] = b
	}
	if _, err := tx.Endpoint.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("writing endpoints: %w", err)
	}
	return nil
}

func fromRow(row *ent.Endpoint) Endpoint {
	ep := Endpoint{
		ID:        row.ID,
		Name:      row.Name,
		BaseURL:   row.BaseURL,
		Enabled:   row.Enabled,
		Default:   row.IsDefault,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.AuthToken != nil {
		ep.AuthToken = *row.AuthToken
	}
	if row.UserID != nil {
		user := &UserSnapshot{ID: *row.UserID}
		if row.Username != nil {
			user.Username = *row.Username
		}
		if row.UserEmail != nil {
			user.Email = *row.UserEmail
		}
		ep.User = user
	}
	return ep
}
