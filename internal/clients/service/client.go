package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"github.com/aussiebroadwan/clientbook/pkg/slogx"
)

// ClientService reads and writes client records on top of a store.Store and
// hands out ClientDTO values. It keeps no state of its own.
type ClientService struct {
	Store store.Store
}

// FindByID returns the client with id, or a *NotFoundError.
func (s *ClientService) FindByID(ctx context.Context, id int64) (domain.ClientDTO, error) {
	l := slogx.FromContext(ctx)

	c, err := s.Store.Clients().FindByID(ctx, id)
	if err != nil {
		return domain.ClientDTO{}, s.fail(l, "failed to find client", err, id)
	}
	return c.ToDTO(), nil
}

// FindAllPaged returns one page of clients. A page past the end is empty, not
// an error.
func (s *ClientService) FindAllPaged(
	ctx context.Context,
	req domain.PageRequest,
) (domain.Page[domain.ClientDTO], error) {
	page, err := s.Store.Clients().FindAll(ctx, req)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "error", err)
		return domain.Page[domain.ClientDTO]{}, err
	}
	return domain.MapPage(page, domain.Client.ToDTO), nil
}

// FindByIncomeGreaterThan returns one page of the clients earning strictly
// more than threshold.
func (s *ClientService) FindByIncomeGreaterThan(
	ctx context.Context,
	req domain.PageRequest,
	threshold float64,
) (domain.Page[domain.ClientDTO], error) {
	page, err := s.Store.Clients().FindByIncomeGreaterThan(ctx, threshold, req)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients by income", "error", err, "income", threshold)
		return domain.Page[domain.ClientDTO]{}, err
	}
	return domain.MapPage(page, domain.Client.ToDTO), nil
}

// Insert stores dto as a new client. Any id on dto is ignored, the store
// assigns one.
func (s *ClientService) Insert(ctx context.Context, dto domain.ClientDTO) (domain.ClientDTO, error) {
	l := slogx.FromContext(ctx)

	c := dto.ToEntity()
	c.ID = 0

	saved, err := s.Store.Clients().Save(ctx, c)
	if err != nil {
		l.Error("failed to create client", "error", err)
		return domain.ClientDTO{}, err
	}

	l.Info("client created", "client_id", saved.ID)
	return saved.ToDTO(), nil
}

// Update overwrites the mutable fields of client id with those of dto inside
// a single transaction. dto.ID is ignored.
func (s *ClientService) Update(ctx context.Context, id int64, dto domain.ClientDTO) (domain.ClientDTO, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		ref := tx.Clients().GetReference(ctx, id)

		c, err := ref.Resolve(ctx)
		if err != nil {
			return err
		}

		c.ID = ref.ID()
		c.Name = dto.Name
		c.Cpf = dto.Cpf
		c.Income = dto.Income
		c.BirthDate = dto.BirthDate
		c.Children = dto.Children

		updated, err = tx.Clients().Save(ctx, c)
		return err
	})
	if err != nil {
		return domain.ClientDTO{}, s.fail(l, "failed to update client", err, id)
	}

	l.Info("client updated", "client_id", id)
	return updated.ToDTO(), nil
}

// Delete removes client id, or returns a *NotFoundError when there is none.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Clients().DeleteByID(ctx, id); err != nil {
		return s.fail(l, "failed to delete client", err, id)
	}

	l.Info("client deleted", "client_id", id)
	return nil
}

// fail translates err and logs it: absence at debug, anything else at error.
func (s *ClientService) fail(l *slog.Logger, msg string, err error, id int64) error {
	err = translate(err, id)
	if errors.Is(err, ErrNotFound) {
		l.Debug("client not found", "client_id", id)
		return err
	}
	l.Error(msg, "error", err, "client_id", id)
	return err
}
