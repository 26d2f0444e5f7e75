package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
)

const clientColumns = `id, name, cpf, income, birth_date, children`

type clientsRepo struct {
	db dbtx
}

func (r *clientsRepo) FindByID(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM `+store.TableName+` WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) GetReference(ctx context.Context, id int64) store.Reference {
	return &clientRef{repo: r, id: id}
}

func (r *clientsRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+store.TableName+` WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *clientsRepo) Save(ctx context.Context, c domain.Client) (domain.Client, error) {
	if c.ID == 0 {
		return r.insert(ctx, c)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE `+store.TableName+`
		    SET name = ?, cpf = ?, income = ?, birth_date = ?, children = ?
		  WHERE id = ?`,
		c.Name, c.Cpf, c.Income, store.FormatTimestamp(c.BirthDate), c.Children, c.ID,
	)
	if err != nil {
		return domain.Client{}, err
	}
	if err := requireAffected(res); err != nil {
		return domain.Client{}, err
	}
	return c, nil
}

func (r *clientsRepo) insert(ctx context.Context, c domain.Client) (domain.Client, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO `+store.TableName+` (name, cpf, income, birth_date, children)
		 VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.Cpf, c.Income, store.FormatTimestamp(c.BirthDate), c.Children,
	)
	if err != nil {
		return domain.Client{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Client{}, err
	}
	c.ID = id
	return c, nil
}

func (r *clientsRepo) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Client], error) {
	return r.page(ctx, "", nil, req)
}

func (r *clientsRepo) FindByIncomeGreaterThan(
	ctx context.Context,
	threshold float64,
	req domain.PageRequest,
) (domain.Page[domain.Client], error) {
	return r.page(ctx, "WHERE income > ?", []any{threshold}, req)
}

// page runs the count and the slice query for one page sharing the same
// where clause.
func (r *clientsRepo) page(
	ctx context.Context,
	where string,
	args []any,
	req domain.PageRequest,
) (domain.Page[domain.Client], error) {
	if err := store.CheckPageRequest(req); err != nil {
		return domain.Page[domain.Client]{}, err
	}
	orderBy, err := store.OrderBy(req.Sort)
	if err != nil {
		return domain.Page[domain.Client]{}, err
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, store.TableName, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return domain.Page[domain.Client]{}, err
	}
	if !store.OffsetInRange(req) {
		return domain.NewPage[domain.Client](nil, req, total), nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s LIMIT ? OFFSET ?`,
		clientColumns, store.TableName, where, orderBy)
	rows, err := r.db.QueryContext(ctx, query, append(args, req.Size, req.Offset())...)
	if err != nil {
		return domain.Page[domain.Client]{}, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return domain.Page[domain.Client]{}, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Client]{}, err
	}

	return domain.NewPage(clients, req, total), nil
}

func requireAffected(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// clientRef defers the lookup until Resolve is called.
type clientRef struct {
	repo *clientsRepo
	id   int64
}

func (r *clientRef) ID() int64 { return r.id }

func (r *clientRef) Resolve(ctx context.Context) (domain.Client, error) {
	return r.repo.FindByID(ctx, r.id)
}
