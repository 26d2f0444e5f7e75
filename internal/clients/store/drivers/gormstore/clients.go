package gormstore

import (
	"context"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"gorm.io/gorm"
)

// clientRecord is the gorm model for tb_client. The birth date is kept as a
// fixed width UTC string so no dialect truncates its precision.
type clientRecord struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"size:255;not null;default:''"`
	Cpf       string  `gorm:"size:32;not null;default:''"`
	Income    float64 `gorm:"not null;default:0;index:idx_tb_client_income"`
	BirthDate string  `gorm:"column:birth_date;size:40;not null"`
	Children  int     `gorm:"not null;default:0"`
}

func (clientRecord) TableName() string { return store.TableName }

func toRecord(c domain.Client) clientRecord {
	return clientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Cpf:       c.Cpf,
		Income:    c.Income,
		BirthDate: store.FormatTimestamp(c.BirthDate),
		Children:  c.Children,
	}
}

func (r clientRecord) toDomain() (domain.Client, error) {
	born, err := store.ParseTimestamp(r.BirthDate)
	if err != nil {
		return domain.Client{}, err
	}
	return domain.Client{
		ID:        r.ID,
		Name:      r.Name,
		Cpf:       r.Cpf,
		Income:    r.Income,
		BirthDate: born,
		Children:  r.Children,
	}, nil
}

type clientsRepo struct {
	db *gorm.DB
}

func (r *clientsRepo) FindByID(ctx context.Context, id int64) (domain.Client, error) {
	var rec clientRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return rec.toDomain()
}

func (r *clientsRepo) GetReference(ctx context.Context, id int64) store.Reference {
	return &clientRef{repo: r, id: id}
}

func (r *clientsRepo) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&clientRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *clientsRepo) Save(ctx context.Context, c domain.Client) (domain.Client, error) {
	rec := toRecord(c)

	if rec.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return domain.Client{}, err
		}
		c.ID = rec.ID
		return c, nil
	}

	// A map so zero values (0 children, empty cpf) are written too.
	res := r.db.WithContext(ctx).
		Model(&clientRecord{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"name":       rec.Name,
			"cpf":        rec.Cpf,
			"income":     rec.Income,
			"birth_date": rec.BirthDate,
			"children":   rec.Children,
		})
	if res.Error != nil {
		return domain.Client{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Client{}, store.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Client], error) {
	return r.page(ctx, func(db *gorm.DB) *gorm.DB { return db }, req)
}

func (r *clientsRepo) FindByIncomeGreaterThan(
	ctx context.Context,
	threshold float64,
	req domain.PageRequest,
) (domain.Page[domain.Client], error) {
	return r.page(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("income > ?", threshold)
	}, req)
}

func (r *clientsRepo) page(
	ctx context.Context,
	filter func(*gorm.DB) *gorm.DB,
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
	if err := r.db.WithContext(ctx).Model(&clientRecord{}).Scopes(filter).Count(&total).Error; err != nil {
		return domain.Page[domain.Client]{}, err
	}
	if !store.OffsetInRange(req) {
		return domain.NewPage[domain.Client](nil, req, total), nil
	}

	var recs []clientRecord
	err = r.db.WithContext(ctx).
		Scopes(filter).
		Order(orderBy).
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&recs).Error
	if err != nil {
		return domain.Page[domain.Client]{}, err
	}

	clients := make([]domain.Client, len(recs))
	for i, rec := range recs {
		if clients[i], err = rec.toDomain(); err != nil {
			return domain.Page[domain.Client]{}, err
		}
	}
	return domain.NewPage(clients, req, total), nil
}

type clientRef struct {
	repo *clientsRepo
	id   int64
}

func (r *clientRef) ID() int64 { return r.id }

func (r *clientRef) Resolve(ctx context.Context) (domain.Client, error) {
	return r.repo.FindByID(ctx, r.id)
}
