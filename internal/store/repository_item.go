package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
)

const itemColumns = "id, name"

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func scanItem(row rowScanner) (models.Item, error) {
	var i models.Item
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

func (r *itemRepository) Create(ctx context.Context, in models.ItemIn) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("items").
		Columns("name").
		Values(in.Name).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.Create").Msg("item insert failed")
		return models.Item{}, classifyWriteError(err)
	}

	return item, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(itemColumns).
		From("items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetByID").Int64("id", id).Msg("item lookup failed")
		return models.Item{}, notFoundOr(err, ErrRecordNotFound)
	}

	return item, nil
}

func (r *itemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, _, err := psql.Select(itemColumns).
		From("items").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetAll").Msg("items query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *itemRepository) Update(ctx context.Context, id int64, in models.ItemIn) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("items").
		Set("name", in.Name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.Update").Int64("id", id).Msg("item update failed")
		return models.Item{}, notFoundOr(err, ErrRecordNotFound)
	}

	return item, nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("items").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.Delete").Int64("id", id).Msg("item delete failed")
		return models.Item{}, notFoundOr(err, ErrRecordNotFound)
	}

	return item, nil
}
