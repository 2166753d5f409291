package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/models"
)

const announcementColumns = "id, announcement_text, admin_id, created_at, updated_at"

// announcementRepository is the PostgreSQL-backed implementation of
// [AnnouncementRepository].
type announcementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnnouncementRepository constructs an [AnnouncementRepository] backed by
// the provided database connection and logger.
func NewAnnouncementRepository(db *DB, logger *logger.Logger) AnnouncementRepository {
	logger.Debug().Msg("creating announcement repository")
	return &announcementRepository{
		db:     db,
		logger: logger,
	}
}

func scanAnnouncement(row rowScanner) (models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.AnnouncementText, &a.AdminID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *announcementRepository) Create(ctx context.Context, in models.AnnouncementIn) (models.Announcement, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("announcements").
		Columns("announcement_text", "admin_id").
		Values(in.AnnouncementText, in.AdminID).
		Suffix("RETURNING " + announcementColumns).
		ToSql()
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	announcement, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*announcementRepository.Create").Msg("announcement insert failed")
		return models.Announcement{}, classifyWriteError(err)
	}

	return announcement, nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id int64) (models.Announcement, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(announcementColumns).
		From("announcements").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	announcement, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*announcementRepository.GetByID").Int64("id", id).Msg("announcement lookup failed")
		return models.Announcement{}, notFoundOr(err, ErrRecordNotFound)
	}

	return announcement, nil
}

func (r *announcementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	log := logger.FromContext(ctx)

	query, _, err := psql.Select(announcementColumns).
		From("announcements").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*announcementRepository.GetAll").Msg("announcements query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	announcements := make([]models.Announcement, 0)
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		announcements = append(announcements, announcement)
	}

	return announcements, rows.Err()
}

func (r *announcementRepository) Update(ctx context.Context, id int64, in models.AnnouncementIn) (models.Announcement, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("announcements").
		Set("announcement_text", in.AnnouncementText).
		Set("admin_id", in.AdminID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + announcementColumns).
		ToSql()
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	announcement, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*announcementRepository.Update").Int64("id", id).Msg("announcement update failed")
		return models.Announcement{}, notFoundOr(err, ErrRecordNotFound)
	}

	return announcement, nil
}

func (r *announcementRepository) Delete(ctx context.Context, id int64) (models.Announcement, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("announcements").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + announcementColumns).
		ToSql()
	if err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	announcement, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*announcementRepository.Delete").Int64("id", id).Msg("announcement delete failed")
		return models.Announcement{}, notFoundOr(err, ErrRecordNotFound)
	}

	return announcement, nil
}
