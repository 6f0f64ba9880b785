package page

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/db"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const SLUG_CONSTRAINT_NAME = "page_slug_idx"

const pageColumns = `id, title, slug, content, meta, is_published, author_id, created_at, updated_at`

type dbPage struct {
	ID          int64
	Title       string
	Slug        string
	Content     string
	Meta        pgtype.JSONB
	IsPublished bool
	AuthorID    sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
}

type PgxPageRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxPageRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPageRepository{db: db}
}

func (r *PgxPageRepository) Create(ctx context.Context, input page.CreateInput) (p page.Page, err error) {
	meta, err := encodeMeta(input.Meta)
	if err != nil {
		return p, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO page (title, slug, content, meta, is_published, author_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+pageColumns,
		input.Title,
		input.Slug,
		input.Content,
		meta,
		input.IsPublished,
		encodeAuthorID(input.AuthorID),
		input.CreatedAt,
	)
	dbp, err := scanPage(row)
	if isSlugConstraintViolation(err) {
		return p, page.ErrSlugAlreadyExists
	}
	if err != nil {
		return p, err
	}
	return decodePage(dbp)
}

func (r *PgxPageRepository) GetByID(ctx context.Context, id page.ID) (p page.Page, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+pageColumns+` FROM page WHERE id = $1`, int64(id))
	dbp, err := scanPage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, page.ErrPageDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return decodePage(dbp)
}

func (r *PgxPageRepository) GetPublishedBySlug(ctx context.Context, slug string) (p page.Page, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+pageColumns+` FROM page WHERE slug = $1 AND is_published`,
		slug,
	)
	dbp, err := scanPage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, page.ErrPageDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return decodePage(dbp)
}

func (r *PgxPageRepository) List(ctx context.Context) ([]page.Page, error) {
	return r.list(ctx, `SELECT `+pageColumns+` FROM page ORDER BY id`)
}

func (r *PgxPageRepository) ListPublished(ctx context.Context) ([]page.Page, error) {
	return r.list(ctx, `SELECT `+pageColumns+` FROM page WHERE is_published ORDER BY id`)
}

func (r *PgxPageRepository) list(ctx context.Context, query string) ([]page.Page, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := make([]page.Page, 0)
	for rows.Next() {
		dbp, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		p, err := decodePage(dbp)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (r *PgxPageRepository) SlugExists(
	ctx context.Context,
	slug string,
	excludeID c.Optional[page.ID],
) (bool, error) {
	var exists bool
	var err error
	if excludeID.IsPresent {
		err = r.db.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM page WHERE slug = $1 AND id <> $2)`,
			slug,
			int64(excludeID.Value),
		).Scan(&exists)
	} else {
		err = r.db.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM page WHERE slug = $1)`,
			slug,
		).Scan(&exists)
	}
	return exists, err
}

func (r *PgxPageRepository) Update(ctx context.Context, input page.UpdateInput) (p page.Page, err error) {
	assignments := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)
	args = append(args, int64(input.ID))
	addAssignment := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.DoTitleUpdate {
		addAssignment("title", input.Title)
	}
	if input.DoSlugUpdate {
		addAssignment("slug", input.Slug)
	}
	if input.DoContentUpdate {
		addAssignment("content", input.Content)
	}
	if input.DoMetaUpdate {
		meta, err := encodeMeta(input.Meta)
		if err != nil {
			return p, err
		}
		addAssignment("meta", meta)
	}
	if input.DoIsPublishedUpdate {
		addAssignment("is_published", input.IsPublished)
	}
	addAssignment("updated_at", input.UpdatedAt)

	query := fmt.Sprintf(
		`UPDATE page SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(assignments, ", "),
		pageColumns,
	)
	row := r.db.QueryRow(ctx, query, args...)
	dbp, err := scanPage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, page.ErrPageDoesNotExist
	}
	if isSlugConstraintViolation(err) {
		return p, page.ErrSlugAlreadyExists
	}
	if err != nil {
		return p, err
	}
	return decodePage(dbp)
}

func (r *PgxPageRepository) Delete(ctx context.Context, id page.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM page WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return page.ErrPageDoesNotExist
	}
	return nil
}

func isSlugConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == db.PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == SLUG_CONSTRAINT_NAME
}

func encodeMeta(meta page.Meta) (pgtype.JSONB, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return pgtype.JSONB{Status: pgtype.Null}, err
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}, nil
}

func encodeAuthorID(id c.Optional[user.ID]) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id.Value), Valid: id.IsPresent}
}

func scanPage(row pgx.Row) (p dbPage, err error) {
	err = row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Meta,
		&p.IsPublished,
		&p.AuthorID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func decodePage(p dbPage) (page.Page, error) {
	var meta page.Meta
	if p.Meta.Status == pgtype.Present {
		if err := json.Unmarshal(p.Meta.Bytes, &meta); err != nil {
			return page.Page{}, err
		}
	}
	return page.Page{
		ID:          page.ID(p.ID),
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Meta:        meta,
		IsPublished: p.IsPublished,
		AuthorID:    c.NewOptional(user.ID(p.AuthorID.Int64), p.AuthorID.Valid),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   c.NewOptional(p.UpdatedAt.Time, p.UpdatedAt.Valid),
	}, nil
}
