package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository implements output.CatalogRepository on PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Save replaces the stored catalog called name with c in one transaction.
func (r *CatalogRepository) Save(ctx context.Context, name string, c *entities.Catalog) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save catalog: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	meta := c.Meta()
	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO catalogs (name, version, language, source_language, context_comments)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE
		SET version = EXCLUDED.version,
		    language = EXCLUDED.language,
		    source_language = EXCLUDED.source_language,
		    context_comments = EXCLUDED.context_comments,
		    updated_at = NOW()
		RETURNING id`,
		name, meta.Version, meta.Language, meta.SourceLanguage, meta.ContextComments,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("save catalog: upsert: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_entries WHERE catalog_id = $1`, id); err != nil {
		return fmt.Errorf("save catalog: clear entries: %w", err)
	}

	entries := c.Entries()
	rows := make([][]any, len(entries))
	for i, e := range entries {
		rows[i] = entryToRow(e).values(id, i)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"catalog_entries"}, entryColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("save catalog: copy entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("save catalog: commit: %w", err)
	}
	return nil
}

func (r *CatalogRepository) Load(ctx context.Context, name string, opts ...entities.CatalogOption) (*entities.Catalog, error) {
	var (
		id   int64
		meta entities.Meta
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, version, language, source_language, context_comments FROM catalogs WHERE name = $1`, name,
	).Scan(&id, &meta.Version, &meta.Language, &meta.SourceLanguage, &meta.ContextComments)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("load catalog %q: %w", name, domain.ErrCatalogNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", name, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT context, source, disambiguator, translation, status, message_id,
		       location_files, location_lines, extra_comment, translator_comment,
		       numerus, numerus_forms, variants, length_variants, extras
		FROM catalog_entries
		WHERE catalog_id = $1
		ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q entries: %w", name, err)
	}
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q entries: %w", name, err)
	}
	return entities.NewCatalog(meta, entries, opts...)
}

func scanEntry(row pgx.CollectableRow) (entities.Entry, error) {
	var r entryRow
	if err := row.Scan(
		&r.Context, &r.Source, &r.Disambiguator, &r.Translation, &r.Status, &r.MessageID,
		&r.LocationFiles, &r.LocationLines, &r.ExtraComment, &r.TranslatorComment,
		&r.Numerus, &r.NumerusForms, &r.Variants, &r.LengthVariants, &r.Extras,
	); err != nil {
		return entities.Entry{}, err
	}
	return r.toDomain()
}

func (r *CatalogRepository) List(ctx context.Context) ([]output.CatalogSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.name, c.version, c.language, c.source_language, c.updated_at, COUNT(e.position)
		FROM catalogs c
		LEFT JOIN catalog_entries e ON e.catalog_id = c.id
		GROUP BY c.id
		ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (output.CatalogSummary, error) {
		var s output.CatalogSummary
		err := row.Scan(&s.Name, &s.Meta.Version, &s.Meta.Language, &s.Meta.SourceLanguage, &s.UpdatedAt, &s.Entries)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return out, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM catalogs WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete catalog %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete catalog %q: %w", name, domain.ErrCatalogNotFound)
	}
	return nil
}
