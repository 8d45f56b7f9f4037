package identity

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/internal/logger"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"go.uber.org/zap"
)

// CountStore persists generator counters so a restarted process can resume
// issuance without colliding with identifiers held by outstanding orders.
type CountStore struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewCountStore opens (or creates) a duckdb database at path. Use ":memory:"
// for an ephemeral store.
func NewCountStore(path string, log *logger.Logger) (*CountStore, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCountStoreFailed, "failed to open count store database", err)
	}

	store := &CountStore{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}

	if err := store.initialize(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return store, nil
}

func (s *CountStore) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS identifier_counts (
			prefix TEXT NOT NULL,
			trader_tag TEXT NOT NULL,
			strategy_tag TEXT NOT NULL,
			count BIGINT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (prefix, trader_tag, strategy_tag)
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeCountStoreFailed, "failed to create identifier_counts table", err)
	}

	return nil
}

// Save upserts the counter for a tag pair.
func (s *CountStore) Save(prefix string, traderTag string, strategyTag string, count int64) error {
	query := s.sq.
		Insert("identifier_counts").
		Columns("prefix", "trader_tag", "strategy_tag", "count", "updated_at").
		Values(prefix, traderTag, strategyTag, count, time.Now().UTC()).
		Suffix(`ON CONFLICT (prefix, trader_tag, strategy_tag)
			DO UPDATE SET count = excluded.count, updated_at = excluded.updated_at`)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeCountStoreFailed, "failed to build save query", err)
	}

	if _, err := s.db.Exec(sqlStr, args...); err != nil {
		return errors.Wrap(errors.ErrCodeCountStoreFailed, "failed to save identifier count", err)
	}

	return nil
}

// Load returns the persisted counter for a tag pair, or None if the pair has
// never been saved.
func (s *CountStore) Load(prefix string, traderTag string, strategyTag string) (optional.Option[int64], error) {
	query := s.sq.
		Select("count").
		From("identifier_counts").
		Where(squirrel.Eq{
			"prefix":       prefix,
			"trader_tag":   traderTag,
			"strategy_tag": strategyTag,
		})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return optional.None[int64](), errors.Wrap(errors.ErrCodeCountStoreFailed, "failed to build load query", err)
	}

	var count int64
	if err := s.db.QueryRow(sqlStr, args...).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return optional.None[int64](), nil
		}

		return optional.None[int64](), errors.Wrap(errors.ErrCodeQueryFailed, "failed to load identifier count", err)
	}

	return optional.Some(count), nil
}

// Restore loads the persisted counter into the generator. Must run before the
// first Generate call after a restart. A tag pair with no persisted state is
// a no-op.
func (s *CountStore) Restore(g *Generator) error {
	count, err := s.Load(g.Prefix(), g.TraderTag(), g.StrategyTag())
	if err != nil {
		return err
	}

	if count.IsNone() {
		return nil
	}

	value, err := count.Take()
	if err != nil {
		return errors.Wrap(errors.ErrCodeCountStoreFailed, "failed to read persisted count", err)
	}

	if err := g.SetCount(value); err != nil {
		return err
	}

	s.logger.Info("restored identifier counter",
		zap.String("prefix", g.Prefix()),
		zap.String("trader_tag", g.TraderTag()),
		zap.String("strategy_tag", g.StrategyTag()),
		zap.Int64("count", value),
	)

	return nil
}

// Checkpoint persists the generator's current counter.
func (s *CountStore) Checkpoint(g *Generator) error {
	return s.Save(g.Prefix(), g.TraderTag(), g.StrategyTag(), g.Count())
}

// Close closes the underlying database.
func (s *CountStore) Close() error {
	return s.db.Close()
}
