package marketdata

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

// DuckDBSource reads historical bars out of a duckdb table with the columns
// (id, symbol, time, open, high, low, close, volume).
type DuckDBSource struct {
	db    *sql.DB
	sq    squirrel.StatementBuilderType
	table string
}

// NewDuckDBSource opens the database at path. Use ":memory:" for an
// ephemeral database (useful with InsertBars to seed test data).
func NewDuckDBSource(path string, table string) (*DuckDBSource, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb database", err)
	}

	source := &DuckDBSource{
		db:    db,
		sq:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		table: table,
	}

	if err := source.initialize(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return source, nil
}

func (d *DuckDBSource) initialize() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS ` + d.table + ` (
			id TEXT,
			symbol TEXT NOT NULL,
			time TIMESTAMP NOT NULL,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to create bars table", err)
	}

	return nil
}

// InsertBars writes bars for a symbol. Mainly used to seed paper sessions
// and tests.
func (d *DuckDBSource) InsertBars(symbol string, bars []types.MarketData) error {
	for _, bar := range bars {
		query := d.sq.
			Insert(d.table).
			Columns("id", "symbol", "time", "open", "high", "low", "close", "volume").
			Values(bar.Id, symbol, bar.Time, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build insert query", err)
		}

		if _, err := d.db.Exec(sqlStr, args...); err != nil {
			return errors.Wrap(errors.ErrCodeQueryFailed, "failed to insert bar", err)
		}
	}

	return nil
}

// Bars returns the bars for a symbol in time order, optionally bounded by
// start and end (inclusive).
func (d *DuckDBSource) Bars(symbol string, start optional.Option[string], end optional.Option[string]) ([]types.MarketData, error) {
	query := d.sq.
		Select("id", "symbol", "time", "open", "high", "low", "close", "volume").
		From(d.table).
		Where(squirrel.Eq{"symbol": symbol}).
		OrderBy("time ASC")

	if start.IsSome() {
		query = query.Where(squirrel.GtOrEq{"time": start.Unwrap()})
	}

	if end.IsSome() {
		query = query.Where(squirrel.LtOrEq{"time": end.Unwrap()})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build bars query", err)
	}

	rows, err := d.db.Query(sqlStr, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query bars", err)
	}
	defer rows.Close()

	var bars []types.MarketData

	for rows.Next() {
		var bar types.MarketData

		var id sql.NullString

		if err := rows.Scan(&id, &bar.Symbol, &bar.Time, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan bar row", err)
		}

		bar.Id = id.String
		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "bar row iteration failed", err)
	}

	return bars, nil
}

// Close closes the underlying database.
func (d *DuckDBSource) Close() error {
	return d.db.Close()
}
