package repository

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/db/models/postgres/public/table"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceSnapshotRepository interface {
	Add(snapshot model.PriceSnapshot) (*model.PriceSnapshot, error)
	LatestRanked() ([]model.PriceSnapshot, error)
	LatestBySymbol(symbol string) (*model.PriceSnapshot, error)
	SearchLatest(term string) ([]model.PriceSnapshot, error)
	History(symbol string) ([]model.PriceSnapshot, error)
	Count() (int64, error)
	TrimHistory(symbol string, keep int) (int64, error)
}

type priceSnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewPriceSnapshotRepository(db *sql.DB) PriceSnapshotRepository {
	return priceSnapshotRepositoryHandler{Db: db}
}

func (h priceSnapshotRepositoryHandler) Add(snapshot model.PriceSnapshot) (*model.PriceSnapshot, error) {
	query := table.PriceSnapshot.
		INSERT(table.PriceSnapshot.MutableColumns).
		MODEL(snapshot).
		RETURNING(table.PriceSnapshot.AllColumns)

	out := model.PriceSnapshot{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert price snapshot for %s: %w", snapshot.Symbol, err)
	}

	return &out, nil
}

// latestPerAssetIDs selects the max snapshot id per asset. Assets are
// grouped by coin_market_cap_id, falling back to the uppercased symbol
// for rows the external source never identified.
func latestPerAssetIDs() postgres.SelectStatement {
	return postgres.
		SELECT(postgres.MAXi(table.PriceSnapshot.ID)).
		FROM(table.PriceSnapshot).
		GROUP_BY(postgres.COALESCE(
			postgres.CAST(table.PriceSnapshot.CoinMarketCapID).AS_TEXT(),
			postgres.UPPER(table.PriceSnapshot.Symbol),
		))
}

func (h priceSnapshotRepositoryHandler) LatestRanked() ([]model.PriceSnapshot, error) {
	query := table.PriceSnapshot.
		SELECT(table.PriceSnapshot.AllColumns).
		WHERE(
			table.PriceSnapshot.ID.IN(latestPerAssetIDs()).
				AND(table.PriceSnapshot.CmcRank.IS_NOT_NULL()),
		).
		ORDER_BY(table.PriceSnapshot.CmcRank.ASC())

	out := []model.PriceSnapshot{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest ranked snapshots: %w", err)
	}

	return out, nil
}

func (h priceSnapshotRepositoryHandler) LatestBySymbol(symbol string) (*model.PriceSnapshot, error) {
	query := table.PriceSnapshot.
		SELECT(table.PriceSnapshot.AllColumns).
		WHERE(postgres.LOWER(table.PriceSnapshot.Symbol).
			EQ(postgres.String(strings.ToLower(symbol)))).
		ORDER_BY(table.PriceSnapshot.ID.DESC()).
		LIMIT(1)

	out := model.PriceSnapshot{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		// cache miss, not a store failure
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot for %s: %w", symbol, err)
	}

	return &out, nil
}

func (h priceSnapshotRepositoryHandler) SearchLatest(term string) ([]model.PriceSnapshot, error) {
	pattern := postgres.String("%" + strings.ToLower(term) + "%")

	query := table.PriceSnapshot.
		SELECT(table.PriceSnapshot.AllColumns).
		WHERE(
			table.PriceSnapshot.ID.IN(latestPerAssetIDs()).
				AND(
					postgres.LOWER(table.PriceSnapshot.Name).LIKE(pattern).
						OR(postgres.LOWER(table.PriceSnapshot.Symbol).LIKE(pattern)),
				),
		).
		ORDER_BY(table.PriceSnapshot.CmcRank.ASC())

	out := []model.PriceSnapshot{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to search snapshots for %q: %w", term, err)
	}

	return out, nil
}

func (h priceSnapshotRepositoryHandler) History(symbol string) ([]model.PriceSnapshot, error) {
	query := table.PriceSnapshot.
		SELECT(table.PriceSnapshot.AllColumns).
		WHERE(postgres.LOWER(table.PriceSnapshot.Symbol).
			EQ(postgres.String(strings.ToLower(symbol)))).
		ORDER_BY(table.PriceSnapshot.CreatedAt.DESC())

	out := []model.PriceSnapshot{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for %s: %w", symbol, err)
	}

	return out, nil
}

func (h priceSnapshotRepositoryHandler) Count() (int64, error) {
	query := postgres.
		SELECT(postgres.COUNT(table.PriceSnapshot.ID)).
		FROM(table.PriceSnapshot)

	q, args := query.Sql()

	var count int64
	err := h.Db.QueryRow(q, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}

	return count, nil
}

// TrimHistory deletes all but the newest keep rows for the symbol. It
// backs the retention cap - the read path never deletes anything.
func (h priceSnapshotRepositoryHandler) TrimHistory(symbol string, keep int) (int64, error) {
	lowered := postgres.String(strings.ToLower(symbol))

	keepQuery := postgres.
		SELECT(table.PriceSnapshot.ID).
		FROM(table.PriceSnapshot).
		WHERE(postgres.LOWER(table.PriceSnapshot.Symbol).EQ(lowered)).
		ORDER_BY(table.PriceSnapshot.ID.DESC()).
		LIMIT(int64(keep))

	query := table.PriceSnapshot.
		DELETE().
		WHERE(
			postgres.LOWER(table.PriceSnapshot.Symbol).EQ(lowered).
				AND(table.PriceSnapshot.ID.NOT_IN(keepQuery)),
		)

	res, err := query.Exec(h.Db)
	if err != nil {
		return 0, fmt.Errorf("failed to trim history for %s: %w", symbol, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
