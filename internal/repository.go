package internal

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/firodj/mipsdecode/models"
)

// SQLRepository stores the decode history.
type SQLRepository struct {
	db *bun.DB
}

func NewSQLRepository(dsn string, verbose bool) (*SQLRepository, error) {
	if dsn == "" {
		dsn = MemoryDatabase
	}
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	repo := &SQLRepository{
		db: bun.NewDB(sqldb, sqlitedialect.New()),
	}

	repo.db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(verbose),
		bundebug.WithEnabled(verbose),
	))

	return repo, nil
}

// Init creates the history table.
func (repo *SQLRepository) Init(ctx context.Context) error {
	_, err := repo.db.NewCreateTable().
		Model((*models.DecodedWord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Record stores a decoded instruction.
func (repo *SQLRepository) Record(ctx context.Context, instr *Instruction, source string) (*models.DecodedWord, error) {
	row := &models.DecodedWord{
		Word:      uint32(instr.Word),
		Format:    instr.Format.String(),
		Mnemonic:  instr.Mnemonic.String(),
		Known:     instr.Known(),
		Source:    source,
		CreatedAt: time.Now(),
	}
	_, err := repo.db.NewInsert().Model(row).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Recent lists up to limit entries, newest first.
func (repo *SQLRepository) Recent(ctx context.Context, limit int) ([]models.DecodedWord, error) {
	rows := make([]models.DecodedWord, 0)
	err := repo.db.NewSelect().
		Model(&rows).
		Order("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *SQLRepository) Close() error {
	return repo.db.Close()
}
