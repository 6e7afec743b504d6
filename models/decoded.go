package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DecodedWord is one entry of the decode history.
type DecodedWord struct {
	bun.BaseModel `bun:"table:decoded_words,alias:dw"`

	ID        int64     `bun:",pk,autoincrement" json:"id"`
	Word      uint32    `bun:",notnull" json:"word"`
	Format    string    `bun:",notnull" json:"format"`
	Mnemonic  string    `bun:",notnull" json:"mnemonic"`
	Known     bool      `bun:",notnull" json:"known"`
	Source    string    `json:"source"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}
