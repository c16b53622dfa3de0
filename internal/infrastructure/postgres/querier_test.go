package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuerier struct{}

func (stubQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (stubQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (stubQuerier) QueryRow(context.Context, string, ...any) pgx.Row      { return nil }

type stubBeginner struct {
	stubQuerier
	opts  *pgx.TxOptions
	begin error
}

func (b *stubBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.opts = &opts
	return nil, b.begin
}

func TestReadSnapshot_SinBeginTxUsaElMismoQuerier(t *testing.T) {
	q := stubQuerier{}
	var got Querier

	err := readSnapshot(context.Background(), q, func(inner Querier) error {
		got = inner
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestReadSnapshot_AbreTxRepeatableReadSoloLectura(t *testing.T) {
	b := &stubBeginner{begin: errors.New("sin conexión")}
	called := false

	err := readSnapshot(context.Background(), b, func(Querier) error {
		called = true
		return nil
	})

	assert.ErrorContains(t, err, "sin conexión")
	assert.False(t, called)
	require.NotNil(t, b.opts)
	assert.Equal(t, pgx.RepeatableRead, b.opts.IsoLevel)
	assert.Equal(t, pgx.ReadOnly, b.opts.AccessMode)
}
