package csv

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/txengine/internal/domain"
)

func TestWriter_WriteAccounts(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.WriteAccounts(context.Background(), []domain.Account{
		{Client: 1, Available: domain.MustParseMoney("9.9101")},
		{Client: 4, Available: domain.MustParseMoney("-9"), Held: domain.MustParseMoney("13")},
		{Client: 3, Available: domain.MustParseMoney("4.0000"), Locked: true},
	})
	require.NoError(t, err)

	want := "client,available,held,total,locked\n" +
		"1,9.9101,0,9.9101,false\n" +
		"4,-9,13,4,false\n" +
		"3,4,0,4,true\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_NoAccounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteAccounts(context.Background(), nil))
	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}

func TestWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewWriter(&buf).WriteAccounts(ctx, []domain.Account{{Client: 1}})
	assert.ErrorIs(t, err, context.Canceled)
}
