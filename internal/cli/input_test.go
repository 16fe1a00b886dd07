package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	got, err := ReadInput(context.Background(), strings.NewReader("48602\n01927\n"))
	require.NoError(t, err)
	assert.Equal(t, "48602\n01927\n", got)
}

func TestReadInput_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ReadInput(ctx, pr)
	assert.ErrorIs(t, err, ErrInputCancelled)
}
