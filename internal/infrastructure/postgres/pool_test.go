package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstIPv4_Literales(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "10.0.0.7", firstIPv4(ctx, "10.0.0.7"))
	assert.Equal(t, "", firstIPv4(ctx, "::1"))
	assert.Equal(t, "", firstIPv4(ctx, "2001:db8::5"))
}
