package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("list orders: %w", &Error{Kind: KindUnreachable, Op: "acquire connection", Err: base})

	assert.Equal(t, KindUnreachable, KindOf(err))
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "unreachable")
	assert.Equal(t, KindUnknown, KindOf(base))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "access_denied", KindAccessDenied.String())
	assert.Equal(t, "database_missing", KindDatabaseMissing.String())
	assert.Equal(t, "schema_mismatch", KindSchemaMismatch.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
