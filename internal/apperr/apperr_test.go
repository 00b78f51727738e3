package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid parameter", InvalidParameter("page must be >= 1, got %d", 0), KindInvalidParameter},
		{"not found", NotFound("user %d not found", 999), KindNotFound},
		{"resource exhausted", ResourceExhausted("too many users"), KindResourceExhausted},
		{"wrapped keeps kind", fmt.Errorf("listing: %w", NotFound("user 7 not found")), KindNotFound},
		{"plain error", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageAndCode(t *testing.T) {
	err := NotFound("user %d not found", 42)
	assert.EqualError(t, err, "user 42 not found")
	assert.Equal(t, "not_found", KindOf(err).Code())
	assert.Equal(t, "invalid_parameter", KindInvalidParameter.Code())
	assert.Equal(t, "resource_exhausted", KindResourceExhausted.Code())
	assert.Equal(t, "internal", KindUnknown.Code())
}
