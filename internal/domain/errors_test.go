package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
)

func TestIsRetryable(t *testing.T) {
	assert.True(t, domain.IsRetryable(domain.ErrStorageUnavailable))
	assert.True(t, domain.IsRetryable(fmt.Errorf("commit: %w", domain.ErrTransactionAborted)))
	assert.False(t, domain.IsRetryable(domain.ErrInsufficientStock))
	assert.False(t, domain.IsRetryable(nil))
}
