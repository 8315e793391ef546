package quotation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cotiza-jara/go_backend/internal/domain/quotation"
)

func TestNewReference(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		ref := quotation.NewReference(now)
		assert.True(t, quotation.ValidReference(ref), "unexpected shape: %s", ref)
		assert.Contains(t, ref, fmt.Sprintf("COT-%d-", now.Year()))
	}
}

func TestValidReference(t *testing.T) {
	assert.True(t, quotation.ValidReference("COT-2026-0042"))
	assert.False(t, quotation.ValidReference("COT-2026-42"))
	assert.False(t, quotation.ValidReference("QT-2026-0042"))
	assert.False(t, quotation.ValidReference(""))
}
