package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"generated to pending signature", StatusGenerated, StatusPendingSignature, true},
		{"generated straight to signed", StatusGenerated, StatusSigned, false},
		{"generated straight to completed", StatusGenerated, StatusCompleted, false},
		{"pending to signed", StatusPendingSignature, StatusSigned, true},
		{"pending to rejected", StatusPendingSignature, StatusRejected, true},
		{"pending to completed", StatusPendingSignature, StatusCompleted, false},
		{"signed to completed", StatusSigned, StatusCompleted, true},
		{"signed back to pending", StatusSigned, StatusPendingSignature, false},
		{"rejected is terminal", StatusRejected, StatusPendingSignature, false},
		{"completed is terminal", StatusCompleted, StatusGenerated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}
