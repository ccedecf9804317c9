package privacy_test

import (
	"testing"

	"kirana/internal/pkg/privacy"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "ten digit number", phone: "9876504321", want: "987***4321"},
		{name: "ten digits with separators", phone: "98765-04321", want: "987***4321"},
		{name: "international number", phone: "+919876504321", want: "***4321"},
		{name: "short number", phone: "1234", want: "***1234"},
		{name: "empty", phone: "", want: "Not provided"},
		{name: "no digits", phone: "n/a", want: "Not provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, privacy.MaskPhone(tt.phone))
		})
	}
}

func TestApproximateCoordinate(t *testing.T) {
	assert.InDelta(t, 17.55, privacy.ApproximateCoordinate(17.547264), 1e-9)
	assert.InDelta(t, 78.23, privacy.ApproximateCoordinate(78.2270464), 1e-9)
	assert.InDelta(t, -0.13, privacy.ApproximateCoordinate(-0.1251), 1e-9)
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Ravi", privacy.CleanName("  Ravi "))
	assert.Equal(t, "Anonymous", privacy.CleanName("   "))
}

func TestCleanAddress(t *testing.T) {
	assert.Equal(t, "12 Bazaar St", privacy.CleanAddress(" 12 Bazaar St "))
	assert.Equal(t, "Not provided", privacy.CleanAddress(""))
}
