package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChair_Supports(t *testing.T) {
	chair := &Chair{
		ID:                  1,
		Name:                "Кресло у окна",
		Active:              true,
		SupportedServiceIDs: []int64{1, 2, 5},
	}

	tests := []struct {
		name       string
		serviceIDs []int64
		want       bool
	}{
		{name: "single supported service", serviceIDs: []int64{1}, want: true},
		{name: "all requested supported", serviceIDs: []int64{1, 5}, want: true},
		{name: "full capability set", serviceIDs: []int64{1, 2, 5}, want: true},
		{name: "one unsupported fails whole set", serviceIDs: []int64{1, 3}, want: false},
		{name: "single unsupported", serviceIDs: []int64{4}, want: false},
		{name: "empty request means no constraint", serviceIDs: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chair.Supports(tt.serviceIDs))
		})
	}
}

func TestChair_Supports_EmptyCapabilities(t *testing.T) {
	chair := &Chair{ID: 2, SupportedServiceIDs: nil}

	assert.False(t, chair.Supports([]int64{1}))
	assert.True(t, chair.Supports(nil))
}
