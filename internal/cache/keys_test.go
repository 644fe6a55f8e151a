package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "stats profile",
			serviceName: "stats",
			objectType:  "profile",
			identifier:  "player-42",
			expectedKey: "rangeiq:stats:profile:player-42",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "stats",
			objectType:  "profile",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "rangeiq:stats:profile:123",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "daily",
			objectType:  "selection",
			identifier:  "2024-01-01",
			paramsKey:   []string{"utc", "v2"},
			expectedKey: "rangeiq:daily:selection:2024-01-01:utc_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}
