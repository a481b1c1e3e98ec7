package cache_test

import (
	"testing"
	"time"

	"github.com/wardenwallet/swapquote/domain/cache"
)

func TestCache_SetGet(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		value          interface{}
		expiration     time.Duration
		sleep          time.Duration
		expectedExists bool
		expectedValue  interface{}
	}{
		{
			name:           "No expiration - value survives",
			key:            "key1",
			value:          "value1",
			expiration:     0,
			expectedExists: true,
			expectedValue:  "value1",
		},
		{
			name:           "Expiration in the future - value survives",
			key:            "key2",
			value:          42,
			expiration:     time.Hour,
			expectedExists: true,
			expectedValue:  42,
		},
		{
			name:           "Already expired - value unreachable",
			key:            "key3",
			value:          "stale",
			expiration:     time.Nanosecond,
			sleep:          time.Millisecond,
			expectedExists: false,
			expectedValue:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.New()
			c.Set(tt.key, tt.value, tt.expiration)

			if tt.sleep > 0 {
				time.Sleep(tt.sleep)
			}

			value, exists := c.Get(tt.key)
			if exists != tt.expectedExists {
				t.Errorf("Expected key %s to exist: %v, got: %v", tt.key, tt.expectedExists, exists)
			}

			if value != tt.expectedValue {
				t.Errorf("Expected value for key %s: %v, got: %v", tt.key, tt.expectedValue, value)
			}
		})
	}
}

func TestCache_Delete(t *testing.T) {
	c := cache.New()
	c.Set("key", "value", 0)
	c.Delete("key")

	if _, exists := c.Get("key"); exists {
		t.Errorf("Expected key to be deleted")
	}
}
