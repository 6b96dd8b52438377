package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot(t *testing.T) {
	assert.Equal(t, 23*60+45, Slot{Hour: 23, Minute: 45}.MinuteOfDay())
	assert.True(t, Slot{Hour: 0, Minute: 0}.IsValid())
	assert.False(t, Slot{Hour: 24, Minute: 0}.IsValid())
	assert.False(t, Slot{Hour: 10, Minute: 10}.IsValid())
}
