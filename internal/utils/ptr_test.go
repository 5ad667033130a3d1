package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrAndOrZero(t *testing.T) {
	assert.Equal(t, int64(7), OrZero(Ptr(int64(7))))
	assert.Equal(t, "name", OrZero(Ptr("name")))

	var missing *int64
	assert.Zero(t, OrZero(missing))
}
