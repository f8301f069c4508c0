package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginatorKey_Deterministic(t *testing.T) {
	a := OriginatorKey(1, 7, 127, 255)
	b := OriginatorKey(1, 7, 127, 255)
	assert.Equal(t, a, b)
}

func TestOriginatorKey_NamespacesByKind(t *testing.T) {
	entityState := OriginatorKey(1, 7, 127, 255)
	designator := OriginatorKey(24, 7, 127, 255)
	assert.NotEqual(t, entityState, designator)
}

func TestOriginatorKey_DistinguishesEntities(t *testing.T) {
	a := OriginatorKey(1, 7, 127, 255)
	b := OriginatorKey(1, 7, 127, 256)
	assert.NotEqual(t, a, b)
}
