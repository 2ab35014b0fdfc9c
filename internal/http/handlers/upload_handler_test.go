package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "user_7/1700000000000_informe.pdf", objectKey(7, "informe.pdf", now))
	assert.Equal(t, "user_7/1700000000000_mi_evidencia_final.pdf", objectKey(7, "mi evidencia  final.pdf", now))
	assert.Equal(t, "user_7/1700000000000_a_b.txt", objectKey(7, "a \t\n b.txt", now))
	assert.NotContains(t, objectKey(7, "con espacios.png", now), " ")
}
