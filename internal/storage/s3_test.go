package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicBaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://siproa-evidencias.s3.us-east-1.amazonaws.com",
		publicBaseURL("", "siproa-evidencias", "us-east-1"))

	assert.Equal(t,
		"http://localhost:9000/siproa-evidencias",
		publicBaseURL("http://localhost:9000", "siproa-evidencias", "us-east-1"))

	assert.Equal(t,
		"http://localhost:9000/siproa-evidencias",
		publicBaseURL("http://localhost:9000/", "siproa-evidencias", "us-east-1"))
}
