package filestorage

import (
	"testing"

	"github.com/SeakMengs/FontCatalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinioClient(t *testing.T) {
	_, err := NewMinioClient(&config.MinioConfig{ENDPOINT: "127.0.0.1:9000"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	// minio.New does not dial, so a client is returned without a running server
	client, err := NewMinioClient(&config.MinioConfig{
		ENDPOINT:   "127.0.0.1:9000",
		ACCESS_KEY: "minioadmin",
		SECRET_KEY: "minioadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", client.EndpointURL().Host)
}
