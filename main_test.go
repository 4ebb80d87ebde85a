package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorsConfig(t *testing.T) {
	all := corsConfig("*")
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)
	assert.NoError(t, all.Validate())

	listed := corsConfig("http://localhost:5173, https://desk.example.com")
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:5173", "https://desk.example.com"}, listed.AllowOrigins)
	assert.True(t, listed.AllowCredentials)
	assert.NoError(t, listed.Validate())
}
