package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvTokenProvider(t *testing.T) {
	p := NewEnvTokenProvider("TEST_COURTSERVICE_TOKEN")

	token, ok := p.Token()
	assert.False(t, ok)
	assert.Empty(t, token)

	t.Setenv("TEST_COURTSERVICE_TOKEN", "secret")

	// Токен читается при каждом обращении: смена без пересоздания провайдера
	token, ok = p.Token()
	assert.True(t, ok)
	assert.Equal(t, "secret", token)
}

func TestStaticTokenProvider(t *testing.T) {
	token, ok := NewStaticTokenProvider("fixed").Token()
	assert.True(t, ok)
	assert.Equal(t, "fixed", token)

	// Пустое значение означает гостевой режим без credential
	_, ok = NewStaticTokenProvider("").Token()
	assert.False(t, ok)
}
