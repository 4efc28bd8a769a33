package session

import "os"

// Credential сессии оператора — opaque bearer token внешней платформы.
// Провайдер инжектируется в клиента явно; логика ядра никогда не читает
// credential из глобального окружения напрямую.

// EnvTokenProvider читает credential из переменной окружения при каждом обращении
type EnvTokenProvider struct {
	envVar string
}

// NewEnvTokenProvider создает провайдер для указанной переменной окружения
func NewEnvTokenProvider(envVar string) *EnvTokenProvider {
	return &EnvTokenProvider{envVar: envVar}
}

// Token возвращает credential и признак его наличия
func (p *EnvTokenProvider) Token() (string, bool) {
	v := os.Getenv(p.envVar)
	return v, v != ""
}

// StaticTokenProvider фиксированный credential (гостевой режим — пустое значение)
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider создает провайдер с фиксированным значением
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// Token возвращает credential и признак его наличия
func (p *StaticTokenProvider) Token() (string, bool) {
	return p.token, p.token != ""
}
