package middleware

import (
	"sync"
	"time"
)

// Política de bloqueo de logins: 5 intentos fallidos bloquean al
// identificador por 15 minutos.
const (
	MaxIntentosLogin = 5
	TiempoBloqueo    = 15 * time.Minute
)

type intentoLogin struct {
	count          int
	ultimoIntento  time.Time
	bloqueadoHasta time.Time
}

// LoginLimiter limita intentos de PIN por identificador. Es un store
// explícito que se construye en el wiring y se inyecta al handler de auth,
// no estado global de paquete.
type LoginLimiter struct {
	mu       sync.Mutex
	intentos map[string]*intentoLogin
	now      func() time.Time
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		intentos: make(map[string]*intentoLogin),
		now:      time.Now,
	}
}

// Allow reporta si el identificador puede intentar login; si está bloqueado
// devuelve además los segundos restantes.
func (l *LoginLimiter) Allow(identifier string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.intentos[identifier]
	if !ok {
		return true, 0
	}
	now := l.now()

	if !a.bloqueadoHasta.IsZero() {
		if now.Before(a.bloqueadoHasta) {
			return false, int(a.bloqueadoHasta.Sub(now).Seconds()) + 1
		}
		delete(l.intentos, identifier)
		return true, 0
	}

	if a.count >= MaxIntentosLogin && now.Sub(a.ultimoIntento) < TiempoBloqueo {
		a.bloqueadoHasta = a.ultimoIntento.Add(TiempoBloqueo)
		return false, int(a.bloqueadoHasta.Sub(now).Seconds()) + 1
	}
	return true, 0
}

// Fail registra un intento fallido. Si el anterior fue hace más del tiempo
// de bloqueo, el contador arranca de nuevo.
func (l *LoginLimiter) Fail(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	a, ok := l.intentos[identifier]
	if !ok || now.Sub(a.ultimoIntento) > TiempoBloqueo {
		l.intentos[identifier] = &intentoLogin{count: 1, ultimoIntento: now}
		return
	}
	a.count++
	a.ultimoIntento = now
}

// Success limpia el historial del identificador.
func (l *LoginLimiter) Success(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.intentos, identifier)
}
