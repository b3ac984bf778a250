package middleware

import (
	"testing"
	"time"
)

func limiterConReloj(start time.Time) (*LoginLimiter, *time.Time) {
	now := start
	l := NewLoginLimiter()
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLoginLimiterBloqueaTrasCincoFallos(t *testing.T) {
	l, _ := limiterConReloj(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))

	for i := 0; i < MaxIntentosLogin; i++ {
		if ok, _ := l.Allow("w1"); !ok {
			t.Fatalf("intento %d no debería estar bloqueado", i)
		}
		l.Fail("w1")
	}

	ok, restante := l.Allow("w1")
	if ok {
		t.Fatal("debe bloquearse tras el quinto fallo")
	}
	if restante <= 0 || restante > int(TiempoBloqueo.Seconds())+1 {
		t.Errorf("segundos restantes fuera de rango: %d", restante)
	}
}

func TestLoginLimiterDesbloqueaAlVencer(t *testing.T) {
	l, now := limiterConReloj(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))

	for i := 0; i < MaxIntentosLogin; i++ {
		l.Fail("w1")
	}
	if ok, _ := l.Allow("w1"); ok {
		t.Fatal("debe estar bloqueado")
	}

	*now = now.Add(TiempoBloqueo + time.Second)
	if ok, _ := l.Allow("w1"); !ok {
		t.Error("pasado el bloqueo debe permitir de nuevo")
	}
}

func TestLoginLimiterSuccessLimpia(t *testing.T) {
	l, _ := limiterConReloj(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))

	l.Fail("w1")
	l.Fail("w1")
	l.Success("w1")

	for i := 0; i < MaxIntentosLogin-1; i++ {
		l.Fail("w1")
	}
	if ok, _ := l.Allow("w1"); !ok {
		t.Error("success debe reiniciar el contador")
	}
}

func TestLoginLimiterIdentificadoresIndependientes(t *testing.T) {
	l, _ := limiterConReloj(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))

	for i := 0; i < MaxIntentosLogin; i++ {
		l.Fail("w1")
	}
	if ok, _ := l.Allow("w2"); !ok {
		t.Error("el bloqueo de w1 no debe afectar a w2")
	}
}
