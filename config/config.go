package config

import (
	"os"
	"strconv"
)

// GetEnv devuelve la variable de entorno o el valor por defecto.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt devuelve la variable de entorno como entero o el valor por defecto.
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
