package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	Log  LogConfig
	HTTP HTTPConfig
	Base BaseConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log; vacío = valor por defecto de cada binario.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BaseConfig inventario histórico sobre el que se pondera la compra.
type BaseConfig struct {
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, HTTP_PORT, BASE_UNIT_PRICE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	basePrice, err := decimal.NewFromString(getString(v, "BASE_UNIT_PRICE", "28.3"))
	if err != nil {
		return nil, fmt.Errorf("BASE_UNIT_PRICE inválido: %w", err)
	}
	baseQty, err := getInt64(v, "BASE_QUANTITY", 23000)
	if err != nil {
		return nil, fmt.Errorf("BASE_QUANTITY inválido: %w", err)
	}
	port, err := getInt64(v, "HTTP_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("HTTP_PORT inválido: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "costo-promedio"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: int(port),
		},
		Base: BaseConfig{
			UnitPrice: basePrice,
			Quantity:  baseQty,
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getInt64 a diferencia de getString, un valor no numérico es error de arranque y no 0.
func getInt64(v *viper.Viper, key string, def int64) (int64, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	return strconv.ParseInt(strings.TrimSpace(v.GetString(key)), 10, 64)
}
