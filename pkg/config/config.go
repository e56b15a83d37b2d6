package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Business BusinessConfig
	Demo     DemoConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// BusinessConfig datos del emisor que aparecen en la representación gráfica (PDF).
type BusinessConfig struct {
	Name    string
	NIT     string
	NRC     string
	Address string
}

// DemoConfig credenciales del usuario demo sembrado al inicio.
// El login es una verificación demo, no un modelo de seguridad.
type DemoConfig struct {
	AdminEmail   string
	CashierEmail string
	Password     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "facturacion-sv"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "demo-secret-no-productivo"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "facturacion-sv"),
		},
		Business: BusinessConfig{
			Name:    getString(v, "BUSINESS_NAME", "Empresa Demo S.A. de C.V."),
			NIT:     getString(v, "BUSINESS_NIT", "0614-010190-101-0"),
			NRC:     getString(v, "BUSINESS_NRC", "123456-0"),
			Address: getString(v, "BUSINESS_ADDRESS", "San Salvador, El Salvador"),
		},
		Demo: DemoConfig{
			AdminEmail:   getString(v, "DEMO_ADMIN_EMAIL", "admin@empresa.com"),
			CashierEmail: getString(v, "DEMO_CASHIER_EMAIL", "cajero@empresa.com"),
			Password:     getString(v, "DEMO_PASSWORD", "123456"),
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

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
