package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Session SessionConfig
	Auth    AuthConfig
	Billing BillingConfig
	Export  ExportConfig
	Deploy  DeployConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Version  string
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

// Backends de sesión soportados.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// SessionConfig configuración del almacén clave-valor de sesiones.
type SessionConfig struct {
	Backend       string // memory | redis
	Key           string // clave fija de sesión; se le agrega ":<session_id>" por cliente
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// AuthConfig configuración de la autenticación simulada.
type AuthConfig struct {
	DemoPassword string // contraseña común de los usuarios sembrados
}

// BillingConfig parámetros de facturación.
type BillingConfig struct {
	VATRate  int    // porcentaje, 18 = IVA de Tanzania
	Currency string // prefijo mostrado en montos y mensajes
}

// ExportConfig parámetros del flujo de exportación simulado (PDF/Excel).
type ExportConfig struct {
	Delay     time.Duration
	Retention time.Duration // tiempo que un trabajo completado sigue consultable
}

// DeployConfig datos públicos del despliegue para los endpoints de estado.
type DeployConfig struct {
	Context string
	URL     string
	Netlify bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, SESSION_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "Zakayo Holdings Management System"),
			Version:  getString(v, "APP_VERSION", "1.0.0"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "zakayo-dev-secret"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "zakayo-holdings"),
		},
		Session: SessionConfig{
			Backend:       strings.ToLower(getString(v, "SESSION_BACKEND", SessionBackendMemory)),
			Key:           getString(v, "SESSION_KEY", "zakayo-user"),
			TTL:           getDuration(v, "SESSION_TTL", 8*time.Hour),
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "REDIS_DB", 0),
		},
		Auth: AuthConfig{
			DemoPassword: getString(v, "AUTH_DEMO_PASSWORD", "password123"),
		},
		Billing: BillingConfig{
			VATRate:  getInt(v, "BILLING_VAT_RATE", 18),
			Currency: getString(v, "BILLING_CURRENCY", "TSh"),
		},
		Export: ExportConfig{
			Delay:     getDuration(v, "EXPORT_DELAY", 2*time.Second),
			Retention: getDuration(v, "EXPORT_RETENTION", 10*time.Minute),
		},
		Deploy: DeployConfig{
			Context: getString(v, "CONTEXT", "unknown"),
			URL:     getString(v, "DEPLOY_URL", "localhost"),
			Netlify: getString(v, "NETLIFY", "false") == "true",
		},
	}

	if cfg.Session.Backend != SessionBackendMemory && cfg.Session.Backend != SessionBackendRedis {
		return nil, fmt.Errorf("config: SESSION_BACKEND inválido %q (memory|redis)", cfg.Session.Backend)
	}
	if cfg.Billing.VATRate < 0 || cfg.Billing.VATRate > 100 {
		return nil, fmt.Errorf("config: BILLING_VAT_RATE fuera de rango: %d", cfg.Billing.VATRate)
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
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return def
	}
	return d
}
