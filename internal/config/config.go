package config

import (
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"3000"`
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB        string        `env:"MONGO_DB" envDefault:"inventory"`
	UploadDir      string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadMB    int64         `env:"MAX_UPLOAD_MB" envDefault:"10"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	GinMode        string        `env:"GIN_MODE" envDefault:"release"`
	NodeID         int64         `env:"NODE_ID" envDefault:"1"`
	Store          string        `env:"STORE" envDefault:"mongo"` // mongo, memory

	// Si es true, Update vuelve a codificar retailPrice/wholesalePrice como Create
	EncodePricesOnUpdate bool `env:"ENCODE_PRICES_ON_UPDATE" envDefault:"false"`

	Log LogConfig
}

// LogConfig agrupa la configuración de logrus y la rotación de archivos
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"text"`   // text, json
	Output     string `env:"LOG_OUTPUT" envDefault:"stdout"` // stdout, file, both
	Path       string `env:"LOG_PATH" envDefault:"./logs/app.log"`
	MaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"` // MB
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"` // días
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

// LoadConfig carga .env si existe y luego lee las variables de entorno
func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return Parse()
}

// Parse lee la configuración solo desde el entorno del proceso
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	// PORT="" cuenta como no definido
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha para el servidor HTTP
func (c *Config) Addr() string {
	return ":" + c.Port
}

// MaxUploadBytes devuelve el límite de memoria para formularios multipart
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
