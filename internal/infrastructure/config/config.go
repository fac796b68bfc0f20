package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// LowStockThreshold is the quantity below which a stock line is flagged.
	LowStockThreshold int `env:"LOW_STOCK_THRESHOLD, default=5"`

	// DeliveryWorkers is the size of the invoice delivery worker pool.
	DeliveryWorkers int `env:"DELIVERY_WORKERS, default=4"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Shop     ShopConfig
	WhatsApp WhatsAppConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tireshop_pos"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// ShopConfig holds the shop identity printed on invoices.
type ShopConfig struct {
	Name    string `env:"SHOP_NAME,    default=Sri Balaji Tyres"`
	Address string `env:"SHOP_ADDRESS, default=Main Road, Hyderabad"`
	GSTIN   string `env:"SHOP_GSTIN"`
	Phone   string `env:"SHOP_PHONE"`
	Email   string `env:"SHOP_EMAIL"`
}

// WhatsAppConfig holds the messaging gateway credentials.
type WhatsAppConfig struct {
	AccountSID string `env:"WHATSAPP_ACCOUNT_SID"`
	AuthToken  string `env:"WHATSAPP_AUTH_TOKEN"`
	From       string `env:"WHATSAPP_FROM"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
