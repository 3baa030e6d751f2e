package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address  string `env:"RUN_ADDRESS"  envDefault:"localhost:8080"`
	Database string `env:"DATABASE_URI"`
	LogLvl   string `env:"LOG_LVL"      envDefault:"info"`

	BotToken       string `env:"BOT_TOKEN"`
	WebhookURL     string `env:"WEBHOOK_URL"`
	WebhookSecret  string `env:"WEBHOOK_SECRET"`
	AdminTokenHash string `env:"ADMIN_TOKEN_HASH"`
	PayloadSecret  string `env:"PAYLOAD_SECRET"`
	ProviderToken  string `env:"PROVIDER_TOKEN"`

	Currency         string  `env:"CURRENCY"           envDefault:"EUR"`
	MaxDamageAllowed int64   `env:"MAX_DAMAGE_ALLOWED" envDefault:"1499"`
	MaxUnitPrice     int64   `env:"MAX_UNIT_PRICE"     envDefault:"200"`
	DefaultUnitPrice int64   `env:"DEFAULT_UNIT_PRICE" envDefault:"150"`
	PriceChoices     []int64 `env:"PRICE_CHOICES"      envDefault:"50,100,150,200" envSeparator:","`
	FeeBasisPoints   int64   `env:"FEE_BASIS_POINTS"   envDefault:"140"`
	FeeFixed         int64   `env:"FEE_FIXED"          envDefault:"25"`
	Timezone         string  `env:"TIMEZONE"           envDefault:"Europe/Berlin"`
	InvoicePhotoURL  string  `env:"INVOICE_PHOTO_URL"  envDefault:"https://raw.githubusercontent.com/niilz/remoteDeckel/master/img/remoteDeckel-Logo.png"`

	StripeAddress       string        `env:"STRIPE_ADDRESS"        envDefault:"https://api.stripe.com"`
	StripeToken         string        `env:"STRIPE_TOKEN"`
	StripeDestination   string        `env:"STRIPE_DESTINATION"`
	StripePaymentMethod string        `env:"STRIPE_PAYMENT_METHOD" envDefault:"pm_card_visa"`
	ForwardWorkers      int           `env:"FORWARD_WORKERS"       envDefault:"4"`
	ForwardTimeout      time.Duration `env:"FORWARD_TIMEOUT"       envDefault:"1m"`
}

var (
	ErrInvalidPrice   = errors.New("invalid price configuration")
	ErrInvalidSetting = errors.New("invalid setting")
	ErrMissingSecret  = errors.New("missing secret")
)

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN, empty keeps everything in memory")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.WebhookURL, "w", cfg.WebhookURL, "public webhook URL to register with Telegram")
	flag.StringVar(&cfg.StripeAddress, "s", cfg.StripeAddress, "stripe API address")
	flag.Parse()

	if !strings.HasPrefix(cfg.StripeAddress, "http://") && !strings.HasPrefix(cfg.StripeAddress, "https://") {
		cfg.StripeAddress = "https://" + cfg.StripeAddress
	}

	return cfg
}

// Validate checks that the configured prices can never break the damage ceiling
// on their own and that the secrets the webhook depends on are present.
func (c *Config) Validate() error {
	if c.MaxDamageAllowed <= 0 {
		return fmt.Errorf("%w: MAX_DAMAGE_ALLOWED must be positive", ErrInvalidPrice)
	}
	if c.MaxUnitPrice <= 0 || c.MaxUnitPrice >= c.MaxDamageAllowed {
		return fmt.Errorf("%w: MAX_UNIT_PRICE must be in (0, %d)", ErrInvalidPrice, c.MaxDamageAllowed)
	}
	if c.DefaultUnitPrice <= 0 || c.DefaultUnitPrice > c.MaxUnitPrice {
		return fmt.Errorf("%w: DEFAULT_UNIT_PRICE must be in (0, %d]", ErrInvalidPrice, c.MaxUnitPrice)
	}
	if len(c.PriceChoices) == 0 {
		return fmt.Errorf("%w: PRICE_CHOICES is empty", ErrInvalidPrice)
	}
	for _, price := range c.PriceChoices {
		if price <= 0 || price > c.MaxUnitPrice {
			return fmt.Errorf("%w: price choice %d outside (0, %d]", ErrInvalidPrice, price, c.MaxUnitPrice)
		}
	}
	if c.ForwardTimeout <= 0 {
		return fmt.Errorf("%w: FORWARD_TIMEOUT must be positive", ErrInvalidSetting)
	}
	if c.BotToken == "" {
		return fmt.Errorf("%w: BOT_TOKEN", ErrMissingSecret)
	}
	if c.WebhookSecret == "" {
		return fmt.Errorf("%w: WEBHOOK_SECRET", ErrMissingSecret)
	}
	if c.PayloadSecret == "" {
		return fmt.Errorf("%w: PAYLOAD_SECRET", ErrMissingSecret)
	}
	return nil
}

// ForwardingEnabled reports whether settled funds should be moved on to the payee.
func (c *Config) ForwardingEnabled() bool {
	return c.StripeToken != "" && c.StripeDestination != ""
}
