package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Static service token guarding the admin API group. Real admin
	// login (OTP via the identity provider) happens upstream.
	AdminToken string `env:"ADMIN_API_TOKEN"`

	Telegram Telegram `envPrefix:"TELEGRAM_"`
	Email    Email    `envPrefix:"EMAIL_"`
}

type Telegram struct {
	BotToken string `env:"BOT_TOKEN"`
	ChatID   string `env:"CHAT_ID"`
}

type Email struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromAddress  string `env:"FROM_ADDRESS" envDefault:"orders@nilperfumes.com"`
	StoreName    string `env:"STORE_NAME" envDefault:"NIL Perfumes"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
