package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/dmitrijs2005/storefront/internal/timex"
)

// JsonConfig mirrors Config for JSON decoding. Pointer and zero-value fields
// absent from the file leave the current Config value untouched.
type JsonConfig struct {
	EndpointAddrGRPC string          `json:"endpoint_addr_grpc"`
	DatabaseDSN      string          `json:"database_dsn"`
	DatabaseTimeout  *timex.Duration `json:"database_timeout"`
	SecretKey        string          `json:"secret_key"`
	LogLevel         string          `json:"log_level"`

	SessionTTL    *timex.Duration `json:"session_ttl"`
	ResetTokenTTL *timex.Duration `json:"reset_token_ttl"`
	FrontendURL   string          `json:"frontend_url"`

	Currency               string          `json:"currency"`
	PaymentProvider        string          `json:"payment_provider"`
	PaymentTimeout         *timex.Duration `json:"payment_timeout"`
	MercadoPagoAccessToken string          `json:"mercadopago_access_token"`
	MercadoPagoMethodID    string          `json:"mercadopago_method_id"`

	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUser     string `json:"smtp_user"`
	SMTPPassword string `json:"smtp_password"`
	MailFrom     string `json:"mail_from"`

	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`

	StaleChargeAfter *timex.Duration `json:"stale_charge_after"`
	SweepInterval    *timex.Duration `json:"sweep_interval"`
}

// parseJson overlays values from the JSON file named by -c/-config in args.
// Missing file flag means nothing to do; an unreadable or invalid file panics,
// the same as a bad command-line flag.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setDuration(&config.DatabaseTimeout, c.DatabaseTimeout)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)

	setDuration(&config.SessionTTL, c.SessionTTL)
	setDuration(&config.ResetTokenTTL, c.ResetTokenTTL)
	setString(&config.FrontendURL, c.FrontendURL)

	setString(&config.Currency, c.Currency)
	setString(&config.PaymentProvider, c.PaymentProvider)
	setDuration(&config.PaymentTimeout, c.PaymentTimeout)
	setString(&config.MercadoPagoAccessToken, c.MercadoPagoAccessToken)
	setString(&config.MercadoPagoMethodID, c.MercadoPagoMethodID)

	setString(&config.SMTPHost, c.SMTPHost)
	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	setString(&config.SMTPUser, c.SMTPUser)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setString(&config.MailFrom, c.MailFrom)

	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	setDuration(&config.StaleChargeAfter, c.StaleChargeAfter)
	setDuration(&config.SweepInterval, c.SweepInterval)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
