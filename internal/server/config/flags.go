package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// parseFlags overlays the most commonly overridden settings from the
// command line. Everything else is configured through the JSON file.
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-d string   PostgreSQL DSN
//	-s string   session signing secret
//	-t int      session TTL, minutes
//	-l string   log level
//	-f string   frontend URL used in reset links
//	-p string   payment provider ("mercadopago" or "sandbox")
//	-m string   MercadoPago access token
//	-b string   S3 bucket for reconciliation incidents
//	-e string   S3 base endpoint
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-l", "-f", "-p", "-m", "-b", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session signing secret")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session TTL (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.FrontendURL, "f", config.FrontendURL, "frontend URL")
	fs.StringVar(&config.PaymentProvider, "p", config.PaymentProvider, "payment provider")
	fs.StringVar(&config.MercadoPagoAccessToken, "m", config.MercadoPagoAccessToken, "MercadoPago access token")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for reconciliation incidents")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
