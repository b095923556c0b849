package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	PostgresDSN string // empty means in-memory repositories with seed data
	AdminToken  string

	FreeShippingThreshold int64
	FlatShippingFee       int64
	TaxRateBP             int64
	TaxInclusive          bool
	PageSize              int
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("[config] %s=%q is not a number, using %d", k, v, def)
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("[config] %s=%q is not a bool, using %v", k, v, def)
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:                  getenv("STOREFRONT_ADDR", ":8080"),
		PostgresDSN:           getenv("POSTGRES_DSN", ""),
		AdminToken:            getenv("ADMIN_TOKEN", "admin-demo-token"),
		FreeShippingThreshold: getenvInt64("FREE_SHIPPING_THRESHOLD", 1499),
		FlatShippingFee:       getenvInt64("FLAT_SHIPPING_FEE", 99),
		TaxRateBP:             getenvInt64("TAX_RATE_BP", 1800),
		TaxInclusive:          getenvBool("TAX_INCLUSIVE", true),
		PageSize:              int(getenvInt64("PAGE_SIZE", 8)),
	}
	log.Printf("[config] STOREFRONT_ADDR=%s", cfg.Addr)
	log.Printf("[config] POSTGRES_DSN set=%v", cfg.PostgresDSN != "")
	log.Printf("[config] FREE_SHIPPING_THRESHOLD=%d FLAT_SHIPPING_FEE=%d", cfg.FreeShippingThreshold, cfg.FlatShippingFee)
	log.Printf("[config] TAX_RATE_BP=%d TAX_INCLUSIVE=%v PAGE_SIZE=%d", cfg.TaxRateBP, cfg.TaxInclusive, cfg.PageSize)
	return cfg
}
