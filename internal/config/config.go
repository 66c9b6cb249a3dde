package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type Config struct {
	R2               R2Config
	Razorpay         RazorpayConfig
	CloudflareImages struct {
		AccountID string
		Token     string
		Hash      string
	}
	CheckinBaseURL string
	PlatformName   string
}

func LoadConfig() *Config {
	cfg := &Config{}

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	// Razorpay config
	cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
	cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")

	// Cloudflare Images config
	cfg.CloudflareImages.AccountID = os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	cfg.CloudflareImages.Token = os.Getenv("CLOUDFLARE_IMAGES_TOKEN")
	cfg.CloudflareImages.Hash = os.Getenv("CLOUDFLARE_IMAGES_HASH")

	cfg.CheckinBaseURL = os.Getenv("CHECKIN_BASE_URL")
	if cfg.CheckinBaseURL == "" {
		cfg.CheckinBaseURL = "https://unbound.events/checkin/"
	}

	cfg.PlatformName = os.Getenv("PLATFORM_NAME")
	if cfg.PlatformName == "" {
		cfg.PlatformName = "Unbound Platform"
	}

	return cfg
}
