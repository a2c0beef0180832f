package initializers

import "os"

// Settings holds process-wide site configuration. LoadSettings populates it
// once during startup; nothing mutates it afterwards.
type Settings struct {
	SiteName      string
	SiteHeader    string
	StorefrontURL string

	// MailTransport selects how email leaves the process: "smtp" uses the
	// SMTP relay from the environment, "api" posts to an HTTP mail API.
	MailTransport string
	MailAPIURL    string
	MailAPIKey    string
	FromEmail     string

	S3Bucket string
}

var Config Settings

func LoadSettings() {
	Config = Settings{
		SiteName:      getEnv("SITE_NAME", "Tienda de Figuras"),
		SiteHeader:    getEnv("SITE_HEADER", "Tienda de Figuras — Administración"),
		StorefrontURL: getEnv("STOREFRONT_URL", "http://localhost:4200"),
		MailTransport: getEnv("MAIL_TRANSPORT", "smtp"),
		MailAPIURL:    os.Getenv("MAIL_API_URL"),
		MailAPIKey:    os.Getenv("MAIL_API_KEY"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
		S3Bucket:      getEnv("S3_BUCKET", "figuras-media"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
