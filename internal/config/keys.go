package config

const (
	KeyToken           = "token"
	KeyDefaultInstance = "default_instance"
	KeyBaseDomain      = "base_domain"
	KeyAPIURL          = "api_url"
	KeyLogLevel        = "log_level"
	KeyHTTPTimeout     = "http_timeout"
	KeyTransport       = "transport"
	KeyHost            = "host"
	KeyPort            = "port"
)
