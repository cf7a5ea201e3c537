package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init wires environment variables and the root command's persistent flags
// into viper. Flags win over environment variables, which win over defaults.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()

	// The token historically travels under either of these names.
	_ = viper.BindEnv(KeyToken, "XANO_API_TOKEN", "xanoApiToken")

	if root != nil {
		flags := root.PersistentFlags()
		_ = viper.BindPFlag(KeyToken, flags.Lookup("token"))
		_ = viper.BindPFlag(KeyDefaultInstance, flags.Lookup("default-instance"))
		_ = viper.BindPFlag(KeyBaseDomain, flags.Lookup("base-domain"))
		_ = viper.BindPFlag(KeyAPIURL, flags.Lookup("api-url"))
		_ = viper.BindPFlag(KeyLogLevel, flags.Lookup("log-level"))
		_ = viper.BindPFlag(KeyHTTPTimeout, flags.Lookup("http-timeout"))
		_ = viper.BindPFlag(KeyTransport, flags.Lookup("transport"))
		_ = viper.BindPFlag(KeyHost, flags.Lookup("host"))
		_ = viper.BindPFlag(KeyPort, flags.Lookup("port"))
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseDomain, "n7c.xano.io")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHTTPTimeout, 30*time.Second)
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func Token() string              { return viper.GetString(KeyToken) }
func DefaultInstance() string    { return viper.GetString(KeyDefaultInstance) }
func BaseDomain() string         { return viper.GetString(KeyBaseDomain) }
func APIURL() string             { return viper.GetString(KeyAPIURL) }
func LogLevel() string           { return viper.GetString(KeyLogLevel) }
func HTTPTimeout() time.Duration { return viper.GetDuration(KeyHTTPTimeout) }
func Transport() string          { return viper.GetString(KeyTransport) }
func Host() string               { return viper.GetString(KeyHost) }
func Port() int                  { return viper.GetInt(KeyPort) }
