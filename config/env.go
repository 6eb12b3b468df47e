package config

import "github.com/spf13/viper"

const (
	// EnvPrefix is the prefix of every environment variable read by rated-go
	EnvPrefix = "RATED"
	// EnvAPIKey is the environment variable holding the API key
	EnvAPIKey = EnvPrefix + "_API_KEY"
)

// APIKeyFromEnv returns the API key from RATED_API_KEY, or an empty string
func APIKeyFromEnv() string {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindEnv("api_key"); err != nil {
		return ""
	}
	return v.GetString("api_key")
}
