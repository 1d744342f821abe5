package config

// FulfillmentConfig holds runtime configuration for the fulfillment service.
type FulfillmentConfig struct {
	Environment string
	Addr        string
}

// LoadFulfillmentConfig constructs a FulfillmentConfig from environment variables.
func LoadFulfillmentConfig() FulfillmentConfig {
	return FulfillmentConfig{
		Environment: GetString("APP_ENV", "development"),
		Addr:        GetString("FULFILLMENT_ADDR", ":5001"),
	}
}
