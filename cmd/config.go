package cmd

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string

	CarrierGatewayURL     string
	NotifyGatewayURL      string
	GatewayTimeoutSeconds string

	// StatsTimezone is the IANA zone reporting windows are computed in.
	// Empty means UTC.
	StatsTimezone string
}
