package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyRedisAddr     string = "EMMA_REDIS_ADDR"
	EnvKeyRedisPassword string = "EMMA_REDIS_PASSWORD"
	EnvKeyRedisDB       string = "EMMA_REDIS_DB"

	EnvKeyMonitorHostPort string = "EMMA_MONITOR_HOST_PORT"
	EnvKeyMonitorConfig   string = "EMMA_MONITOR_CONFIG"
	EnvKeyLogDir          string = "EMMA_LOG_DIR"

	EnvKeyIngestRate  string = "EMMA_INGEST_RATE"
	EnvKeyIngestBurst string = "EMMA_INGEST_BURST"

	LoggerNameBrokerCore    string = "broker_core"
	LoggerNameMonitorServer string = "monitor_server"
	LoggerFieldCategory     string = "category"
	LoggerCategoryAlerts    string = "alerts"
	LoggerCategoryPresence  string = "presence"
	LoggerCategoryMetrics   string = "metrics"
	LoggerCategoryChannels  string = "channels"
	LoggerCategoryHealth    string = "health"
)
