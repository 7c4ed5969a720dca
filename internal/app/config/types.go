package config

type (
	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	RabbitMQ struct {
		Enabled  bool
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App  App
		FHIR FHIR
	}

	App struct {
		Env                             string
		Port                            string
		Version                         string
		Timezone                        string
		EndpointPrefix                  string
		MaxRequests                     int
		ShutdownTimeout                 int
		RequestTimeoutInSeconds         int
		FormSessionExpiredTimeInMinutes int
		RabbitMQSubmissionQueue         string
		AllowedOrigins                  string
	}

	FHIR struct {
		BaseUrl         string
		QuestionnaireID string
		// PollCronSpec schedules the availability check that runs until patients are found.
		PollCronSpec    string
		// PollMaxAttempts bounds the availability check; zero means retry until shutdown.
		PollMaxAttempts int
	}
)
