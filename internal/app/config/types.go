package config

type (
	InternalConfig struct {
		App     App
		API     API
		Locker  Locker
		Session Session
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                       string `validate:"required"`
		Port                      string `validate:"required"`
		Version                   string
		CORSAllowedOrigins        []string `validate:"min=1"`
		MaxRequests               int      `validate:"gte=1"`
		ShutdownTimeout           int      `validate:"gte=0"`
		MaxTimeRequestsPerSeconds int      `validate:"gte=1"`
	}

	API struct {
		BaseUrl                 string  `validate:"required,url"`
		RequestTimeoutInSeconds int     `validate:"gte=1"`
		MaxRequestsPerSecond    float64 `validate:"gte=0"`
		RequestBurst            int     `validate:"gte=1"`
	}

	Locker struct {
		Driver       string `validate:"oneof=memory redis"`
		TTLInSeconds int    `validate:"gte=1"`
	}

	Session struct {
		TokenCookieName string `validate:"required"`
		StaticToken     string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
