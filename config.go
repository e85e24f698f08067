package portal

var _ Config = StaticConfig{}

// StaticConfig is a literal Config, the usual way to configure the client
// from flags or environment values.
type StaticConfig struct {
	BaseURL        string
	RequestTimeout int
	LoginPath      string
	LandingPath    string
	OpsLandingPath string
}

// DefaultConfig returns the portal defaults: a local backend and the
// standard page layout.
func DefaultConfig() StaticConfig {
	return StaticConfig{
		BaseURL:        "http://localhost:8000/api",
		RequestTimeout: 30,
		LoginPath:      "/login",
		LandingPath:    "/",
		OpsLandingPath: "/admin/dashboard",
	}
}

func (c StaticConfig) GetBaseURL() string {
	if c.BaseURL == "" {
		return DefaultConfig().BaseURL
	}
	return c.BaseURL
}

func (c StaticConfig) GetRequestTimeout() int {
	if c.RequestTimeout <= 0 {
		return DefaultConfig().RequestTimeout
	}
	return c.RequestTimeout
}

func (c StaticConfig) GetLoginPath() string {
	if c.LoginPath == "" {
		return DefaultConfig().LoginPath
	}
	return c.LoginPath
}

func (c StaticConfig) GetLandingPath() string {
	if c.LandingPath == "" {
		return DefaultConfig().LandingPath
	}
	return c.LandingPath
}

func (c StaticConfig) GetOpsLandingPath() string {
	if c.OpsLandingPath == "" {
		return DefaultConfig().OpsLandingPath
	}
	return c.OpsLandingPath
}
