package config

func developmentConfig() Config {
	return Config{
		Env:  EnvDevelopment,
		Port: 3000,
	}
}
