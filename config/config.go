package config

import "os"

type Config struct {
	Env  Env
	Port int
}

type Env int

const (
	EnvDevelopment Env = iota
	EnvTesting
	EnvProduction
)

func (e Env) IsDevOrTest() bool {
	return e == EnvDevelopment || e == EnvTesting
}

var Cfg Config

func init() {
	if isTesting {
		Cfg = testingConfig()
		return
	}

	if env, ok := os.LookupEnv("PARTIALDATE_ENV"); ok && env == "production" {
		Cfg = productionConfig()
		return
	}

	Cfg = developmentConfig()
}
