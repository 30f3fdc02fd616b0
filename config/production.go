package config

import (
	"os"
	"strconv"
)

func productionConfig() Config {
	port := 3000
	if portStr, ok := os.LookupEnv("PORT"); ok {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			panic(err)
		}
	}

	return Config{
		Env:  EnvProduction,
		Port: port,
	}
}
