package util

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"voyager.com/handparser/logging"
)

var environmentLogger = logging.GetZeroLogger("util::environment", nil)

type handParserEnvironment struct {
	Port     string
	LogLevel string
}

// Env is a helper object for accessing environment variables.
var Env = &handParserEnvironment{
	Port:     "HANDPARSER_PORT",
	LogLevel: "LOG_LEVEL",
}

func (e *handParserEnvironment) GetPort() uint {
	v := os.Getenv(e.Port)
	if v == "" {
		return 8080
	}
	port, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		environmentLogger.Warn().Msgf("Invalid %s value [%s]. Falling back to 8080", e.Port, v)
		return 8080
	}
	return uint(port)
}

func (e *handParserEnvironment) GetZeroLogLevel() zerolog.Level {
	v := os.Getenv(e.LogLevel)
	if v == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(v)
	if err != nil {
		environmentLogger.Warn().Msgf("Invalid %s value [%s]. Falling back to info", e.LogLevel, v)
		return zerolog.InfoLevel
	}
	return level
}
