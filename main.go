package main

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	v1 "github.com/gl-recovery/backend/internal/controllers/v1"
	"github.com/gl-recovery/backend/internal/router"
	"github.com/gl-recovery/backend/internal/session"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Local development convenience, ignored when there is no .env file
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// All state lives in the session store, there is nothing to set up
	// beyond it
	co := v1.Controller{Store: session.NewStore()}
	router.AttachRoutes(co, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
