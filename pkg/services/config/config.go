// Package config loads runtime settings for the web server.
package config

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/viper"
)

// Server holds web server settings, sourced from the environment. The
// entrypoint may load a .env file first; the risk rules themselves are fixed
// and take no configuration.
type Server struct {
	Host            string
	Port            string
	ShutdownTimeout time.Duration
}

func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// LoadServer reads SERVER_HOST, SERVER_PORT and SHUTDOWN_TIMEOUT from the
// environment, with defaults matching the original deployment.
func LoadServer() (Server, error) {
	v := viper.New()
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "5000")
	v.SetDefault("shutdown_timeout", "10s")
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return Server{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return Server{
		Host:            v.GetString("server_host"),
		Port:            v.GetString("server_port"),
		ShutdownTimeout: timeout,
	}, nil
}
