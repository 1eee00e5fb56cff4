package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8000.
	Port uint16 `env:"PORT" envDefault:"8000"`
}
