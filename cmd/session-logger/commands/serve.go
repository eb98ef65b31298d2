package commands

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/zeveck/claude-session-logger/internal/server"
)

// ServeCmd implements the serve command: browse rendered logs over
// HTTPS (self-signed by default) or plain HTTP.
type ServeCmd struct {
	Host     string
	Port     int
	Dir      string
	UseHTTP  bool
	CertFile string
	KeyFile  string
}

func (c *ServeCmd) Name() string {
	return "serve"
}

func (c *ServeCmd) Description() string {
	return "Serve rendered session logs over HTTPS"
}

func (c *ServeCmd) Setup(fs *flag.FlagSet) {
	fs.StringVar(&c.Host, "host", "", "Bind address (default: from config, 127.0.0.1)")
	fs.IntVar(&c.Port, "port", 0, "Port (default: from config, 9443)")
	fs.StringVar(&c.Dir, "dir", "", "Log directory (default: from config)")
	fs.BoolVar(&c.UseHTTP, "http", false, "Use plain HTTP instead of HTTPS")
	fs.StringVar(&c.CertFile, "cert", "", "Path to TLS certificate file")
	fs.StringVar(&c.KeyFile, "key", "", "Path to TLS private key file")
}

func (c *ServeCmd) Run(ctx *Context, args []string) error {
	host := c.Host
	if host == "" {
		host = ctx.Config.Serve.Host
	}
	port := c.Port
	if port == 0 {
		port = ctx.Config.Serve.Port
	}
	dir := c.Dir
	if dir == "" {
		dir = ctx.Config.LogDir
	}
	certFile := c.CertFile
	if certFile == "" {
		certFile = ctx.Config.Serve.CertFile
	}
	keyFile := c.KeyFile
	if keyFile == "" {
		keyFile = ctx.Config.Serve.KeyFile
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	srv := server.New(dir)
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	protocol := "https"
	if c.UseHTTP {
		protocol = "http"
	} else if certFile == "" || keyFile == "" {
		var err error
		certFile, keyFile, err = server.EnsureCert(server.DefaultCertDir)
		if err != nil {
			return fmt.Errorf("preparing TLS certificate: %w", err)
		}
	}

	hostDisplay := host
	if host == "127.0.0.1" {
		hostDisplay = "localhost"
	}
	out := NewOutputWriter(ctx.Output, false)
	out.PrintLine("")
	out.PrintLine("  Serving session logs at %s://%s:%d", protocol, hostDisplay, port)
	out.PrintLine("  Log directory: %s", dir)
	out.PrintLine("  Press Ctrl+C to stop.")
	out.PrintLine("")

	if c.UseHTTP {
		return srv.Run(addr)
	}
	return srv.RunTLS(addr, certFile, keyFile)
}
