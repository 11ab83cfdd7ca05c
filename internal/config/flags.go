package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d server database DSN
//	-local local database file path
//	-diagnostics sync diagnostics log file path
//	-adapter-address sync server base URL used by the client
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval periodic full-sync interval (e.g., "30s")
//	-min-table-interval per-table sync throttle interval (e.g., "5s")
//	-push-limit maximum rows per push request
//	-pull-limit maximum rows per pull page
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var localDSN string
	var diagnosticsPath string
	var adapterAddress string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var minTableInterval time.Duration
	var pushLimit int
	var pullLimit int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&localDSN, "local", "", "Local database file path")
	flag.StringVar(&diagnosticsPath, "diagnostics", "", "Sync diagnostics log file path")
	flag.StringVar(&adapterAddress, "adapter-address", "", "Sync server base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic full-sync interval (e.g., 30s)")
	flag.DurationVar(&minTableInterval, "min-table-interval", 0, "Per-table sync throttle interval (e.g., 5s)")
	flag.IntVar(&pushLimit, "push-limit", 0, "Maximum rows per push request")
	flag.IntVar(&pullLimit, "pull-limit", 0, "Maximum rows per pull page")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Local: Local{
				DSN:             localDSN,
				DiagnosticsPath: diagnosticsPath,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:         syncInterval,
			MinTableInterval: minTableInterval,
			PushLimit:        pushLimit,
			PullLimit:        pullLimit,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
