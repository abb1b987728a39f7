package config

import (
	"errors"
	"flag"
	"io"
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

// ParseFlags parses configuration flags from args. Parsing stops at the first
// positional argument; the rest is returned in [StructuredConfig.Args] so the
// client can read its command.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-hash-key request signing key
//	-version application version
//	-s storage server base URL (client)
//	-adapter-timeout outbound request timeout (client)
//	-session-db client session database file
//	-revalidation-interval session re-check period (client)
//	-refresh-interval metrics refresh period (client)
//	-fetch-timeout metrics fan-out timeout (client)
//	-v verbose logging (client)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var hashKey string
	var version string
	var adapterAddress string
	var adapterTimeout time.Duration
	var sessionDSN string
	var revalidationInterval, refreshInterval, fetchTimeout time.Duration
	var verbose bool

	fs := flag.NewFlagSet("guest-nama", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&adapterAddress, "s", "", "Storage server base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.StringVar(&sessionDSN, "session-db", "", "Session database file")
	fs.DurationVar(&revalidationInterval, "revalidation-interval", 0, "Session re-check period")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Metrics refresh period")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Metrics fetch timeout")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Client: Client{
			DB: ClientDB{DSN: sessionDSN},
		},
		Workers: Workers{
			RevalidationInterval: revalidationInterval,
			RefreshInterval:      refreshInterval,
			FetchTimeout:         fetchTimeout,
		},
		JSONFilePath: jsonConfigPath,
		Verbose:      verbose,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
