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
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json or yaml file path with configs
//	-manuf-field name of the field holding the manufacturing secret
//	-app-version application version reported by /api/version/
//	-storage storage backend: s3, http or file
//	-bucket bucket holding the key document
//	-key object key of the key document
//	-s3-region AWS region
//	-s3-endpoint custom S3 endpoint
//	-s3-path-style use path-style S3 addressing
//	-http-base-url base URL of the http backend
//	-http-timeout http backend download timeout
//	-f root directory of the file backend
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var configPath string
	var manufField string
	var appVersion string
	var backend, bucket, key string
	var s3Region, s3Endpoint string
	var s3PathStyle bool
	var httpBaseURL string
	var httpTimeout time.Duration
	var filesDir string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	flag.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	flag.StringVar(&manufField, "manuf-field", "", "Field holding the manufacturing secret")
	flag.StringVar(&appVersion, "app-version", "", "Application version")
	flag.StringVar(&backend, "storage", "", "Storage backend: s3, http or file")
	flag.StringVar(&bucket, "bucket", "", "Bucket holding the key document")
	flag.StringVar(&key, "key", "", "Object key of the key document")
	flag.StringVar(&s3Region, "s3-region", "", "AWS region")
	flag.StringVar(&s3Endpoint, "s3-endpoint", "", "Custom S3 endpoint")
	flag.BoolVar(&s3PathStyle, "s3-path-style", false, "Use path-style S3 addressing")
	flag.StringVar(&httpBaseURL, "http-base-url", "", "Base URL of the http backend")
	flag.DurationVar(&httpTimeout, "http-timeout", 0, "HTTP backend timeout (e.g., 10s)")
	flag.StringVar(&filesDir, "f", "", "Root directory of the file backend")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ManufField: manufField,
			Version:    appVersion,
		},
		Storage: Storage{
			Backend: backend,
			Bucket:  bucket,
			Key:     key,
			S3: S3{
				Region:       s3Region,
				Endpoint:     s3Endpoint,
				UsePathStyle: s3PathStyle,
			},
			HTTP: HTTP{
				BaseURL: httpBaseURL,
				Timeout: httpTimeout,
			},
			Files: Files{
				Dir: filesDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		FilePath: configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// configured default is used.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
