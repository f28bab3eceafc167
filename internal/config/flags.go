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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-server remote server address used by the terminal client
//	-d database DSN
//	-db-driver database driver (sqlite3, pgx)
//	-f artifact directory
//	-c/-config json file path with configs
//	-policy cipher policy (aead, xor)
//	-kdf key derivation function (pbkdf2, argon2id)
//	-kdf-iterations PBKDF2 iteration count
//	-width/-height default carrier size
//	-seed default seed phrase
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload maximum uploaded image size in bytes
//	-retention-interval how often old artifacts are purged
//	-retention-max-age age after which artifacts are purged
//	-hash-key image integrity hash key
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var remoteAddress string
	var databaseDSN, databaseDriver string
	var artifactDir string
	var jsonConfigPath string
	var cipherPolicy, kdf string
	var kdfIterations int
	var width, height int
	var seedPhrase string
	var requestTimeout time.Duration
	var maxUploadBytes int64
	var retentionInterval, retentionMaxAge time.Duration
	var hashKey string

	fs := flag.NewFlagSet("fractal-cipher", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&remoteAddress, "server", "", "Remote server address for the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&artifactDir, "f", "", "Artifact directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cipherPolicy, "policy", "", "Cipher policy (aead, xor)")
	fs.StringVar(&kdf, "kdf", "", "Key derivation function (pbkdf2, argon2id)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.IntVar(&width, "width", 0, "Default carrier width")
	fs.IntVar(&height, "height", 0, "Default carrier height")
	fs.StringVar(&seedPhrase, "seed", "", "Default seed phrase")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadBytes, "max-upload", 0, "Maximum uploaded image size in bytes")
	fs.DurationVar(&retentionInterval, "retention-interval", 0, "Artifact purge interval")
	fs.DurationVar(&retentionMaxAge, "retention-max-age", 0, "Artifact maximum age")
	fs.StringVar(&hashKey, "hash-key", "", "Image integrity hash key")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			CipherPolicy:      cipherPolicy,
			KDF:               kdf,
			KDFIterations:     kdfIterations,
			DefaultWidth:      width,
			DefaultHeight:     height,
			DefaultSeedPhrase: seedPhrase,
			HashKey:           hashKey,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				ArtifactDir: artifactDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadBytes: maxUploadBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RetentionInterval: retentionInterval,
			RetentionMaxAge:   retentionMaxAge,
		},
		JSONFilePath: jsonConfigPath,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
