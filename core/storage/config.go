package storage

import (
	"encoding/json"

	"go.uber.org/zap/zapcore"
)

// Redacted is rendered in place of any credential value.
const Redacted = "<redacted>"

const (
	DriverMinio = "minio"
	DriverS3    = "s3"
)

// Config holds the connection settings of the bucket holding the resource versions.
// It is serialized as the `bucket-info` block of the configuration file.
type Config struct {
	// Name is the bucket name.
	Name string `mapstructure:"name" toml:"name"`
	// Region describes the custom region the bucket lives in.
	Region Region `mapstructure:"region" toml:"region"`
	// Credentials are the static keys used to sign requests.
	Credentials Credentials `mapstructure:"credentials" toml:"credentials"`
	// Driver selects the client implementation (minio, s3). Empty means minio.
	Driver string `mapstructure:"driver" toml:"driver,omitempty"`
}

// Region is a custom, non built-in storage region.
type Region struct {
	// Region is the region identifier sent when signing (e.g. eu-central-1).
	Region string `mapstructure:"region" toml:"region"`
	// Endpoint is the base URL of the storage service.
	Endpoint string `mapstructure:"endpoint" toml:"endpoint"`
}

// Credentials holds the static access key pair.
//
// The values never leave the process through formatting: every textual
// representation (fmt verbs, JSON, zap) emits Redacted instead.
type Credentials struct {
	AccessKey string `mapstructure:"access-key" toml:"access-key"`
	SecretKey string `mapstructure:"secret-key" toml:"secret-key"`
}

func (c Credentials) String() string {
	return "Credentials{AccessKey: " + Redacted + ", SecretKey: " + Redacted + "}"
}

func (c Credentials) GoString() string {
	return c.String()
}

// MarshalJSON keeps reflection based encoders (zap.Any, encoding/json) from
// reading the fields.
func (c Credentials) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"access-key": Redacted,
		"secret-key": Redacted,
	})
}

func (c Credentials) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("access-key", Redacted)
	enc.AddString("secret-key", Redacted)
	return nil
}

// DriverName returns the effective driver.
func (c Config) DriverName() string {
	if c.Driver == "" {
		return DriverMinio
	}
	return c.Driver
}

// MissingFields lists the settings that are still empty, in prompt order.
func (c Config) MissingFields() []string {
	var missing []string
	if c.Region.Region == "" {
		missing = append(missing, "region")
	}
	if c.Region.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Credentials.AccessKey == "" {
		missing = append(missing, "access-key")
	}
	if c.Credentials.SecretKey == "" {
		missing = append(missing, "secret-key")
	}
	return missing
}

func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", c.Name)
	enc.AddString("region", c.Region.Region)
	enc.AddString("endpoint", c.Region.Endpoint)
	enc.AddString("driver", c.DriverName())
	return enc.AddObject("credentials", c.Credentials)
}
