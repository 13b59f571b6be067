package common

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Fixed deployment parameters; changing them requires a new build.
const (
	SourceRegion      Region = "ap-northeast-1"
	DestinationRegion Region = "ap-northeast-3"
	ProvenanceKey            = "SourceAmi"
)

// Environment keys, shared by the lambda and the command-line tool.
const (
	KeyTagKey     = "tag_key"
	KeyTagValue   = "tag_val"
	KeyNamePrefix = "name_prefix"
	KeyKMSKeyID   = "dst_kms"
)

const (
	DefaultTagKey     = "Role"
	DefaultTagValue   = "golden"
	DefaultNamePrefix = "wp-golden"
)

type Region string

// Config is the snapshot of settings a single promotion runs with.
type Config struct {
	TagKey     string
	TagValue   string
	NamePrefix string
	// KMSKeyID is optional; when empty the destination region default applies.
	KMSKeyID string

	SourceRegion      Region
	DestinationRegion Region
	ProvenanceKey     string
}

// Encrypted reports whether the copy must be re-encrypted with KMSKeyID.
func (c Config) Encrypted() bool {
	return c.KMSKeyID != ""
}

// NewViper returns a viper instance reading the promoter keys from the
// process environment, with defaults registered.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyTagKey, DefaultTagKey)
	v.SetDefault(KeyTagValue, DefaultTagValue)
	v.SetDefault(KeyNamePrefix, DefaultNamePrefix)
	v.SetDefault(KeyKMSKeyID, "")
	return v
}

// LoadConfig reads every setting once; the result is not refreshed afterwards.
func LoadConfig(v *viper.Viper) Config {
	return Config{
		TagKey:            valueOr(v.GetString(KeyTagKey), DefaultTagKey),
		TagValue:          valueOr(v.GetString(KeyTagValue), DefaultTagValue),
		NamePrefix:        valueOr(v.GetString(KeyNamePrefix), DefaultNamePrefix),
		KMSKeyID:          strings.TrimSpace(v.GetString(KeyKMSKeyID)),
		SourceRegion:      SourceRegion,
		DestinationRegion: DestinationRegion,
		ProvenanceKey:     ProvenanceKey,
	}
}

func valueOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// DestinationName returns the name of the copy: the prefix followed by the
// UTC time with minute precision, e.g. wp-golden-202403011234.
func DestinationName(prefix string, now time.Time) string {
	return prefix + "-" + now.UTC().Format("200601021504")
}
