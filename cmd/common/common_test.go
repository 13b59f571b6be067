package common

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfigOptions(t *testing.T) {
	tests := []struct {
		description string
		environment map[string]string
		arguments   []string
		expectKey   string
		expectKMS   string
	}{{
		description: "defaults",
		expectKey:   "Role",
	}, {
		description: "environment",
		environment: map[string]string{"TAG_KEY": "Stage", "DST_KMS": "alias/env"},
		expectKey:   "Stage",
		expectKMS:   "alias/env",
	}, {
		description: "flags win over environment",
		environment: map[string]string{"TAG_KEY": "Stage"},
		arguments:   []string{"--tag-key=Tier", "--kms-key=alias/flag"},
		expectKey:   "Tier",
		expectKMS:   "alias/flag",
	}}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			for _, key := range []string{"TAG_KEY", "TAG_VAL", "NAME_PREFIX", "DST_KMS"} {
				t.Setenv(key, "")
			}
			for key, value := range test.environment {
				t.Setenv(key, value)
			}

			var o ConfigOptions
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			o.SetFlags(flags)
			require.NoError(t, flags.Parse(test.arguments))

			cfg := o.Config()
			require.Equal(t, test.expectKey, cfg.TagKey)
			require.Equal(t, "golden", cfg.TagValue)
			require.Equal(t, "wp-golden", cfg.NamePrefix)
			require.Equal(t, test.expectKMS, cfg.KMSKeyID)
		})
	}
}

func TestBaseOptionsClientOptions(t *testing.T) {
	require.Empty(t, (&BaseOptions{}).ClientOptions())
	require.Len(t, (&BaseOptions{Profile: "golden"}).ClientOptions(), 1)
}
