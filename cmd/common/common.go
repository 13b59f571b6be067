package common

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ami-promoter/promoter/aws/client"
	"ami-promoter/promoter/common"
)

// BaseOptions specify base flags for commands that talk to the provider.
type BaseOptions struct {
	Log     string
	Profile string
	Timeout time.Duration
}

// SetFlags sets base option flags on the provided flagset.
func (o *BaseOptions) SetFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Log, "log", "info", "log level")
	f.StringVar(&o.Profile, "profile", "", "AWS shared configuration profile")
	f.DurationVar(&o.Timeout, "timeout", 15*time.Minute, "timeout for the whole command")
}

// ConfigureLogging configures logging and sets the log level.
func (o *BaseOptions) ConfigureLogging() {
	switch o.Log {
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: true,
	})
}

// ClientOptions returns the client options derived from the flags.
func (o *BaseOptions) ClientOptions() []client.Option {
	var options []client.Option
	if o.Profile != "" {
		options = append(options, client.WithProfile(o.Profile))
	}
	return options
}

// Context returns a context bounded by the timeout and carrying a logger
// tagged with a fresh run identifier.
func (o *BaseOptions) Context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(cmd.Context(), o.Timeout)
	logger := logrus.WithField("run", uuid.NewString())
	return common.WithLogger(ctx, logger), cancel
}

// ConfigOptions hold the promotion settings that flags may override.
type ConfigOptions struct {
	viper *viper.Viper
}

// SetFlags registers the override flags and binds them to the environment
// keys read by the lambda.
func (o *ConfigOptions) SetFlags(f *pflag.FlagSet) {
	o.viper = common.NewViper()

	f.String("tag-key", "", "tag key identifying golden images (env TAG_KEY)")
	f.String("tag-value", "", "tag value identifying golden images (env TAG_VAL)")
	f.String("name-prefix", "", "prefix of the destination image name (env NAME_PREFIX)")
	f.String("kms-key", "", "KMS key for the destination copy (env DST_KMS)")

	for key, flag := range map[string]string{
		common.KeyTagKey:     "tag-key",
		common.KeyTagValue:   "tag-value",
		common.KeyNamePrefix: "name-prefix",
		common.KeyKMSKeyID:   "kms-key",
	} {
		cobra.CheckErr(o.viper.BindPFlag(key, f.Lookup(flag)))
	}
}

// Config returns the configuration snapshot for this run.
func (o *ConfigOptions) Config() common.Config {
	return common.LoadConfig(o.viper)
}
