package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"ami-promoter/promoter/common"
)

// Option customizes how the client loads its AWS configuration.
type Option func(*options)

type options struct {
	profile     string
	credentials *common.AWSCredentials
}

// WithProfile selects a named profile from the shared configuration files.
func WithProfile(profile string) Option {
	return func(o *options) {
		o.profile = profile
	}
}

// WithCredentials uses static credentials instead of the default chain.
func WithCredentials(c common.AWSCredentials) Option {
	return func(o *options) {
		o.credentials = &c
	}
}

func New(ctx context.Context, region common.Region, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	loadOptions := []func(*config.LoadOptions) error{
		config.WithRegion(string(region)),
	}

	if o.profile != "" {
		loadOptions = append(loadOptions, config.WithSharedConfigProfile(o.profile))
	}

	if awsCredentials := o.credentials; awsCredentials != nil {
		if err := awsCredentials.Validate(); err != nil {
			return nil, err
		}
		loadOptions = append(loadOptions, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     awsCredentials.AccessKeyID,
				SecretAccessKey: awsCredentials.SecretAccessKey,
				SessionToken:    awsCredentials.SessionToken,
				Source:          "user-specified credentials",
			},
		}))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration for %s: %w", region, err)
	}

	c := &Client{
		Region: region,
		Config: cfg,
	}

	c.Services.EC2 = ec2.NewFromConfig(cfg)
	c.Services.STS = sts.NewFromConfig(cfg)
	return c, nil
}

// Client holds the service clients for a single region.
type Client struct {
	Region common.Region

	Config   aws.Config
	Services struct {
		EC2 *ec2.Client
		STS *sts.Client
	}
}

// Identity returns the account the client's credentials belong to.
func (c *Client) Identity(ctx context.Context) (string, error) {
	output, err := c.Services.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", err
	}
	return aws.ToString(output.Account), nil
}
