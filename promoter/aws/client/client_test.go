package client_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ami-promoter/promoter/aws/client"
	"ami-promoter/promoter/common"
)

func isolateSharedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
}

func TestNewRejectsIncompleteCredentials(t *testing.T) {
	isolateSharedConfig(t)

	tests := []struct {
		description string
		credentials common.AWSCredentials
	}{{
		description: "empty",
		credentials: common.AWSCredentials{},
	}, {
		description: "missing secret",
		credentials: common.AWSCredentials{AccessKeyID: "access-key-id"},
	}, {
		description: "missing key id",
		credentials: common.AWSCredentials{SecretAccessKey: "secret-access-key"},
	}}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			c, err := client.New(context.Background(), common.SourceRegion, client.WithCredentials(test.credentials))
			require.Nil(t, c)
			require.EqualError(t, err, "empty credentials")
		})
	}
}

func TestNewStaticCredentials(t *testing.T) {
	isolateSharedConfig(t)
	ctx := context.Background()

	c, err := client.New(ctx, common.DestinationRegion, client.WithCredentials(common.AWSCredentials{
		AccessKeyID:     "access-key-id",
		SecretAccessKey: "secret-access-key",
		SessionToken:    "session-token",
	}))
	require.NoError(t, err)
	require.Equal(t, common.DestinationRegion, c.Region)
	require.Equal(t, "ap-northeast-3", c.Config.Region)
	require.NotNil(t, c.Services.EC2)
	require.NotNil(t, c.Services.STS)

	credentials, err := c.Config.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	require.Equal(t, "access-key-id", credentials.AccessKeyID)
	require.Equal(t, "secret-access-key", credentials.SecretAccessKey)
	require.Equal(t, "session-token", credentials.SessionToken)
}
