package common_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ami-promoter/promoter/common"
)

func TestTagsWithProvenance(t *testing.T) {
	tests := []struct {
		description string
		tags        common.Tags
		expect      common.Tags
	}{{
		description: "no tags",
		tags:        nil,
		expect:      common.Tags{"SourceAmi": "ami-0123"},
	}, {
		description: "source tags kept",
		tags:        common.Tags{"Role": "golden", "Team": "web"},
		expect:      common.Tags{"Role": "golden", "Team": "web", "SourceAmi": "ami-0123"},
	}, {
		description: "provenance collision",
		tags:        common.Tags{"Role": "golden", "SourceAmi": "ami-stale"},
		expect:      common.Tags{"Role": "golden", "SourceAmi": "ami-0123"},
	}}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			var before common.Tags
			if test.tags != nil {
				before = common.Tags{}
				for k, v := range test.tags {
					before[k] = v
				}
			}

			result := test.tags.WithProvenance("SourceAmi", "ami-0123")
			require.Equal(t, test.expect, result)
			require.Equal(t, before, test.tags, "input tags must not be mutated")
		})
	}
}

func TestTagsKeys(t *testing.T) {
	tags := common.Tags{"b": "2", "a": "1", "c": "3"}
	require.Equal(t, []string{"a", "b", "c"}, tags.Keys())
}

func TestCredentialValidation(t *testing.T) {
	require.EqualError(t, common.AWSCredentials{}.Validate(), "empty credentials")
	require.NoError(t, common.AWSCredentials{AccessKeyID: "id", SecretAccessKey: "secret"}.Validate())
}
