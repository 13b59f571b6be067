package resources

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ami-promoter/promoter/common"
)

// TagImage applies tags to the image with the given identifier.
func TagImage(ctx context.Context, client EC2Client, identifier string, tags common.Tags) error {
	input := ec2.CreateTagsInput{
		Resources: []string{identifier},
		Tags:      makeTagSlice(tags),
	}

	_, err := client.CreateTags(ctx, &input)
	return err
}

// makeTagSlice creates an `[]ec2/types.Tag` slice sorted by key.
// See also https://docs.aws.amazon.com/AWSEC2/latest/UserGuide/Using_Tags.html
func makeTagSlice(tags common.Tags) []types.Tag {
	result := make([]types.Tag, 0, len(tags))
	for _, key := range tags.Keys() {
		result = append(result, types.Tag{
			Key:   aws.String(key),
			Value: aws.String(tags[key]),
		})
	}
	return result
}
