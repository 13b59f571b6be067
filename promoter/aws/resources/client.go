package resources

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"
)

//go:generate mockgen -destination=mocks/ec2.go -package=mocks . EC2Client

// EC2Client defines the functions of the AWS EC2 API used.
type EC2Client interface {
	DescribeImages(context.Context, *ec2.DescribeImagesInput, ...func(*ec2.Options)) (*ec2.DescribeImagesOutput, error)
	CopyImage(context.Context, *ec2.CopyImageInput, ...func(*ec2.Options)) (*ec2.CopyImageOutput, error)
	CreateTags(context.Context, *ec2.CreateTagsInput, ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
}

// build-time check to ensure the SDK client satisfies EC2Client.
var _ EC2Client = (*ec2.Client)(nil)

// ErrorCode returns the API error code carried by err, if any.
func ErrorCode(err error) string {
	var e smithy.APIError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return ""
}
