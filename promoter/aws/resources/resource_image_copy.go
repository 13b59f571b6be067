package resources

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"ami-promoter/promoter/common"
)

// CopyRequest describes a cross-region image copy.
type CopyRequest struct {
	SourceImageID string
	SourceRegion  common.Region
	Name          string
	// KMSKeyID is optional; an empty value keeps the destination default.
	KMSKeyID string
}

// Encrypted reports whether the copy overrides encryption.
func (r CopyRequest) Encrypted() bool {
	return r.KMSKeyID != ""
}

// CopyImage requests the copy and returns the identifier assigned to the
// new image. The copy itself completes asynchronously.
func CopyImage(ctx context.Context, client EC2Client, request CopyRequest) (string, error) {
	input := ec2.CopyImageInput{
		SourceImageId: aws.String(request.SourceImageID),
		SourceRegion:  aws.String(string(request.SourceRegion)),
		Name:          aws.String(request.Name),
		Encrypted:     aws.Bool(request.Encrypted()),
	}
	if request.Encrypted() {
		input.KmsKeyId = aws.String(request.KMSKeyID)
	}

	output, err := client.CopyImage(ctx, &input)
	if err != nil {
		return "", err
	}

	return aws.ToString(output.ImageId), nil
}
