package resources

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ami-promoter/promoter/common"
)

// ListImages returns the images owned by the calling account that carry the
// tag key=value.
func ListImages(ctx context.Context, client EC2Client, key, value string) ([]common.Image, error) {
	input := ec2.DescribeImagesInput{
		Owners: []string{"self"},
		Filters: []types.Filter{
			{
				Name:   aws.String(fmt.Sprintf("tag:%s", key)),
				Values: []string{value},
			},
		},
	}

	result, err := client.DescribeImages(ctx, &input)
	if err != nil {
		return nil, err
	}

	images := make([]common.Image, 0, len(result.Images))
	for _, image := range result.Images {
		images = append(images, common.Image{
			ID:           aws.ToString(image.ImageId),
			Name:         aws.ToString(image.Name),
			CreationDate: aws.ToString(image.CreationDate),
			Tags:         tagMap(image.Tags),
		})
	}

	return images, nil
}

// SortNewestFirst orders images by descending creation date. Images whose
// date does not parse come last.
func SortNewestFirst(images []common.Image) {
	keyed := make([]keyedImage, len(images))
	for i, image := range images {
		keyed[i] = keyedImage{image: image, created: parseCreationDate(image.CreationDate)}
	}

	sort.SliceStable(keyed, func(a, b int) bool {
		return keyed[a].created.after(keyed[b].created)
	})

	for i := range keyed {
		images[i] = keyed[i].image
	}
}

// Latest returns the image with the greatest creation date.
func Latest(images []common.Image) (common.Image, error) {
	if len(images) == 0 {
		return common.Image{}, common.NotFoundError
	}

	latest := images[0]
	latestCreated := parseCreationDate(latest.CreationDate)
	for _, image := range images[1:] {
		if created := parseCreationDate(image.CreationDate); created.after(latestCreated) {
			latest, latestCreated = image, created
		}
	}
	return latest, nil
}

type keyedImage struct {
	image   common.Image
	created creationDate
}

// creationDate orders parsed timestamps as instants, ahead of any
// unparseable value; unparseable values order among themselves lexically.
type creationDate struct {
	raw    string
	time   time.Time
	parsed bool
}

func parseCreationDate(raw string) creationDate {
	t, err := time.Parse(time.RFC3339, raw)
	return creationDate{raw: raw, time: t, parsed: err == nil}
}

func (d creationDate) after(other creationDate) bool {
	switch {
	case d.parsed && other.parsed:
		return d.time.After(other.time)
	case d.parsed != other.parsed:
		return d.parsed
	default:
		return d.raw > other.raw
	}
}

func tagMap(tags []types.Tag) common.Tags {
	result := make(common.Tags, len(tags))
	for _, tag := range tags {
		result[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return result
}
