// Package promoter copies the newest golden image from the source region to
// the destination region and carries its tags over.
package promoter

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"ami-promoter/promoter/aws/client"
	"ami-promoter/promoter/aws/resources"
	"ami-promoter/promoter/common"
)

// Option customizes a Promoter.
type Option func(*Promoter)

// WithClock replaces the clock used to name the destination image.
func WithClock(now func() time.Time) Option {
	return func(p *Promoter) {
		p.now = now
	}
}

// New returns a promoter reading images through source and copying them
// through destination.
func New(source, destination resources.EC2Client, cfg common.Config, opts ...Option) *Promoter {
	p := &Promoter{
		source:      source,
		destination: destination,
		config:      cfg,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open builds clients for the configured source and destination regions.
func Open(ctx context.Context, cfg common.Config, opts ...client.Option) (*Promoter, error) {
	src, err := client.New(ctx, cfg.SourceRegion, opts...)
	if err != nil {
		return nil, err
	}
	dst, err := client.New(ctx, cfg.DestinationRegion, opts...)
	if err != nil {
		return nil, err
	}
	return New(src.Services.EC2, dst.Services.EC2, cfg), nil
}

type Promoter struct {
	source      resources.EC2Client
	destination resources.EC2Client
	config      common.Config
	now         func() time.Time
}

// Config returns the configuration snapshot the promoter runs with.
func (p *Promoter) Config() common.Config {
	return p.config
}

// Candidates returns the golden images in the source region, newest first.
func (p *Promoter) Candidates(ctx context.Context) ([]common.Image, error) {
	images, err := resources.ListImages(ctx, p.source, p.config.TagKey, p.config.TagValue)
	if err != nil {
		return nil, err
	}
	resources.SortNewestFirst(images)
	return images, nil
}

// Promote copies the newest golden image and tags the copy. Finding no
// golden image is not an error: the result then reports Copied=false.
// Provider errors are returned as is; a copy that was made before a tagging
// failure is left in place.
func (p *Promoter) Promote(ctx context.Context) (common.Result, error) {
	logger := common.Logger(ctx).WithFields(logrus.Fields{
		"source":      p.config.SourceRegion,
		"destination": p.config.DestinationRegion,
	})
	ctx = common.WithLogger(ctx, logger)

	var (
		images  []common.Image
		latest  common.Image
		request resources.CopyRequest
		copyID  string
	)

	steps := []common.Step{{
		Description: "Listing " + p.config.TagKey + "=" + p.config.TagValue + " images...",
		Action: func(ctx context.Context) (err error) {
			images, err = resources.ListImages(ctx, p.source, p.config.TagKey, p.config.TagValue)
			return err
		},
	}, {
		Description: "Selecting the newest image...",
		Action: func(ctx context.Context) (err error) {
			latest, err = resources.Latest(images)
			if err != nil {
				return err
			}
			common.Logger(ctx).WithFields(logrus.Fields{
				"image":    latest.ID,
				"created":  latest.CreationDate,
				"matching": len(images),
			}).Info("selected source image")
			return nil
		},
	}, {
		Description: "Requesting the cross-region copy...",
		Action: func(ctx context.Context) (err error) {
			request = resources.CopyRequest{
				SourceImageID: latest.ID,
				SourceRegion:  p.config.SourceRegion,
				Name:          common.DestinationName(p.config.NamePrefix, p.now()),
				KMSKeyID:      p.config.KMSKeyID,
			}
			copyID, err = resources.CopyImage(ctx, p.destination, request)
			if err != nil {
				return err
			}
			common.Logger(ctx).WithFields(logrus.Fields{
				"image":     copyID,
				"name":      request.Name,
				"encrypted": request.Encrypted(),
			}).Info("copy requested")
			return nil
		},
	}, {
		Description: "Tagging the copy...",
		Action: func(ctx context.Context) error {
			tags := latest.Tags.WithProvenance(p.config.ProvenanceKey, latest.ID)
			return resources.TagImage(ctx, p.destination, copyID, tags)
		},
	}}

	if err := common.RunSteps(ctx, steps); err != nil {
		if errors.Is(err, common.NotFoundError) {
			logger.Info("no golden image found")
			return common.Result{Copied: false}, nil
		}
		entry := logger.WithError(err)
		if code := resources.ErrorCode(err); code != "" {
			entry = entry.WithField("code", code)
		}
		if copyID != "" {
			entry = entry.WithField("image", copyID)
		}
		entry.Error("promotion failed")
		return common.Result{}, err
	}

	return common.Result{
		Copied:      true,
		SourceID:    latest.ID,
		Destination: copyID,
		Name:        request.Name,
	}, nil
}
