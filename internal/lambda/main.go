package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"ami-promoter/promoter/common"
)

func main() {
	lambda.Start(handler)
}

// handler runs one promotion. The triggering event carries no parameters;
// everything comes from the function environment.
func handler(ctx context.Context, _ json.RawMessage) (common.Result, error) {
	cfg := common.LoadConfig(common.NewViper())

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	entry := logger.WithField("function", lambdacontext.FunctionName)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.WithField("request", lc.AwsRequestID)
	}
	ctx = common.WithLogger(ctx, entry)

	p, err := newPromoter(ctx, cfg)
	if err != nil {
		entry.WithError(err).Error("failed to create clients")
		return common.Result{}, err
	}

	result, err := p.Promote(ctx)
	if err != nil {
		return common.Result{}, err
	}

	if result.Copied {
		entry.WithFields(logrus.Fields{
			"src_ami": result.SourceID,
			"dst_ami": result.Destination,
			"name":    result.Name,
		}).Info("promotion requested")
	}
	return result, nil
}
