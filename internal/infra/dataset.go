package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/epmviz/backend/internal/app/appconfig"
	"github.com/epmviz/backend/internal/core/dataset"
)

// DatasetSource resolves DatasetURI into the matching dataset source. S3
// credentials come from the config when set, otherwise from the default AWS
// credential chain.
func DatasetSource(conf *appconfig.Config) (dataset.Source, error) {
	loc, err := dataset.ParseLocation(conf.DatasetURI)
	if err != nil {
		log.Error().Err(err).Str("uri", conf.DatasetURI).Msg("infra: dataset: invalid dataset uri")
		return nil, err
	}

	var src dataset.Source
	switch loc.Scheme {
	case dataset.SchemeHTTP, dataset.SchemeHTTPS:
		src = dataset.NewHTTPSource(loc.Path, conf.DatasetTimeout)
	case dataset.SchemeS3:
		opts := []func(*config.LoadOptions) error{config.WithRegion(conf.S3Region)}
		if conf.AWSAccessKey != "" {
			opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, "")))
		}
		awsConf, err := config.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			log.Error().Err(err).Msg("infra: dataset: failed to load aws config")
			return nil, err
		}
		src = dataset.NewS3Source(s3.NewFromConfig(awsConf), loc.Bucket, loc.Path)
	default:
		src = dataset.NewFileSource(loc.Path)
	}

	log.Info().
		Str("evt.name", "infra.dataset").
		Str("scheme", string(loc.Scheme)).
		Str("location", src.Location()).
		Msg("dataset source configured")

	return src, nil
}
