// Package writer renders simulation briefings for export: a markdown
// mission summary plus a parquet table of the sampled orbital tracks, with
// optional upload to S3.
package writer

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/xitongsys/parquet-go/parquet"
	pqwriter "github.com/xitongsys/parquet-go/writer"

	appconfig "astroshield/config"
	"astroshield/logger"
	"astroshield/models"
)

// TrackRecord is one sampled orbital position in the exported parquet
// table.
type TrackRecord struct {
	SimulationID string  `parquet:"name=simulation_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Track        string  `parquet:"name=track, type=BYTE_ARRAY, convertedtype=UTF8"`
	Sample       int32   `parquet:"name=sample, type=INT32"`
	XKM          float64 `parquet:"name=x_km, type=DOUBLE"`
	YKM          float64 `parquet:"name=y_km, type=DOUBLE"`
	ZKM          float64 `parquet:"name=z_km, type=DOUBLE"`
}

// Track labels used in the parquet table.
const (
	trackBaseline  = "baseline"
	trackDeflected = "deflected"
)

// Briefing is one rendered export bundle. ObjectKeys is populated only
// when the bundle was uploaded.
type Briefing struct {
	BriefingID  string    `json:"briefing_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Markdown    []byte    `json:"-"`
	TrackData   []byte    `json:"-"`
	ObjectKeys  []string  `json:"object_keys,omitempty"`
}

// BriefingWriter renders briefings and uploads them when S3 export is
// enabled.
type BriefingWriter struct {
	cfg      *appconfig.Config
	s3Client *s3.Client
	log      *logger.Log
}

// NewBriefingWriter creates the briefing writer. The S3 client is only
// configured when export is enabled; a disabled writer still renders
// briefings for direct download.
func NewBriefingWriter(cfg *appconfig.Config) (*BriefingWriter, error) {
	log := logger.GetLogger()
	w := &BriefingWriter{cfg: cfg, log: log}

	if !cfg.Export.S3.Enabled {
		return w, nil
	}

	ctx := context.Background()
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Export.S3.Region),
	}
	if cfg.Export.S3.AccessKeyID != "" && cfg.Export.S3.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.Export.S3.AccessKeyID,
				cfg.Export.S3.SecretAccessKey,
				"",
			),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.WithComponent("briefing_writer").WithError(err).Warn("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	creds, err := awsConfig.Credentials.Retrieve(ctx)
	if err != nil || !creds.HasKeys() {
		return nil, fmt.Errorf("aws credentials not found")
	}

	w.s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Export.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Export.S3.Endpoint)
		}
		o.UsePathStyle = cfg.Export.S3.PathStyle
	})

	log.WithComponent("briefing_writer").WithFields(logger.Fields{
		"bucket":     cfg.Export.S3.Bucket,
		"region":     cfg.Export.S3.Region,
		"endpoint":   cfg.Export.S3.Endpoint,
		"path_style": cfg.Export.S3.PathStyle,
	}).Info("briefing writer initialized")

	return w, nil
}

// Export renders the briefing bundle for a completed simulation and
// uploads it when S3 export is enabled.
func (w *BriefingWriter) Export(ctx context.Context, sim models.SimulationResponse) (Briefing, error) {
	briefing := Briefing{
		BriefingID:  uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}
	briefing.Markdown = renderMarkdown(sim, briefing.GeneratedAt)

	trackData, err := encodeTracks(sim)
	if err != nil {
		return Briefing{}, err
	}
	briefing.TrackData = trackData

	if w.s3Client == nil {
		return briefing, nil
	}

	prefix := strings.TrimSuffix(w.cfg.Export.S3.KeyPrefix, "/")
	base := fmt.Sprintf("%s/%s/%s", prefix, briefing.GeneratedAt.Format("2006/01/02"), briefing.BriefingID)

	uploads := []struct {
		key         string
		data        []byte
		contentType string
	}{
		{base + "/briefing.md", briefing.Markdown, "text/markdown"},
		{base + "/tracks.parquet", briefing.TrackData, "application/octet-stream"},
	}
	for _, upload := range uploads {
		if err := w.uploadToS3(ctx, upload.key, upload.data, upload.contentType); err != nil {
			return Briefing{}, err
		}
		briefing.ObjectKeys = append(briefing.ObjectKeys, upload.key)
	}

	w.log.WithComponent("briefing_writer").WithFields(logger.Fields{
		"briefing_id":   briefing.BriefingID,
		"simulation_id": sim.SimulationID,
		"objects":       len(briefing.ObjectKeys),
	}).Info("briefing exported")

	return briefing, nil
}

func (w *BriefingWriter) uploadToS3(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(w.cfg.Export.S3.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"astroshield-version": w.cfg.Astroshield.Version,
		},
	}

	if _, err := w.s3Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to S3 bucket %s: %w", w.cfg.Export.S3.Bucket, err)
	}
	return nil
}

// encodeTracks writes the baseline and deflected tracks into an in-memory
// parquet file.
func encodeTracks(sim models.SimulationResponse) ([]byte, error) {
	fw := newMemoryFileWriter()
	pw, err := pqwriter.NewParquetWriter(fw, new(TrackRecord), 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	write := func(track string, points []models.PathPoint) error {
		for i, point := range points {
			record := TrackRecord{
				SimulationID: sim.SimulationID,
				Track:        track,
				Sample:       int32(i),
				XKM:          point.X,
				YKM:          point.Y,
				ZKM:          point.Z,
			}
			if err := pw.Write(record); err != nil {
				pw.WriteStop()
				return fmt.Errorf("failed to write parquet record: %w", err)
			}
		}
		return nil
	}

	if err := write(trackBaseline, sim.OrbitalSolution.BaselinePath); err != nil {
		return nil, err
	}
	if err := write(trackDeflected, sim.OrbitalSolution.DeflectedPath); err != nil {
		return nil, err
	}

	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("failed to finalize parquet writing: %w", err)
	}
	return fw.Bytes(), nil
}
