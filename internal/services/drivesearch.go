package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

// DriveSearchService keeps a vector index of drive postings so the student
// home search can rank by meaning rather than substring. The feature is
// optional: when qdrant or the embedder is unconfigured the HTTP layer falls
// back to plain store filters.
type DriveSearchService interface {
	InitCollection() error
	IndexDrive(ctx context.Context, drive *models.Drive) error
	Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error)
}

type driveSearchService struct {
	client         *qdrant.Client
	embedder       GeminiService
	collectionName string
	vectorSize     uint64
}

func NewDriveSearchService(urlStr, apiKey, collectionName string, embedder GeminiService) (DriveSearchService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, 6334 unless the URL says otherwise.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &driveSearchService{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     768,
	}, nil
}

// InitCollection implements DriveSearchService.
func (s *driveSearchService) InitCollection() error {
	ctx := context.Background()

	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// IndexDrive implements DriveSearchService. Called once at drive creation;
// drives are immutable so there is no re-index path.
func (s *driveSearchService) IndexDrive(ctx context.Context, drive *models.Drive) error {
	text := fmt.Sprintf("%s %s %s", drive.Name, drive.Role, drive.Description)

	embedding, err := s.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed drive: %w", err)
	}

	point := &qdrant.PointStruct{
		Id:      drivePointID(drive.ID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"drive_id": drive.ID.String(),
			"text":     text,
		}),
	}

	_, err = s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert drive point: %w", err)
	}
	return nil
}

// drivePointID keeps the full drive uuid as the qdrant point id, so a drive
// always maps to exactly one point.
func drivePointID(id uuid.UUID) *qdrant.PointId {
	return qdrant.NewID(id.String())
}

// Search implements DriveSearchService, returning drive ids best-first.
func (s *driveSearchService) Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error) {
	embedding, err := s.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search drives: %w", err)
	}

	var ids []uuid.UUID
	for _, point := range points {
		raw, ok := point.Payload["drive_id"]
		if !ok {
			continue
		}
		val, ok := raw.GetKind().(*qdrant.Value_StringValue)
		if !ok {
			continue
		}
		id, err := uuid.Parse(val.StringValue)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
