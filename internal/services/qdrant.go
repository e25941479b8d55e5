package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

type VectorStoreService interface {
	InitCollection() error
	UpsertResumeChunk(ctx context.Context, resumeID, candidateID string, chunkIndex int, text string, embedding []float32) error
	SearchResumes(ctx context.Context, queryEmbedding []float32, limit int) ([]ResumeChunkMatch, error)
	DeleteCandidateChunks(ctx context.Context, candidateID string) error
}

type ResumeChunkMatch struct {
	ResumeID    string
	CandidateID string
	Text        string
	Score       float32
}

type vectorStoreService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewVectorStoreService(urlStr, apiKey, collectionName string) (VectorStoreService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
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

	return &vectorStoreService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements VectorStoreService.
func (q *vectorStoreService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertResumeChunk implements VectorStoreService.
func (q *vectorStoreService) UpsertResumeChunk(ctx context.Context, resumeID, candidateID string, chunkIndex int, text string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"resume_id":    resumeID,
			"candidate_id": candidateID,
			"chunk_index":  chunkIndex,
			"text":         text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchResumes implements VectorStoreService.
func (q *vectorStoreService) SearchResumes(ctx context.Context, queryEmbedding []float32, limit int) ([]ResumeChunkMatch, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var matches []ResumeChunkMatch
	for _, point := range searchResult {
		payload := point.Payload

		match := ResumeChunkMatch{
			Score: point.Score,
		}

		if resumeID, ok := payload["resume_id"]; ok {
			if val, ok := resumeID.GetKind().(*qdrant.Value_StringValue); ok {
				match.ResumeID = val.StringValue
			}
		}

		if candidateID, ok := payload["candidate_id"]; ok {
			if val, ok := candidateID.GetKind().(*qdrant.Value_StringValue); ok {
				match.CandidateID = val.StringValue
			}
		}

		if text, ok := payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				match.Text = val.StringValue
			}
		}

		matches = append(matches, match)
	}

	return matches, nil
}

// DeleteCandidateChunks implements VectorStoreService.
func (q *vectorStoreService) DeleteCandidateChunks(ctx context.Context, candidateID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("candidate_id", candidateID),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete candidate chunks: %w", err)
	}

	return nil
}
