package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/tool-suite/internal/adapter"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/models"
)

const toTraditionalPath = "/v1/text/to-traditional"

type textService struct {
	client adapter.APIClient

	logger *logger.Logger
}

func NewTextService(client adapter.APIClient, logger *logger.Logger) (TextService, error) {
	if client == nil {
		return nil, ErrNoAPIClient
	}

	return &textService{
		client: client,
		logger: logger,
	}, nil
}

func (s *textService) ToTraditional(ctx context.Context, content string) (json.RawMessage, error) {
	resp, err := s.client.Post(ctx, toTraditionalPath, models.TextRequest{Content: content})
	if err != nil {
		return nil, fmt.Errorf("convert to traditional: %w", err)
	}

	return json.RawMessage(resp.Body), nil
}
