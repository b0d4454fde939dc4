package service

import (
	"context"
	"encoding/json"
	"strings"
)

type TextValidationService struct {
	inner TextService
}

func NewTextValidationService() TextServiceWrapper {
	return &TextValidationService{}
}

func (v *TextValidationService) ToTraditional(ctx context.Context, content string) (json.RawMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	return v.inner.ToTraditional(ctx, content)
}

func (v *TextValidationService) Wrap(inner TextService) TextService {
	v.inner = inner
	return v
}
