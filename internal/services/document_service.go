package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
)

// Compile-time check to ensure documentService implements DocumentService
var _ DocumentService = (*documentService)(nil)

type documentService struct {
	documentRepo repositories.DocumentRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documentRepo repositories.DocumentRepository) DocumentService {
	return &documentService{documentRepo: documentRepo}
}

// Upsert creates or replaces the policy document of the given type.
// There is at most one document per type.
func (s *documentService) Upsert(ctx context.Context, req *models.UpsertDocumentRequest) (*models.Document, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidStatus, req.Type)
	}

	document := &models.Document{
		Type:    req.Type,
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	}
	if err := s.documentRepo.Upsert(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to upsert document: %w", err)
	}
	return document, nil
}

// GetByType retrieves the policy document of the given type
func (s *documentService) GetByType(ctx context.Context, docType models.DocumentType) (*models.Document, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidStatus, docType)
	}
	document, err := s.documentRepo.FindByType(ctx, docType)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return document, nil
}

// GetAll retrieves every policy document
func (s *documentService) GetAll(ctx context.Context) ([]*models.Document, error) {
	return s.documentRepo.FindAll(ctx)
}
