package services

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/notifications"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/db"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
	"github.com/kaan/etdtrack/internal/pkg/checksum"
	"github.com/kaan/etdtrack/internal/pkg/filestorage"
	"github.com/kaan/etdtrack/internal/pkg/keywords"
)

// ThesisService handles the dissertation document and its workflow
type ThesisService struct {
	pool          *pgxpool.Pool
	thesisRepo    *repositories.ThesisRepository
	keywordRepo   *repositories.KeywordRepository
	candidateRepo *repositories.CandidateRepository
	checklistRepo *repositories.ChecklistRepository
	referenceRepo *repositories.ReferenceRepository
	storage       filestorage.Storage
	dispatcher    *notifications.Dispatcher
	logger        zerolog.Logger
}

// NewThesisService creates a new thesis service instance
func NewThesisService(
	pool *pgxpool.Pool,
	repos *repositories.Repositories,
	storage filestorage.Storage,
	dispatcher *notifications.Dispatcher,
	logger zerolog.Logger,
) *ThesisService {
	return &ThesisService{
		pool:          pool,
		thesisRepo:    repos.ThesisRepository,
		keywordRepo:   repos.KeywordRepository,
		candidateRepo: repos.CandidateRepository,
		checklistRepo: repos.ChecklistRepository,
		referenceRepo: repos.ReferenceRepository,
		storage:       storage,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// GetByCandidateID returns a candidate's thesis.
func (s *ThesisService) GetByCandidateID(ctx context.Context, candidateID int64) (*models.Thesis, error) {
	return s.thesisRepo.GetByCandidateID(ctx, candidateID)
}

// UploadDocument stores an uploaded dissertation PDF and attaches it to
// the candidate's thesis, replacing any previous file. The previous
// file is removed from storage only after the new one is recorded.
// Re-uploading after a rejection resets the thesis for resubmission;
// an accepted thesis's document cannot be replaced.
func (s *ThesisService) UploadDocument(ctx context.Context, candidateID int64, fileHeader *multipart.FileHeader) (*models.Thesis, error) {
	thesis, err := s.thesisRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	if !models.IsPDFFileName(fileHeader.Filename) {
		return nil, apperrors.ErrThesisInvalidFile
	}
	if thesis.Status == models.ThesisAccepted {
		return nil, apperrors.ErrThesisDocumentLocked
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Hash while storing so the upload is read once and the checksum
	// covers exactly the bytes that landed on disk.
	reader, digest := checksum.Tee(file)
	storagePath, err := s.storage.Save(reader, fileHeader.Filename)
	if err != nil {
		return nil, err
	}
	sum := digest()

	previousPath := thesis.DocumentPath
	if err := thesis.AttachDocument(fileHeader.Filename, storagePath, sum); err != nil {
		// Don't leave the stored file orphaned.
		if removeErr := s.storage.Delete(storagePath); removeErr != nil {
			s.logger.Warn().Err(removeErr).Str("path", storagePath).Msg("Failed to remove unattached upload")
		}
		return nil, err
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.thesisRepo.UpdateDocumentTx(ctx, tx, thesis)
	})
	if err != nil {
		if removeErr := s.storage.Delete(storagePath); removeErr != nil {
			s.logger.Warn().Err(removeErr).Str("path", storagePath).Msg("Failed to remove unattached upload")
		}
		return nil, err
	}

	if previousPath != "" && previousPath != storagePath {
		if err := s.storage.Delete(previousPath); err != nil {
			s.logger.Warn().Err(err).Str("path", previousPath).Msg("Failed to remove replaced document")
		}
	}

	s.logger.Info().
		Int64("candidateID", candidateID).
		Str("fileName", thesis.FileName).
		Str("checksum", thesis.Checksum).
		Msg("Dissertation document stored")
	return thesis, nil
}

// OpenDocument returns the thesis and a reader over its stored
// document for download. The caller closes the reader.
func (s *ThesisService) OpenDocument(ctx context.Context, candidateID int64) (*models.Thesis, io.ReadCloser, error) {
	thesis, err := s.thesisRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}
	if !thesis.HasDocument() {
		return nil, nil, apperrors.NewResourceNotFoundError("no document has been uploaded for this thesis")
	}
	reader, err := s.storage.Open(thesis.DocumentPath)
	if err != nil {
		return nil, nil, err
	}
	return thesis, reader, nil
}

// UpdateMetadata replaces the thesis title, abstract, language, and
// keyword set. Keywords are canonicalized; an existing keyword with the
// same canonical form is reused rather than duplicated.
func (s *ThesisService) UpdateMetadata(ctx context.Context, candidateID int64, req *dto.ThesisMetadataRequest) (*models.Thesis, error) {
	thesis, err := s.thesisRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	if req.LanguageID != nil {
		if _, err := s.referenceRepo.GetLanguageByID(ctx, *req.LanguageID); err != nil {
			return nil, err
		}
	}

	keywords := make([]*models.Keyword, 0, len(req.Keywords))
	seen := make(map[string]bool, len(req.Keywords))
	for _, text := range req.Keywords {
		keyword, err := models.NewKeyword(text)
		if err != nil {
			return nil, err
		}
		if seen[keyword.Text] {
			continue
		}
		seen[keyword.Text] = true
		keywords = append(keywords, keyword)
	}

	thesis.Title = req.Title
	thesis.Abstract = req.Abstract
	thesis.LanguageID = req.LanguageID
	thesis.Keywords = keywords

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		for _, keyword := range thesis.Keywords {
			if err := s.keywordRepo.GetOrCreateTx(ctx, tx, keyword); err != nil {
				return err
			}
		}
		return s.thesisRepo.UpdateMetadataTx(ctx, tx, thesis)
	})
	if err != nil {
		return nil, err
	}
	return thesis, nil
}

// SearchKeywords suggests existing keywords matching the query, for
// the metadata form. Matching runs against the diacritic-stripped
// search form, so "Education" finds "Éducation".
func (s *ThesisService) SearchKeywords(ctx context.Context, query string) ([]*models.Keyword, error) {
	_, searchText, err := keywords.Normalize(query)
	if err != nil {
		return nil, err
	}
	return s.keywordRepo.Search(ctx, searchText)
}

// Submit moves the thesis into the pending queue for format review. It
// fails when the document or any required metadata is missing.
func (s *ThesisService) Submit(ctx context.Context, candidateID int64) (*models.Thesis, error) {
	thesis, err := s.thesisRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := thesis.Submit(now); err != nil {
		return nil, err
	}
	if err := s.thesisRepo.MarkSubmitted(ctx, thesis.ID, now); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("candidateID", candidateID).Msg("Dissertation submitted for review")
	return thesis, nil
}

// Accept approves a pending submission and emails the candidate. The
// state change is committed before the email is sent; a delivery
// failure surfaces as an error but does not undo the acceptance.
func (s *ThesisService) Accept(ctx context.Context, candidateID int64) (*models.Thesis, error) {
	candidate, thesis, err := s.candidateWithThesis(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := thesis.Accept(now); err != nil {
		return nil, err
	}
	if err := s.thesisRepo.MarkAccepted(ctx, thesis.ID, now); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("candidateID", candidateID).Msg("Dissertation accepted")

	candidate.Thesis = thesis
	if err := s.dispatcher.SendAccept(candidate); err != nil {
		return thesis, err
	}
	return thesis, nil
}

// Reject returns a pending submission to the candidate with the
// reviewer's formatting comments and emails the itemized issues. The
// state change is committed before the email is sent.
func (s *ThesisService) Reject(ctx context.Context, candidateID int64, req *dto.RejectThesisRequest) (*models.Thesis, error) {
	candidate, thesis, err := s.candidateWithThesis(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	review := models.FormatReview{
		GeneralComments:      req.GeneralComments,
		TitlePageComment:     req.TitlePageComment,
		SignaturePageComment: req.SignaturePageComment,
		FontComment:          req.FontComment,
		SpacingComment:       req.SpacingComment,
		MarginsComment:       req.MarginsComment,
		PaginationComment:    req.PaginationComment,
		FormatComment:        req.FormatComment,
		GraphsComment:        req.GraphsComment,
		DatingComment:        req.DatingComment,
	}

	now := time.Now()
	if err := thesis.Reject(review, now); err != nil {
		return nil, err
	}
	if err := s.thesisRepo.MarkRejected(ctx, thesis.ID, review, now); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("candidateID", candidateID).Msg("Dissertation rejected")

	candidate.Thesis = thesis
	if err := s.dispatcher.SendReject(candidate); err != nil {
		return thesis, err
	}
	return thesis, nil
}

func (s *ThesisService) candidateWithThesis(ctx context.Context, candidateID int64) (*models.Candidate, *models.Thesis, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}
	thesis, err := s.thesisRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}
	return candidate, thesis, nil
}
