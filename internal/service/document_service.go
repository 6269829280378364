package service

import (
	"errors"
	"fmt"
	"time"

	"go-pms-backend/internal/apperr"
	"go-pms-backend/internal/document"
	"go-pms-backend/internal/repository"
	"go-pms-backend/pkg/logger"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DocumentService is the shared create/update/read engine behind the four
// document resources. Per-type differences come in through the descriptor;
// create and update run as one transaction covering the header and the full
// item set (updates replace every item, never merge).
type DocumentService interface {
	List(cfg *document.Type) ([]document.Summary, error)
	Detail(cfg *document.Type, id uint) (*document.Detail, error)
	Create(cfg *document.Type, doc document.Document, items func(headerID uint) any, refs []document.ProductRef) (uint, string, error)
	Update(cfg *document.Type, id uint, doc document.Document, items func(headerID uint) any, refs []document.ProductRef) (uint, string, error)
}

type documentService struct {
	repo     repository.DocumentRepository
	products repository.ProductRepository
	db       *gorm.DB
	log      *logrus.Logger
}

func NewDocumentService(repo repository.DocumentRepository, products repository.ProductRepository, db *gorm.DB) DocumentService {
	return &documentService{
		repo:     repo,
		products: products,
		db:       db,
		log:      logger.L(),
	}
}

func (s *documentService) List(cfg *document.Type) ([]document.Summary, error) {
	headers, err := s.repo.ListHeaders(cfg)
	if err != nil {
		return nil, apperr.Persistence("list "+cfg.Name+"s", err)
	}
	stats, err := s.repo.ItemStats(cfg)
	if err != nil {
		return nil, apperr.Persistence("aggregate "+cfg.Name+" items", err)
	}
	summaries := make([]document.Summary, 0, len(headers))
	for _, h := range headers {
		st := stats[h.ID]
		summaries = append(summaries, document.Summary{
			HeaderRow:    h,
			ItemsCount:   st.Count,
			ItemsPreview: st.Preview,
		})
	}
	return summaries, nil
}

func (s *documentService) Detail(cfg *document.Type, id uint) (*document.Detail, error) {
	header, err := s.repo.FindHeader(cfg, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(cfg.Label)
	}
	if err != nil {
		return nil, apperr.Persistence("fetch "+cfg.Name, err)
	}
	items, err := s.repo.ItemsFor(cfg, id)
	if err != nil {
		return nil, apperr.Persistence("fetch "+cfg.Name+" items", err)
	}
	return &document.Detail{Header: *header, Items: items}, nil
}

func (s *documentService) Create(cfg *document.Type, doc document.Document, items func(headerID uint) any, refs []document.ProductRef) (uint, string, error) {
	if err := s.checkInput(cfg, doc, refs); err != nil {
		return 0, "", err
	}

	now := time.Now()
	if doc.DocStatus() == cfg.FinalStatus {
		doc.SetDocFinalizedAt(&now)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateHeader(tx, doc); err != nil {
			return err
		}
		return s.repo.InsertItems(tx, items(doc.DocID()))
	})
	if err != nil {
		return 0, "", apperr.Persistence("create "+cfg.Name, err)
	}

	// Best-effort audit trail; not part of the transaction.
	s.log.WithFields(logrus.Fields{
		cfg.Name + "_id": doc.DocID(),
		"status":         doc.DocStatus(),
	}).Info(cfg.Label + " created")

	return doc.DocID(), doc.DocStatus(), nil
}

func (s *documentService) Update(cfg *document.Type, id uint, doc document.Document, items func(headerID uint) any, refs []document.ProductRef) (uint, string, error) {
	if err := s.checkInput(cfg, doc, refs); err != nil {
		return 0, "", err
	}

	existing, err := s.repo.FindHeader(cfg, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", apperr.NotFound(cfg.Label)
	}
	if err != nil {
		return 0, "", apperr.Persistence("fetch "+cfg.Name, err)
	}

	now := time.Now()
	// The finalized timestamp is stamped the first time the document enters
	// its final status and never changes afterwards.
	finalizedAt := existing.FinalizedAt
	if doc.DocStatus() == cfg.FinalStatus && finalizedAt == nil {
		finalizedAt = &now
	}
	values := cfg.UpdateValues(doc, *existing, finalizedAt, now)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdateHeader(tx, cfg, id, values); err != nil {
			return err
		}
		if err := s.repo.DeleteItems(tx, cfg, id); err != nil {
			return err
		}
		return s.repo.InsertItems(tx, items(id))
	})
	if err != nil {
		return 0, "", apperr.Persistence("update "+cfg.Name, err)
	}

	s.log.WithFields(logrus.Fields{
		cfg.Name + "_id": id,
		"status":         doc.DocStatus(),
	}).Info(cfg.Label + " updated")

	return id, doc.DocStatus(), nil
}

// checkInput enforces what tag validation cannot: the status backstop and
// product references resolving to catalog rows. Runs before any transaction
// is opened.
func (s *documentService) checkInput(cfg *document.Type, doc document.Document, refs []document.ProductRef) error {
	if !cfg.ValidStatus(doc.DocStatus()) {
		return apperr.Validation(map[string][]string{
			"status": {"The selected status is invalid."},
		})
	}

	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	missing, err := s.products.MissingIDs(ids)
	if err != nil {
		return apperr.Persistence("check product references", err)
	}
	if len(missing) == 0 {
		return nil
	}

	gone := make(map[uint]bool, len(missing))
	for _, id := range missing {
		gone[id] = true
	}
	fields := make(map[string][]string)
	for _, ref := range refs {
		if gone[ref.ID] {
			fields[ref.Field] = append(fields[ref.Field], fmt.Sprintf("The selected %s is invalid.", ref.Field))
		}
	}
	return apperr.Validation(fields)
}
