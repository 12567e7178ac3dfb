package invoicer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/limetreebower/invoicegen/internal/config"
	"github.com/limetreebower/invoicegen/internal/extract"
	"github.com/limetreebower/invoicegen/internal/order"
	"github.com/limetreebower/invoicegen/internal/pdfio"
	"github.com/limetreebower/invoicegen/internal/render"
)

// Service orchestrates one extraction pass: read the order PDF, normalize
// the text, extract fields, derive totals, assemble the record and render
// the invoice. The service holds no per-document state, so one instance
// can serve overlapping invocations.
type Service struct {
	cfg       *config.Config
	validator *pdfio.Validator
	reader    *pdfio.Reader
	extractor *extract.Extractor
	renderer  *render.Renderer
	logger    *zap.Logger
}

// GenerateRequest asks for one invoice from one order document.
type GenerateRequest struct {
	Path      string          `json:"path"`
	BilledTo  config.BilledTo `json:"billed_to"`
	OutputDir string          `json:"output_dir,omitempty"`
}

// GenerateResult carries the assembled record and the written invoice path.
type GenerateResult struct {
	Record      order.OrderRecord `json:"record"`
	InvoicePath string            `json:"invoice_path"`
}

// NewService creates an invoicer service wired from configuration.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	extractor, err := extract.NewDefaultExtractor(extract.RuleDefaults{
		Date:             cfg.DefaultDate,
		Description:      cfg.DefaultDescription,
		ProductPhrase:    cfg.ProductPhrase,
		CarrierPhrase:    cfg.CarrierPhrase,
		ShippingFlatRate: cfg.ShippingFlatRate,
		EmailFallback:    cfg.EmailFallback,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build extractor: %w", err)
	}

	return &Service{
		cfg:       cfg,
		validator: pdfio.NewValidator(cfg.MaxFileSize),
		reader:    pdfio.NewReader(cfg.MaxFileSize),
		extractor: extractor,
		renderer:  render.NewRenderer(cfg.Business, cfg.BrandColor),
		logger:    logger,
	}, nil
}

// GenerateFromFile reads the order PDF and produces its tax invoice.
func (s *Service) GenerateFromFile(req GenerateRequest) (*GenerateResult, error) {
	if err := s.validator.ValidateFile(req.Path); err != nil {
		return nil, fmt.Errorf("order document validation failed: %w", err)
	}

	read, err := s.reader.ReadOrderText(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read order document: %w", err)
	}
	s.logger.Debug("order text extracted",
		zap.String("path", read.Path),
		zap.Int("pages", read.Pages),
		zap.Int("text_length", len(read.Text)),
	)

	return s.GenerateFromText(read.Text, req.BilledTo, req.OutputDir)
}

// GenerateFromText runs the extraction pipeline over already-decoded text
// and renders the invoice. Embedders with their own document reader can
// call this directly.
func (s *Service) GenerateFromText(text string, billed config.BilledTo, outputDir string) (*GenerateResult, error) {
	record := s.ExtractRecord(text)

	if outputDir == "" {
		outputDir = s.cfg.OutputDir
	}
	path, err := s.renderer.RenderFile(record, billed, outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	s.logger.Info("invoice generated",
		zap.String("order_number", record.OrderNumber),
		zap.String("total", record.TotalAmount),
		zap.String("invoice", path),
	)

	return &GenerateResult{
		Record:      record,
		InvoicePath: path,
	}, nil
}

// ExtractRecord runs normalize, extract, derive and assemble over the raw
// text of one order page. It always returns a complete, internally
// consistent record; field-level misses resolve to their fallbacks.
func (s *Service) ExtractRecord(raw string) order.OrderRecord {
	text := extract.Normalize(raw)
	fields := s.extractor.Extract(text)

	defaults := order.Defaults{
		Date:          s.cfg.DefaultDate,
		Description:   s.cfg.DefaultDescription,
		Email:         s.cfg.EmailFallback,
		PickupLabel:   s.cfg.PickupLabel,
		DeliveryLabel: s.cfg.DeliveryLabel,
	}
	derived := order.Derive(fields, defaults)

	if !derived.TaxMatchesReported(fields) {
		s.logger.Debug("reported GST differs from back-calculated tax",
			zap.String("reported", fields.Get(extract.FieldReportedTax)),
			zap.String("derived", derived.TaxAmount),
		)
	}

	return order.Assemble(fields, derived, defaults)
}
