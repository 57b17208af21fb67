package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"wb-labels/label"
	"wb-labels/models"
	"wb-labels/repository"
	"wb-labels/utils"
)

// Number of concurrent render workers per batch. Rendering independent
// (card, size) pairs only shares the output directory tree, which is
// created idempotently
const renderWorkers = 4

// LabelService drives the label pipeline: token lookup, catalog fetch,
// normalization, filtering and rendering into a per-request temp tree.
// Implements LabelServiceInterface
type LabelService struct {
	tokenRepo repository.TokenRepositoryInterface
	wbClient  WBClientInterface
	renderer  label.RendererInterface
}

// NewLabelService creates a new LabelService
func NewLabelService(tokenRepo repository.TokenRepositoryInterface, wbClient WBClientInterface, renderer label.RendererInterface) *LabelService {
	return &LabelService{
		tokenRepo: tokenRepo,
		wbClient:  wbClient,
		renderer:  renderer,
	}
}

// Ensure LabelService implements LabelServiceInterface
var _ LabelServiceInterface = (*LabelService)(nil)

// renderJob pairs one label job with its output path
type renderJob struct {
	job  models.LabelJob
	path string
}

// ProduceLabels runs the six pipeline steps for one request. Each step is a
// hard dependency on the previous one succeeding; any render failure aborts
// the whole batch and removes the temp directory.
func (s *LabelService) ProduceLabels(ctx context.Context, req *models.LabelBatchRequest) (string, []string, error) {
	if req.Brand == "" || req.Platform == "" || req.APICategory == "" || len(req.Models) == 0 {
		return "", nil, ErrMissingInput
	}

	tpl, err := label.Lookup(req.Brand)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedBrand, req.Brand)
	}

	token, err := s.tokenRepo.GetToken(ctx, req.Brand, req.Platform, req.APICategory)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve API token: %w", err)
	}
	if token == "" {
		return "", nil, ErrTokenNotFound
	}

	log.Printf("📥 Label request accepted for brand %s", req.Brand)

	rawCards, err := s.wbClient.FetchAllCards(ctx, token)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch WB cards: %w", err)
	}
	if len(rawCards) == 0 {
		return "", nil, ErrNoCards
	}

	filtered := utils.FilterCards(utils.NormalizeCards(rawCards), req.Models)
	if len(filtered) == 0 {
		return "", nil, ErrNoMatches
	}

	tempDir, err := os.MkdirTemp("", "labels-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	jobs := buildJobs(tempDir, tpl, filtered)
	if err := s.renderAll(ctx, tpl, jobs); err != nil {
		os.RemoveAll(tempDir)
		return "", nil, err
	}

	paths := make([]string, len(jobs))
	for i, job := range jobs {
		paths[i] = job.path
	}

	log.Printf("✓ Rendered %d labels for brand %s", len(paths), req.Brand)
	return tempDir, paths, nil
}

// buildJobs expands filtered cards into one render job per (card, size) pair.
// Output paths follow <brand>/<generalArticle>/<article>_<color>/<techSize>.pdf
func buildJobs(tempDir string, tpl *label.Template, cards []models.NormalizedCard) []renderJob {
	var jobs []renderJob
	for _, card := range cards {
		dir := filepath.Join(tempDir, tpl.Brand, utils.GeneralArticle(card.Article),
			fmt.Sprintf("%s_%s", card.Article, card.Color))

		for _, size := range card.Sizes {
			jobs = append(jobs, renderJob{
				path: filepath.Join(dir, size.TechSize+".pdf"),
				job: models.LabelJob{
					TechSize: size.TechSize,
					Barcode:  size.Sku,
					Article:  card.Article,
					Color:    card.Color,
					Gender:   card.Gender,
					Standard: tpl.Standard(utils.IsSmallSize(size.TechSize)),
				},
			})
		}
	}
	return jobs
}

// renderAll renders every job with a bounded worker pool. The first failure
// cancels the remaining work
func (s *LabelService) renderAll(ctx context.Context, tpl *label.Template, jobs []renderJob) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(renderWorkers)

	for _, item := range jobs {
		item := item
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			document, result, err := s.renderer.Render(tpl, item.job)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", item.job.TechSize, err)
			}
			for _, warning := range result.Warnings {
				log.Printf("⚠️ %s (%s/%s)", warning, item.job.Article, item.job.TechSize)
			}

			// Create-if-absent: concurrent workers may share a directory
			if err := os.MkdirAll(filepath.Dir(item.path), 0755); err != nil {
				return fmt.Errorf("failed to create label directory: %w", err)
			}
			if err := os.WriteFile(item.path, document, 0644); err != nil {
				return fmt.Errorf("failed to write label %s: %w", item.path, err)
			}
			return nil
		})
	}

	return group.Wait()
}
