package services

import (
	"context"
	"time"

	"github.com/rafabene/hiresphere-backend/internal/domain/entities"
	"github.com/rafabene/hiresphere-backend/internal/domain/ports"
	"github.com/rafabene/hiresphere-backend/internal/domain/repositories"
)

const (
	RecentJobsLimit   = 10
	FeaturedJobsLimit = 6
)

// JobSummary é uma vaga com os nomes da empresa e da categoria
type JobSummary struct {
	Job          *entities.Job
	CompanyName  string
	CompanyLogo  *string
	CategoryName string
}

// HomeStats são os totais exibidos na página inicial
type HomeStats struct {
	OpenJobs   int64
	Companies  int64
	Categories int64
}

// HomeOverview agrega os dados da página inicial
type HomeOverview struct {
	RecentJobs   []JobSummary
	FeaturedJobs []JobSummary
	Stats        HomeStats
	Categories   []*entities.Category
}

// HomeService monta as consultas públicas da página inicial
type HomeService struct {
	jobRepo      repositories.JobRepository
	companyRepo  repositories.CompanyRepository
	categoryRepo repositories.CategoryRepository
	logger       ports.Logger
	now          Clock
}

// NewHomeService cria um novo HomeService
func NewHomeService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	categoryRepo repositories.CategoryRepository,
	logger ports.Logger,
) *HomeService {
	return &HomeService{
		jobRepo:      jobRepo,
		companyRepo:  companyRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With("service", "home"),
		now:          systemClock,
	}
}

// Overview retorna vagas recentes, destaques, totais e categorias
func (s *HomeService) Overview(ctx context.Context) (*HomeOverview, error) {
	now := s.now()

	recent, err := s.openJobs(ctx, now, repositories.JobSortNewest, RecentJobsLimit)
	if err != nil {
		return nil, err
	}
	featured, err := s.openJobs(ctx, now, repositories.JobSortSalary, FeaturedJobsLimit)
	if err != nil {
		return nil, err
	}

	openJobs, err := s.jobRepo.CountOpen(ctx, now)
	if err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.summarize(ctx, append(append([]*entities.Job{}, recent...), featured...))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("home overview built", "recent", len(recent), "featured", len(featured))
	return &HomeOverview{
		RecentJobs:   summaries[:len(recent)],
		FeaturedJobs: summaries[len(recent):],
		Stats: HomeStats{
			OpenJobs:   openJobs,
			Companies:  companies,
			Categories: int64(len(categories)),
		},
		Categories: categories,
	}, nil
}

// SearchJobs busca somente vagas abertas e devolve resumos
func (s *HomeService) SearchJobs(ctx context.Context, filter repositories.JobSearchFilter) (Page[JobSummary], error) {
	now := s.now()
	filter.OpenAt = &now
	filter.IsActive = nil
	filter.Pagination = filter.Pagination.Normalize()

	jobs, total, err := s.jobRepo.Search(ctx, filter)
	if err != nil {
		return Page[JobSummary]{}, err
	}

	summaries, err := s.summarize(ctx, jobs)
	if err != nil {
		return Page[JobSummary]{}, err
	}
	return newPage(summaries, total, filter.Pagination), nil
}

// FeaturedJobs retorna as vagas abertas de maior salário
func (s *HomeService) FeaturedJobs(ctx context.Context, limit int) ([]JobSummary, error) {
	if limit <= 0 || limit > repositories.MaxPageSize {
		limit = FeaturedJobsLimit
	}

	jobs, err := s.openJobs(ctx, s.now(), repositories.JobSortSalary, limit)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, jobs)
}

func (s *HomeService) openJobs(ctx context.Context, now time.Time, sort repositories.JobSort, limit int) ([]*entities.Job, error) {
	jobs, _, err := s.jobRepo.Search(ctx, repositories.JobSearchFilter{
		OpenAt:     &now,
		Sort:       sort,
		Pagination: repositories.Pagination{Page: 1, PageSize: limit},
	})
	return jobs, err
}

// summarize resolve nomes de empresa e categoria com uma consulta de cada
func (s *HomeService) summarize(ctx context.Context, jobs []*entities.Job) ([]JobSummary, error) {
	if len(jobs) == 0 {
		return []JobSummary{}, nil
	}

	companyIDs := make([]string, 0, len(jobs))
	categoryIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		companyIDs = append(companyIDs, job.CompanyID)
		categoryIDs = append(categoryIDs, job.CategoryID)
	}

	companies, err := s.companyRepo.FindByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	companyByID := make(map[string]*entities.Company, len(companies))
	for _, c := range companies {
		companyByID[c.ID] = c
	}
	categoryByID := make(map[string]*entities.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	summaries := make([]JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summary := JobSummary{Job: job}
		if company, ok := companyByID[job.CompanyID]; ok {
			summary.CompanyName = company.Name
			summary.CompanyLogo = company.LogoURL
		}
		if category, ok := categoryByID[job.CategoryID]; ok {
			summary.CategoryName = category.Name
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
