package dto

import (
	"github.com/rafabene/hiresphere-backend/internal/services"
)

// JobSummaryResponse é uma vaga com nomes de empresa e categoria
type JobSummaryResponse struct {
	JobResponse
	CompanyName  string  `json:"companyName"`
	CompanyLogo  *string `json:"companyLogo,omitempty"`
	CategoryName string  `json:"categoryName"`
}

// HomeStatsResponse são os totais da página inicial
type HomeStatsResponse struct {
	OpenJobs   int64 `json:"openJobs"`
	Companies  int64 `json:"companies"`
	Categories int64 `json:"categories"`
}

// HomeResponse é a resposta de /api/home
type HomeResponse struct {
	RecentJobs   []JobSummaryResponse `json:"recentJobs"`
	FeaturedJobs []JobSummaryResponse `json:"featuredJobs"`
	Stats        HomeStatsResponse    `json:"stats"`
	Categories   []CategoryResponse   `json:"categories"`
}

// ToJobSummaryResponses converte resumos de vagas
func ToJobSummaryResponses(summaries []services.JobSummary) []JobSummaryResponse {
	responses := make([]JobSummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = JobSummaryResponse{
			JobResponse:  ToJobResponse(s.Job),
			CompanyName:  s.CompanyName,
			CompanyLogo:  s.CompanyLogo,
			CategoryName: s.CategoryName,
		}
	}
	return responses
}

// ToHomeResponse converte a visão geral da página inicial
func ToHomeResponse(overview *services.HomeOverview) HomeResponse {
	return HomeResponse{
		RecentJobs:   ToJobSummaryResponses(overview.RecentJobs),
		FeaturedJobs: ToJobSummaryResponses(overview.FeaturedJobs),
		Stats: HomeStatsResponse{
			OpenJobs:   overview.Stats.OpenJobs,
			Companies:  overview.Stats.Companies,
			Categories: overview.Stats.Categories,
		},
		Categories: ToCategoryResponses(overview.Categories),
	}
}

// ToJobSummaryPage converte uma página de resumos
func ToJobSummaryPage(page services.Page[services.JobSummary]) PaginatedResponse[JobSummaryResponse] {
	return toPaginated(page, ToJobSummaryResponses(page.Items))
}
