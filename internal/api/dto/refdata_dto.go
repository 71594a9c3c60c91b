package dto

import "github.com/spec-kit/workspace-hub/internal/domain"

// DepartmentResponse represents a department dimension.
type DepartmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// TemplateResponse represents a report template.
type TemplateResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// BranchResponse represents a branch dimension.
type BranchResponse struct {
	ID       string `json:"id"`
	RegionID string `json:"region_id"`
	Name     string `json:"name"`
}

// RegionResponse represents a region dimension.
type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DepartmentsFromDomain maps departments to responses.
func DepartmentsFromDomain(departments []domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		out = append(out, DepartmentResponse{ID: dept.ID, Name: dept.Name, IsActive: dept.IsActive})
	}
	return out
}

// TemplatesFromDomain maps templates to responses.
func TemplatesFromDomain(templates []domain.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, TemplateResponse{ID: tpl.ID, Name: tpl.Name, IsActive: tpl.IsActive})
	}
	return out
}

// BranchesFromDomain maps branches to responses.
func BranchesFromDomain(branches []domain.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(branches))
	for _, branch := range branches {
		out = append(out, BranchResponse{ID: branch.ID, RegionID: branch.RegionID, Name: branch.Name})
	}
	return out
}

// RegionsFromDomain maps regions to responses.
func RegionsFromDomain(regions []domain.Region) []RegionResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, region := range regions {
		out = append(out, RegionResponse{ID: region.ID, Name: region.Name})
	}
	return out
}
