package models

// QueryResult is the response of the agent query endpoint.
type QueryResult struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Model    string `json:"model"`
}

// AnalyzeRequest is the multipart payload of the project-analysis endpoint.
// Exactly one of Description or FileName/FileContent is expected; the file
// must be a PDF or DOCX document.
type AnalyzeRequest struct {
	ProjectName    string
	Description    string
	FileName       string
	FileContent    []byte
	RequiredSkills []string
	Categories     []string
}

// Analysis is the structured result of a project analysis.
type Analysis struct {
	Success                 bool     `json:"success"`
	RequiredSkills          []string `json:"required_skills"`
	ProjectCategories       []string `json:"project_categories"`
	TotalDevelopersAnalyzed int      `json:"total_developers_analyzed"`
	Analysis                string   `json:"analysis"`
	Model                   string   `json:"model"`
}
