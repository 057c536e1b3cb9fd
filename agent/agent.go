// Package agent talks to the AI endpoints: free-text queries and the
// project-analysis workflow (optionally fed a PDF/DOCX brief). Unlike the
// entity endpoints these do not use the response envelope, and the analysis
// payload is validated against a JSON schema before it is trusted.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/client"
	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
)

type Agent struct {
	client *client.Client
	logger zerolog.Logger
}

func New(c *client.Client) *Agent {
	return &Agent{
		client: c,
		logger: log.With().Str("component", "agent").Logger(),
	}
}

// Query sends a free-text question to the agent.
func (a *Agent) Query(ctx context.Context, query string) (models.QueryResult, error) {
	if strings.TrimSpace(query) == "" {
		return models.QueryResult{}, errs.NewMissingRequiredFieldError("query")
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return models.QueryResult{}, errs.NewInternalErrorWithCause("failed to marshal query", err)
	}

	body, err := a.client.Do(ctx, http.MethodPost, "/api/agent/query", "application/json", bytes.NewReader(payload))
	if err != nil {
		return models.QueryResult{}, err
	}

	var result models.QueryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return models.QueryResult{}, errs.NewInternalErrorWithCause("unexpected agent query response", err)
	}
	return result, nil
}

// AnalyzeProject submits a project brief for analysis as a multipart form.
// The brief is either a free-text description or an uploaded PDF/DOCX file.
func (a *Agent) AnalyzeProject(ctx context.Context, req models.AnalyzeRequest) (models.Analysis, error) {
	if strings.TrimSpace(req.ProjectName) == "" {
		return models.Analysis{}, errs.NewMissingRequiredFieldError("project_name")
	}
	if req.FileName != "" {
		ext := strings.ToLower(filepath.Ext(req.FileName))
		if ext != ".pdf" && ext != ".docx" {
			return models.Analysis{}, errs.NewInvalidFieldError("project_file", "only PDF and DOCX files are supported")
		}
	}

	form, contentType, err := buildAnalyzeForm(req)
	if err != nil {
		return models.Analysis{}, errs.NewInternalErrorWithCause("failed to build analysis form", err)
	}

	body, err := a.client.Do(ctx, http.MethodPost, "/api/agent/analyze-project", contentType, form)
	if err != nil {
		return models.Analysis{}, err
	}

	if err := validateAnalysis(body); err != nil {
		a.logger.Error().Err(err).Msg("agent returned an analysis payload that fails the schema")
		return models.Analysis{}, err
	}

	var analysis models.Analysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return models.Analysis{}, errs.NewInternalErrorWithCause("unexpected analysis response", err)
	}
	return analysis, nil
}

func buildAnalyzeForm(req models.AnalyzeRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("project_name", req.ProjectName); err != nil {
		return nil, "", err
	}
	if req.Description != "" {
		if err := writer.WriteField("project_description", req.Description); err != nil {
			return nil, "", err
		}
	}
	if len(req.RequiredSkills) > 0 {
		if err := writer.WriteField("required_skills", strings.Join(req.RequiredSkills, ",")); err != nil {
			return nil, "", err
		}
	}
	if len(req.Categories) > 0 {
		if err := writer.WriteField("project_categories", strings.Join(req.Categories, ",")); err != nil {
			return nil, "", err
		}
	}
	if req.FileName != "" {
		part, err := writer.CreateFormFile("project_file", filepath.Base(req.FileName))
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(req.FileContent); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
