package agent

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/devdash-console/client"
	"github.com/rpupo63/devdash-console/credstore"
	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
	"github.com/rpupo63/devdash-console/notify"
)

func newTestAgent(handler http.Handler) (*Agent, *httptest.Server) {
	server := httptest.NewServer(handler)
	c := client.New(server.URL, credstore.NewMemory("tok"), &notify.Recorder{})
	return New(c), server
}

func validAnalysis() map[string]any {
	return map[string]any{
		"success":                   true,
		"required_skills":           []string{"React", "Django"},
		"project_categories":        []string{"Internal Tooling"},
		"total_developers_analyzed": 2,
		"analysis":                  "Both developers cover the stack.",
		"model":                     "devdash-analyst",
	}
}

// --- Query ---

func TestQuery_EmptyQueryFailsBeforeNetwork(t *testing.T) {
	requests := 0
	a, server := newTestAgent(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { requests++ }))
	defer server.Close()

	_, err := a.Query(context.Background(), "   ")
	if !errs.IsMissingRequiredFieldError(err) {
		t.Errorf("err = %v, want missing-required-field", err)
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

func TestQuery_PostsAndDecodesBareResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/agent/query" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["query"] != "who knows React?" {
			t.Errorf("query = %q", body["query"])
		}
		// Agent endpoints do not use the envelope.
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "response": "Amina Diallo", "model": "devdash-analyst",
		})
	})
	a, server := newTestAgent(handler)
	defer server.Close()

	result, err := a.Query(context.Background(), "who knows React?")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !result.Success || result.Response != "Amina Diallo" {
		t.Errorf("result = %+v", result)
	}
	if result.Model != "devdash-analyst" {
		t.Errorf("Model = %q", result.Model)
	}
}

// --- AnalyzeProject ---

func TestAnalyzeProject_RequiresProjectName(t *testing.T) {
	requests := 0
	a, server := newTestAgent(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { requests++ }))
	defer server.Close()

	_, err := a.AnalyzeProject(context.Background(), models.AnalyzeRequest{})
	if !errs.IsMissingRequiredFieldError(err) {
		t.Errorf("err = %v, want missing-required-field", err)
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

func TestAnalyzeProject_RejectsUnsupportedFileTypes(t *testing.T) {
	a, server := newTestAgent(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request sent despite invalid file type")
	}))
	defer server.Close()

	_, err := a.AnalyzeProject(context.Background(), models.AnalyzeRequest{
		ProjectName: "Billing Portal",
		FileName:    "brief.txt",
		FileContent: []byte("notes"),
	})
	if !errs.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestAnalyzeProject_SendsMultipartForm(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("project_name"); got != "Billing Portal" {
			t.Errorf("project_name = %q", got)
		}
		if got := r.FormValue("required_skills"); got != "React,Django" {
			t.Errorf("required_skills = %q", got)
		}
		file, header, err := r.FormFile("project_file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "brief.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "%PDF-fake" {
			t.Errorf("file content = %q", content)
		}
		json.NewEncoder(w).Encode(validAnalysis())
	})
	a, server := newTestAgent(handler)
	defer server.Close()

	analysis, err := a.AnalyzeProject(context.Background(), models.AnalyzeRequest{
		ProjectName:    "Billing Portal",
		RequiredSkills: []string{"React", "Django"},
		FileName:       "briefs/brief.pdf",
		FileContent:    []byte("%PDF-fake"),
	})
	if err != nil {
		t.Fatalf("AnalyzeProject: %v", err)
	}
	if analysis.TotalDevelopersAnalyzed != 2 {
		t.Errorf("TotalDevelopersAnalyzed = %d, want 2", analysis.TotalDevelopersAnalyzed)
	}
	if len(analysis.RequiredSkills) != 2 {
		t.Errorf("RequiredSkills = %v", analysis.RequiredSkills)
	}
}

func TestAnalyzeProject_RejectsPayloadFailingSchema(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Missing required_skills and model.
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "analysis": "partial",
		})
	})
	a, server := newTestAgent(handler)
	defer server.Close()

	_, err := a.AnalyzeProject(context.Background(), models.AnalyzeRequest{ProjectName: "X"})
	if err == nil {
		t.Fatal("AnalyzeProject succeeded with schema-violating payload")
	}
}
