// Package scorer grades interview transcripts with a language model. Prompts
// are role-specific templates embedded in the binary; parsing of the model's
// answer is tolerant and total, degrading to a default score rather than
// failing the request.
package scorer

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/recruitflow/pipeline/internal/core"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// promptData is the template context for both grading prompts.
type promptData struct {
	Role           string
	JobTitle       string
	Location       string
	JobDescription string
	PersonSpecs    string
	Transcript     string
}

type promptSet struct {
	screening *template.Template
	interview *template.Template
}

func loadPrompts() (*promptSet, error) {
	parse := func(name string) (*template.Template, error) {
		content, err := promptFiles.ReadFile("prompts/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt %s: %w", name, err)
		}
		return template.New(name).Parse(string(content))
	}

	screening, err := parse("screening_default.prompt")
	if err != nil {
		return nil, err
	}
	interview, err := parse("interview_default.prompt")
	if err != nil {
		return nil, err
	}
	return &promptSet{screening: screening, interview: interview}, nil
}

// buildPrompt renders the grading prompt for a score request. A missing job
// record is replaced with a generic position so scoring can still proceed.
func (ps *promptSet) buildPrompt(req *core.ScoreRequest) (string, error) {
	job := req.Job
	if job == nil {
		job = &core.JobDetails{JobTitle: "General Position"}
	}

	data := promptData{
		Role:           req.Role,
		JobTitle:       job.JobTitle,
		Location:       job.Location,
		JobDescription: job.JobDescription,
		PersonSpecs:    job.PersonSpecs,
		Transcript:     req.Transcript,
	}

	tmpl := ps.interview
	if req.Scale == core.ScalePassFail {
		tmpl = ps.screening
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render scoring prompt: %w", err)
	}
	return buf.String(), nil
}
