package insight

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/apex-maintenance/internal/models"
	"google.golang.org/api/option"
)

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func TestBuildPrompt(t *testing.T) {
	seed := models.SeedData()
	jobs := make([]models.JobCard, 7)
	for i := range jobs {
		jobs[i] = models.JobCard{JobType: models.JobTypeCorrective, Findings: "leak"}
	}
	jobs[0].Findings = "first"

	prompt, err := BuildPrompt(jobs, seed.Machines)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Analyze the following maintenance data for heavy machinery:")
	assert.Contains(t, prompt, `Machines: [{"brand":"JCB","model":"3CX","hours":1250},{"brand":"HYUNDAI","model":"R210LC","hours":4500}]`)
	assert.Contains(t, prompt, `{"type":"Corrective","findings":"first","parts":[]}`)
	assert.Equal(t, 5, strings.Count(prompt, `"type":"Corrective"`))
	assert.Contains(t, prompt, "formatted in Markdown")
}

func TestBuildPrompt_Empty(t *testing.T) {
	prompt, err := BuildPrompt(nil, nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Machines: []")
	assert.Contains(t, prompt, "Recent Job Cards: []")
}

func TestService_Analyze(t *testing.T) {
	seed := models.SeedData()

	t.Run("no generator", func(t *testing.T) {
		svc := NewService(nil, quietLogger())
		assert.Equal(t, NotConfiguredMessage, svc.Analyze(context.Background(), seed.JobCards, seed.Machines))
	})

	t.Run("generator error", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", mock.Anything, mock.Anything).Return("", assert.AnError)
		svc := NewService(gen, quietLogger())
		assert.Equal(t, FailedMessage, svc.Analyze(context.Background(), seed.JobCards, seed.Machines))
		gen.AssertExpectations(t)
	})

	t.Run("empty text", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", mock.Anything, mock.Anything).Return("  \n", nil)
		svc := NewService(gen, quietLogger())
		assert.Equal(t, EmptyMessage, svc.Analyze(context.Background(), seed.JobCards, seed.Machines))
	})

	t.Run("analysis text", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "Faulty wiring.")
		})).Return("## Fleet health\nGood.", nil)
		svc := NewService(gen, quietLogger())
		assert.Equal(t, "## Fleet health\nGood.", svc.Analyze(context.Background(), seed.JobCards, seed.Machines))
		gen.AssertExpectations(t)
	})
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "", option.WithoutAuthentication())
	assert.Error(t, err)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Fleet "},{"text":"is healthy."}]}}]}`)
	}))
	defer srv.Close()

	gen, err := NewGeminiGenerator(context.Background(), "test-key", "gemini-test", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Fleet is healthy.", text)
	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.NotEmpty(t, gotBody["contents"])
}

func TestGeminiGenerator_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":400,"message":"boom"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	gen, err := NewGeminiGenerator(context.Background(), "k", "", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "hello")
	assert.Error(t, err)
}
