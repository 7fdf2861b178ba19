package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_cloning/entity"
	v1 "voice_cloning/internal/controller/http/v1"
	"voice_cloning/pkg/logger"
)

// mockUsecase is a mock implementation of the entity.SynthesisUsecase interface.
type mockUsecase struct {
	synthesizeErr error
	healthErr     error
	lastRequest   entity.SynthesisRequest
	audio         map[string][]byte
}

func (m *mockUsecase) Synthesize(_ context.Context, req entity.SynthesisRequest) (entity.Synthesis, error) {
	m.lastRequest = req

	if m.synthesizeErr != nil {
		return entity.Synthesis{}, m.synthesizeErr
	}

	return entity.Synthesis{
		ID:        "syn-1",
		Language:  req.Language,
		Duration:  time.Second,
		Seconds:   1.0,
		WAV:       []byte("RIFF-wav"),
		CreatedAt: time.Now(),
	}, nil
}

func (m *mockUsecase) GetAudio(_ context.Context, id string, format entity.AudioFormat) (entity.Audio, error) {
	body, ok := m.audio[id]
	if !ok {
		return entity.Audio{}, entity.ErrSynthesisNotFound
	}

	return entity.Audio{Format: format, Body: body}, nil
}

func (m *mockUsecase) Languages() []entity.Language {
	return []entity.Language{
		{Name: "English", Code: "en"},
		{Name: "French", Code: "fr-fr"},
		{Name: "Portuguese", Code: "pt-br"},
	}
}

func (m *mockUsecase) Health(_ context.Context) error {
	return m.healthErr
}

func newTestRouter(uc entity.SynthesisUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := gin.New()
	v1.NewRouter(handler, logger.New("error"), uc, 1<<20)

	return handler
}

func multipartBody(t *testing.T, fileName, text, language string, sample []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	if fileName != "" {
		fw, err := mw.CreateFormFile("sample", fileName)
		require.NoError(t, err)
		_, err = fw.Write(sample)
		require.NoError(t, err)
	}

	require.NoError(t, mw.WriteField("text", text))
	require.NoError(t, mw.WriteField("language", language))
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func TestSynthesizeEndpoint(t *testing.T) {
	uc := &mockUsecase{}
	router := newTestRouter(uc)

	body, contentType := multipartBody(t, "voice.wav", "hello", "en", []byte("RIFF-sample"))

	req := httptest.NewRequest(http.MethodPost, "/v1/synthesis", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID       string `json:"id"`
		AudioURL string `json:"audioUrl"`
		MP3URL   string `json:"mp3Url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "syn-1", resp.ID)
	assert.Equal(t, "/v1/synthesis/syn-1/audio", resp.AudioURL)
	assert.Contains(t, resp.MP3URL, "format=mp3")

	assert.Equal(t, "hello", uc.lastRequest.Text)
	assert.Equal(t, "en", uc.lastRequest.Language)
	assert.Equal(t, entity.FormatWAV, uc.lastRequest.Sample.Format)
	assert.Equal(t, []byte("RIFF-sample"), uc.lastRequest.Sample.Body)
}

func TestSynthesizeEndpointRejections(t *testing.T) {
	testCases := []struct {
		name     string
		fileName string
		usecase  *mockUsecase
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing sample",
			fileName: "",
			usecase:  &mockUsecase{},
			wantCode: http.StatusBadRequest,
			wantMsg:  "voice sample file is required",
		},
		{
			name:     "unsupported container",
			fileName: "voice.aiff",
			usecase:  &mockUsecase{},
			wantCode: http.StatusBadRequest,
			wantMsg:  "unsupported file format",
		},
		{
			name:     "validation error from usecase",
			fileName: "voice.wav",
			usecase:  &mockUsecase{synthesizeErr: fmt.Errorf("%w: 3.0s, need at least 5s", entity.ErrSampleTooShort)},
			wantCode: http.StatusBadRequest,
			wantMsg:  "shorter than the minimum duration",
		},
		{
			name:     "engine error is masked",
			fileName: "voice.wav",
			usecase:  &mockUsecase{synthesizeErr: fmt.Errorf("engine synthesis: boom")},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "synthesis failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(tc.usecase)

			body, contentType := multipartBody(t, tc.fileName, "hello", "en", []byte("RIFF-sample"))

			req := httptest.NewRequest(http.MethodPost, "/v1/synthesis", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantMsg)
		})
	}
}

func TestAudioEndpoint(t *testing.T) {
	uc := &mockUsecase{audio: map[string][]byte{"syn-1": []byte("RIFF-wav")}}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/synthesis/syn-1/audio?format=mp3&download=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "cloned.mp3")
	assert.Equal(t, "RIFF-wav", rec.Body.String())
}

func TestAudioEndpointErrors(t *testing.T) {
	uc := &mockUsecase{audio: map[string][]byte{}}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/synthesis/nope/audio", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/synthesis/nope/audio?format=aiff", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLanguagesEndpoint(t *testing.T) {
	router := newTestRouter(&mockUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/v1/languages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var langs []entity.Language
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &langs))
	assert.Len(t, langs, 3)
}

func TestHealthzReportsEngineState(t *testing.T) {
	router := newTestRouter(&mockUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	router = newTestRouter(&mockUsecase{healthErr: fmt.Errorf("engine down")})

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestIndexPageRendersLanguages(t *testing.T) {
	router := newTestRouter(&mockUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="fr-fr">French</option>`)
}
