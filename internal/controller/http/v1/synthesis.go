package v1

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"voice_cloning/entity"
	"voice_cloning/pkg/logger"
)

type synthesisRoutes struct {
	uc             entity.SynthesisUsecase
	l              logger.Interface
	maxUploadBytes int64
}

func newSynthesisRoutes(handler *gin.RouterGroup, uc entity.SynthesisUsecase, l logger.Interface, maxUploadBytes int64) {
	r := &synthesisRoutes{uc, l, maxUploadBytes}

	handler.GET("/languages", r.languages)

	h := handler.Group("/synthesis")
	{
		h.POST("", r.synthesize)
		h.GET("/:id/audio", r.audio)
	}
}

type synthesisResponse struct {
	ID        string    `json:"id"`
	Language  string    `json:"language"`
	Seconds   float64   `json:"seconds"`
	CreatedAt time.Time `json:"createdAt"`
	AudioURL  string    `json:"audioUrl"`
	WAVURL    string    `json:"wavUrl"`
	MP3URL    string    `json:"mp3Url"`
}

// @Summary     List supported languages
// @ID          languages
// @Tags        synthesis
// @Produce     json
// @Success     200 {array} entity.Language
// @Router      /languages [get]
func (r *synthesisRoutes) languages(c *gin.Context) {
	c.JSON(http.StatusOK, r.uc.Languages())
}

// @Summary     Clone a voice and synthesize speech
// @Description Multipart form: sample (audio file), text, language code
// @ID          synthesize
// @Tags        synthesis
// @Accept      mpfd
// @Produce     json
// @Success     201 {object} synthesisResponse
// @Failure     400 {object} response
// @Failure     500 {object} response
// @Router      /synthesis [post]
func (r *synthesisRoutes) synthesize(c *gin.Context) {
	ctx, span := otel.Tracer(traceName).Start(c.Request.Context(), "synthesize-api")
	defer span.End()

	fileHeader, err := c.FormFile("sample")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "voice sample file is required")

		return
	}

	if fileHeader.Size > r.maxUploadBytes {
		errorResponse(c, http.StatusRequestEntityTooLarge, "voice sample file is too large")

		return
	}

	format, err := entity.ParseAudioFormat(filepath.Ext(fileHeader.Filename))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "unsupported file format, use WAV, MP3, OGG or FLAC")

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		r.l.Error(err, "http - v1 - synthesize")
		errorResponse(c, http.StatusInternalServerError, "failed to read voice sample")

		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		r.l.Error(err, "http - v1 - synthesize")
		errorResponse(c, http.StatusInternalServerError, "failed to read voice sample")

		return
	}

	syn, err := r.uc.Synthesize(ctx, entity.SynthesisRequest{
		Text:     c.PostForm("text"),
		Language: c.PostForm("language"),
		Sample:   entity.Audio{Format: format, Body: body},
	})
	if err != nil {
		r.renderError(c, err, "http - v1 - synthesize")

		return
	}

	c.JSON(http.StatusCreated, synthesisResponse{
		ID:        syn.ID,
		Language:  syn.Language,
		Seconds:   syn.Seconds,
		CreatedAt: syn.CreatedAt,
		AudioURL:  "/v1/synthesis/" + syn.ID + "/audio",
		WAVURL:    "/v1/synthesis/" + syn.ID + "/audio?format=wav&download=1",
		MP3URL:    "/v1/synthesis/" + syn.ID + "/audio?format=mp3&download=1",
	})
}

// @Summary     Fetch synthesized audio
// @Description Streams the synthesis as WAV or transcodes to MP3 on demand
// @ID          synthesis-audio
// @Tags        synthesis
// @Produce     octet-stream
// @Param       id     path  string true  "synthesis id"
// @Param       format query string false "wav or mp3"
// @Success     200
// @Failure     404 {object} response
// @Router      /synthesis/{id}/audio [get]
func (r *synthesisRoutes) audio(c *gin.Context) {
	ctx, span := otel.Tracer(traceName).Start(c.Request.Context(), "synthesis-audio-api")
	defer span.End()

	format, err := entity.ParseAudioFormat(c.DefaultQuery("format", "wav"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "format must be wav or mp3")

		return
	}

	audio, err := r.uc.GetAudio(ctx, c.Param("id"), format)
	if err != nil {
		r.renderError(c, err, "http - v1 - audio")

		return
	}

	name := "cloned." + string(format)

	c.Header("Content-Type", format.ContentType())
	if c.Query("download") == "1" {
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	}

	http.ServeContent(c.Writer, c.Request, name, time.Now(), bytes.NewReader(audio.Body))
}

// renderError maps domain errors to HTTP statuses. Validation messages go to
// the user verbatim; anything else is logged and masked.
func (r *synthesisRoutes) renderError(c *gin.Context, err error, where string) {
	switch {
	case errors.Is(err, entity.ErrEmptyText),
		errors.Is(err, entity.ErrTextTooLong),
		errors.Is(err, entity.ErrUnsupportedLanguage),
		errors.Is(err, entity.ErrEmptySample),
		errors.Is(err, entity.ErrSampleTooShort),
		errors.Is(err, entity.ErrSampleTooLong),
		errors.Is(err, entity.ErrUnsupportedFormat):
		errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrSynthesisNotFound):
		errorResponse(c, http.StatusNotFound, err.Error())
	default:
		r.l.Error(err, where)
		errorResponse(c, http.StatusInternalServerError, "synthesis failed")
	}
}
