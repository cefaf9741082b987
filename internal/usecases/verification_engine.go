package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"farm-market.backend/internal/domain/entities"
	"farm-market.backend/internal/infrastructure/images"
	"farm-market.backend/pkg/logger"
)

// VisionModel is the external multimodal verification API: one text
// part, one inline image part, free-form text back.
type VisionModel interface {
	Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// ImageResolver resolves an image reference to binary data
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) (*images.Image, error)
}

var verdictCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "product_verification_verdicts_total",
	Help: "Product verification verdicts by disposition",
}, []string{"disposition"})

const verificationPrompt = `You are reviewing a product listing for a farmers' market marketplace.

Product name: %s
Description: %s
Category: %s

Judge the attached image against the listing:
1. Is the image agricultural or food content?
2. Does the image match the declared product name?
3. Does the image match the description?
4. Does the product fit the category?
5. Is the image quality adequate for a public listing?
6. Does the image contain prohibited or inappropriate content?

Respond with strict JSON only, no markdown, in exactly this shape:
{"isValid": <true|false>, "confidence": <0.0-1.0>, "reason": "<one sentence>"}
`

// VerificationEngine produces an approval verdict for a product
// listing. Every failure path resolves to a negative verdict; the
// engine has no error exit visible to callers.
type VerificationEngine struct {
	model      VisionModel
	resolver   ImageResolver
	configured bool
	threshold  float64
	timeout    time.Duration
}

// NewVerificationEngine creates a verification engine. configured must
// be false when no API credential is available, which forces every
// verdict onto the fail-closed path.
func NewVerificationEngine(model VisionModel, resolver ImageResolver, configured bool, threshold float64, timeout time.Duration) *VerificationEngine {
	return &VerificationEngine{
		model:      model,
		resolver:   resolver,
		configured: configured,
		threshold:  threshold,
		timeout:    timeout,
	}
}

// Verify judges one product listing. AutoApproved is recomputed from
// isValid and confidence; the model's own opinion of approvability is
// never trusted.
func (e *VerificationEngine) Verify(ctx context.Context, name, description, category, imageRef string) *entities.VerificationVerdict {
	if !e.configured {
		return e.failClosed("verification service not configured")
	}
	if imageRef == "" {
		return e.failClosed("no product image provided")
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	img, err := e.resolver.Resolve(callCtx, imageRef)
	if err != nil {
		logger.Warn(ctx, "product image unresolved", zap.String("ref", imageRef), zap.Error(err))
		return e.failClosed(fmt.Sprintf("image could not be resolved: %v", err))
	}

	prompt := fmt.Sprintf(verificationPrompt, name, description, category)
	raw, err := e.model.Generate(callCtx, prompt, img.Data, img.MIME)
	if err != nil {
		logger.Warn(ctx, "verification model call failed", zap.Error(err))
		return e.failClosed("verification service unavailable")
	}

	parsed, ok := parseVerdictJSON(raw)
	if !ok {
		logger.Warn(ctx, "verification response not parseable", zap.String("raw", truncate(raw, 200)))
		return e.failClosed("result analysis failed")
	}

	verdict := &entities.VerificationVerdict{
		IsValid:      parsed.IsValid,
		Confidence:   parsed.Confidence,
		Reason:       parsed.Reason,
		AutoApproved: parsed.IsValid && parsed.Confidence >= e.threshold,
	}

	switch {
	case verdict.AutoApproved:
		verdictCounter.WithLabelValues("auto_approved").Inc()
	case verdict.IsValid:
		verdictCounter.WithLabelValues("low_confidence").Inc()
	default:
		verdictCounter.WithLabelValues("invalid").Inc()
	}
	return verdict
}

func (e *VerificationEngine) failClosed(reason string) *entities.VerificationVerdict {
	verdictCounter.WithLabelValues("fail_closed").Inc()
	return &entities.VerificationVerdict{
		IsValid:      false,
		Confidence:   0,
		Reason:       reason,
		AutoApproved: false,
	}
}

type rawVerdict struct {
	IsValid    bool    `json:"isValid"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// parseVerdictJSON extracts the first balanced {...} substring from
// the model output and parses it. Models wrap JSON in prose or code
// fences often enough that a plain Unmarshal of the whole reply fails.
func parseVerdictJSON(raw string) (*rawVerdict, bool) {
	start := -1
	depth := 0
	for i, r := range raw {
		switch r {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					var v rawVerdict
					if err := json.Unmarshal([]byte(raw[start:i+1]), &v); err != nil {
						return nil, false
					}
					return &v, true
				}
			}
		}
	}
	return nil, false
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
