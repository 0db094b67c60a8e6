package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kapu/celestia-ai-go/internal/util"
	"go.uber.org/zap"
)

const responsePreviewLength = 200

// decodeJSON strips optional markdown fences before unmarshalling into dest.
func decodeJSON(text string, metadata *GenerateMetadata, dest any, logger *zap.Logger) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%s API returned empty response", metadata.Provider)
	}

	cleaned := trimmed
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	if err := json.Unmarshal([]byte(cleaned), dest); err != nil {
		logger.Error("Failed to unmarshal JSON response",
			zap.String("provider", metadata.Provider),
			zap.String("model", metadata.Model),
			zap.Error(err),
			zap.String("response_preview", util.TruncateString(cleaned, responsePreviewLength)),
		)
		return fmt.Errorf("invalid JSON from %s: %w", metadata.Provider, err)
	}

	return nil
}
