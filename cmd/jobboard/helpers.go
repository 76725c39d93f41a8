package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

func parseJobID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid job id %q", arg)
	}
	return id, nil
}

// inlineUpload turns a local file into a data URL. URLs and data URLs pass
// through unchanged.
func inlineUpload(ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ref, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", ref, err)
	}
	mime := mimetype.Detect(data)
	return fmt.Sprintf("data:%s;base64,%s", mime.String(), base64.StdEncoding.EncodeToString(data)), nil
}
