package serialshell

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	handOffRetryLimitConstant     = 20
	handOffRetryBaseDelayConstant = 2 * time.Millisecond
)

var errTrackingArtifactEmpty = errors.New(trackingArtifactEmptyMessageConstant)

// readProcessIdentifier recovers the spawned task's process identifier from
// the tracking artifact and deletes the artifact. The shell backgrounds the
// task before the redirection's write is guaranteed to be visible, so reads
// retry with linear backoff for a bounded window before giving up.
func readProcessIdentifier(artifactPath string) (int, error) {
	lastError := errTrackingArtifactEmpty
	for attempt := 1; attempt <= handOffRetryLimitConstant; attempt++ {
		artifactContent, readError := os.ReadFile(artifactPath)
		if readError != nil {
			lastError = readError
		} else {
			identifierText := strings.TrimSpace(string(artifactContent))
			if len(identifierText) > 0 {
				removeTrackingArtifact(artifactPath)
				return strconv.Atoi(identifierText)
			}
			lastError = errTrackingArtifactEmpty
		}

		time.Sleep(time.Duration(attempt) * handOffRetryBaseDelayConstant)
	}

	removeTrackingArtifact(artifactPath)
	return 0, lastError
}

func removeTrackingArtifact(artifactPath string) {
	_ = os.Remove(artifactPath)
}
