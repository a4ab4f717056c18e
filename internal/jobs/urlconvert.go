package jobs

import (
	"fmt"
	"net/url"
	"strings"
)

// GoogleConvertLinkErrorKind is the closed set of ways a share/view URL can
// fail to convert.
type GoogleConvertLinkErrorKind string

const (
	InvalidScheme GoogleConvertLinkErrorKind = "InvalidScheme"
	InvalidHost   GoogleConvertLinkErrorKind = "InvalidHost"
	NoHost        GoogleConvertLinkErrorKind = "NoHost"
	NoIdInPath    GoogleConvertLinkErrorKind = "NoIdInPath"
	NoSegments    GoogleConvertLinkErrorKind = "NoSegments"
)

// GoogleConvertLinkError reports which precondition a share/view URL
// failed.
type GoogleConvertLinkError struct {
	Kind GoogleConvertLinkErrorKind
}

func (e *GoogleConvertLinkError) Error() string {
	return fmt.Sprintf("google convert link: %s", e.Kind)
}

// ConvertGoogleShareOrViewURLToDownloadURL maps a Google-Drive share or view
// URL to its direct-download URL. Preconditions: scheme must be https, host
// must be drive.google.com, the path must have at least 3 segments, and the
// third segment is taken as the file id.
func ConvertGoogleShareOrViewURLToDownloadURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", &GoogleConvertLinkError{Kind: NoHost}
	}

	if u.Scheme != "https" {
		return "", &GoogleConvertLinkError{Kind: InvalidScheme}
	}

	if u.Host == "" {
		return "", &GoogleConvertLinkError{Kind: NoHost}
	}
	if u.Host != "drive.google.com" {
		return "", &GoogleConvertLinkError{Kind: InvalidHost}
	}

	segments := splitPathSegments(u.Path)
	if len(segments) == 0 {
		return "", &GoogleConvertLinkError{Kind: NoSegments}
	}
	if len(segments) < 3 {
		return "", &GoogleConvertLinkError{Kind: NoIdInPath}
	}

	fileID := segments[2]
	if fileID == "" {
		return "", &GoogleConvertLinkError{Kind: NoIdInPath}
	}

	return fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", fileID), nil
}

func splitPathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
