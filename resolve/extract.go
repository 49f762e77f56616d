package resolve

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/pkg/errors"
)

// ExtractMediaUrl pulls a playable media url out of a resolver response whose
// shape is not contractually fixed. Known shapes are tried first, in order;
// after that the top-level values (object fields or array elements) are
// scanned in document order and the first string starting with "http" wins. An extracted value without a scheme
// gets "https:" prepended (schema-relative urls).
func ExtractMediaUrl(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)

	var whole string
	if json.Unmarshal(trimmed, &whole) == nil {
		if strings.HasPrefix(whole, "http") {
			return whole, nil
		}
		return "", domain.ErrNoMediaUrl
	}

	fields := map[string]json.RawMessage{}
	err := json.Unmarshal(trimmed, &fields)
	if err != nil {
		// arrays have no named fields but still get the positional scan
		candidate, ok := scanFields(trimmed)
		if ok {
			return candidate, nil
		}
		return "", errors.WithMessage(err, "unmarshal resolver response")
	}

	for _, key := range []string{"videoUrl", "url", "download_url"} {
		candidate, ok := stringField(fields[key])
		if ok && candidate != "" {
			return withScheme(candidate), nil
		}
	}

	if raw, ok := fields["data"]; ok {
		nested := map[string]json.RawMessage{}
		if json.Unmarshal(raw, &nested) == nil {
			candidate, ok := stringField(nested["videoUrl"])
			if ok && candidate != "" {
				return withScheme(candidate), nil
			}
		}
	}

	candidate, ok := scanFields(trimmed)
	if ok {
		return candidate, nil
	}

	return "", domain.ErrNoMediaUrl
}

// scanFields walks the top-level values of an object or array in document
// order and returns the first string value starting with "http".
func scanFields(data []byte) (string, bool) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return "", false
	}
	delim, ok := token.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return "", false
	}

	for decoder.More() {
		if delim == '{' {
			_, err := decoder.Token() // field name
			if err != nil {
				return "", false
			}
		}
		var value json.RawMessage
		err = decoder.Decode(&value)
		if err != nil {
			return "", false
		}
		candidate, ok := stringField(value)
		if ok && strings.HasPrefix(candidate, "http") {
			return candidate, true
		}
	}

	return "", false
}

func stringField(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var value string
	err := json.Unmarshal(raw, &value)
	if err != nil {
		return "", false
	}
	return value, true
}

func withScheme(mediaUrl string) string {
	if strings.HasPrefix(mediaUrl, "http") {
		return mediaUrl
	}
	return "https:" + mediaUrl
}
