package editor

import (
	"bytes"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
)

// EncodedImage is the transport-ready form of an uploaded file: a bare
// base64 payload (no data-URI prefix) plus the declared media type the
// remote call sends alongside it.
type EncodedImage struct {
	Data     string
	MIMEType string
}

const dataURIScheme = "data:"

// Encode reads the full contents of r and produces an EncodedImage. No size
// or type validation happens here; acceptable-file policy belongs to the
// caller. If the source already contains a data URI, its prefix is stripped
// so the payload is the encoded bytes only, and its embedded media type wins
// over an empty declared one. An empty media type on raw bytes is sniffed
// from the content.
func Encode(r io.Reader, mimeType string) (EncodedImage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return EncodedImage{}, newFailure(FailureIO, MsgImageUnreadable, err)
	}

	if payload, embedded, ok := splitDataURI(raw); ok {
		if mimeType == "" {
			mimeType = embedded
		}
		return EncodedImage{Data: payload, MIMEType: mimeType}, nil
	}

	if mimeType == "" {
		mimeType = http.DetectContentType(raw)
	}

	return EncodedImage{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MIMEType: mimeType,
	}, nil
}

// splitDataURI recognizes "data:<mime>;base64,<payload>" content and returns
// the bare payload plus the embedded media type.
func splitDataURI(raw []byte) (payload, mimeType string, ok bool) {
	if !bytes.HasPrefix(raw, []byte(dataURIScheme)) {
		return "", "", false
	}
	s := string(raw)
	comma := strings.Index(s, ",")
	if comma < 0 {
		return "", "", false
	}
	meta := s[len(dataURIScheme):comma]
	if !strings.HasSuffix(meta, ";base64") {
		return "", "", false
	}
	return s[comma+1:], strings.TrimSuffix(meta, ";base64"), true
}
